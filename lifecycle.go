package postdesk

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Posts owns the in-memory blog post collection and enforces validation and
// identity rules around every mutation. The collection is the source of
// truth for rendering; the repository is written after each mutation as a
// durability shadow, and a failed write never rolls the collection back.
type Posts struct {
	mu    sync.RWMutex
	repo  *PostRepository
	posts []BlogPost
}

// NewPosts builds the manager around an initial collection, normally the
// result of repo.Load.
func NewPosts(repo *PostRepository, initial []BlogPost) *Posts {
	return &Posts{repo: repo, posts: initial}
}

// All returns a copy of the current collection.
func (m *Posts) All() []BlogPost {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]BlogPost, len(m.posts))
	copy(out, m.posts)
	return out
}

// Get returns the post with the given id.
func (m *Posts) Get(id string) (BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// Create validates in, assigns a fresh id, appends the post, and persists.
// On validation failure the collection is untouched and the field errors
// are returned instead.
func (m *Posts) Create(in PostInput) (BlogPost, FieldErrors, error) {
	if errs := ValidatePost(in); len(errs) > 0 {
		return BlogPost{}, errs, nil
	}
	post := BlogPost{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Content:     in.Content,
		Author:      in.Author,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Priority:    in.Priority,
		IsPublished: in.IsPublished,
		PublishDate: in.PublishDate,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, post)
	return post, nil, m.repo.Save(m.posts)
}

// PostPatch carries the fields an update supplies. Nil fields are left as
// they were, so callers can submit a partial field set; the id is never
// part of a patch.
type PostPatch struct {
	Title       *string
	Content     *string
	Author      *string
	ImageURL    *string
	Category    *string
	Priority    *string
	IsPublished *bool
	PublishDate *time.Time
}

func (p PostPatch) applyTo(post BlogPost) BlogPost {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Author != nil {
		post.Author = *p.Author
	}
	if p.ImageURL != nil {
		post.ImageURL = *p.ImageURL
	}
	if p.Category != nil {
		post.Category = *p.Category
	}
	if p.Priority != nil {
		post.Priority = *p.Priority
	}
	if p.IsPublished != nil {
		post.IsPublished = *p.IsPublished
	}
	if p.PublishDate != nil {
		post.PublishDate = *p.PublishDate
	}
	return post
}

// Update merges patch onto the post with the given id, validates the merged
// record, replaces it in place, and persists. Callers only invoke Update
// with a known id; an unknown id returns ErrNotFound rather than pretending
// success.
func (m *Posts) Update(id string, patch PostPatch) (BlogPost, FieldErrors, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.posts {
		if p.ID != id {
			continue
		}
		merged := patch.applyTo(p)
		in := PostInput{
			Title:       merged.Title,
			Content:     merged.Content,
			Author:      merged.Author,
			ImageURL:    merged.ImageURL,
			Category:    merged.Category,
			Priority:    merged.Priority,
			IsPublished: merged.IsPublished,
			PublishDate: merged.PublishDate,
		}
		if errs := ValidatePost(in); len(errs) > 0 {
			return BlogPost{}, errs, nil
		}
		m.posts[i] = merged
		return merged, nil, m.repo.Save(m.posts)
	}
	return BlogPost{}, nil, ErrNotFound
}

// Delete removes the post with the given id, if present, and persists.
// The removed post is returned so callers can name it in the confirmation
// message. Deleting an unknown id is a harmless no-op.
func (m *Posts) Delete(id string) (BlogPost, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.posts {
		if p.ID != id {
			continue
		}
		m.posts = append(m.posts[:i], m.posts[i+1:]...)
		return p, true, m.repo.Save(m.posts)
	}
	return BlogPost{}, false, nil
}

// Elements owns the in-memory webauto element collection, with the same
// mutation contract as Posts.
type Elements struct {
	mu       sync.RWMutex
	repo     *ElementRepository
	elements []WebElement
}

// NewElements builds the manager around an initial collection.
func NewElements(repo *ElementRepository, initial []WebElement) *Elements {
	return &Elements{repo: repo, elements: initial}
}

// All returns a copy of the current collection.
func (m *Elements) All() []WebElement {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]WebElement, len(m.elements))
	copy(out, m.elements)
	return out
}

// Get returns the element with the given internal id.
func (m *Elements) Get(internalID string) (WebElement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, el := range m.elements {
		if el.InternalID == internalID {
			return el, nil
		}
	}
	return WebElement{}, ErrNotFound
}

// Create validates in, rejects an elementId already in use, assigns an
// internal id, appends, and persists. A duplicate elementId is reported as
// a field error on elementId, not a generic failure.
func (m *Elements) Create(in ElementInput) (WebElement, FieldErrors, error) {
	if errs := ValidateElement(in); len(errs) > 0 {
		return WebElement{}, errs, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, el := range m.elements {
		if el.ElementID == in.ElementID {
			return WebElement{}, FieldErrors{
				"elementId": "This ID is already in use. Please choose a unique ID.",
			}, nil
		}
	}
	element := WebElement{
		InternalID:  uuid.NewString(),
		ElementID:   in.ElementID,
		ElementType: in.ElementType,
		Value:       in.Value,
	}
	m.elements = append(m.elements, element)
	return element, nil, m.repo.Save(m.elements)
}

// Update replaces the type and value of an existing element. The elementId
// of an existing record is immutable, so uniqueness is only enforced at
// creation time.
func (m *Elements) Update(internalID string, in ElementInput) (WebElement, FieldErrors, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, el := range m.elements {
		if el.InternalID != internalID {
			continue
		}
		in.ElementID = el.ElementID
		if errs := ValidateElement(in); len(errs) > 0 {
			return WebElement{}, errs, nil
		}
		el.ElementType = in.ElementType
		el.Value = in.Value
		m.elements[i] = el
		return el, nil, m.repo.Save(m.elements)
	}
	return WebElement{}, nil, ErrNotFound
}

// Delete removes the element with the given internal id, if present, and
// persists. Deleting an unknown id is a harmless no-op.
func (m *Elements) Delete(internalID string) (WebElement, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, el := range m.elements {
		if el.InternalID != internalID {
			continue
		}
		m.elements = append(m.elements[:i], m.elements[i+1:]...)
		return el, true, m.repo.Save(m.elements)
	}
	return WebElement{}, false, nil
}

// ExportJSON returns the collection in the persisted representation, for
// the download action.
func (m *Elements) ExportJSON() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return MarshalElements(m.elements)
}
