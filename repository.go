package postdesk

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Slot keys. One slot holds the whole serialized collection; saves replace
// the entire value rather than patching it.
const (
	postsSlot    = "blog-posts"
	elementsSlot = "webauto-elements"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ReadError reports a slot whose stored payload could not be decoded or
// failed schema coercion. Callers recover by continuing with an empty
// collection and surfacing a non-fatal warning.
type ReadError struct {
	Slot string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read slot %s: %v", e.Slot, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// PostRepository persists the blog post collection in a single KV slot.
type PostRepository struct {
	kv *KV
}

// NewPostRepository returns a repository over the blog-posts slot.
func NewPostRepository(kv *KV) *PostRepository {
	return &PostRepository{kv: kv}
}

// Load reads and decodes the full collection. An absent slot yields an
// empty collection. A malformed payload, or a record that no longer fits
// the schema, yields an empty collection and a *ReadError.
func (r *PostRepository) Load() ([]BlogPost, error) {
	raw, ok, err := r.kv.Get(postsSlot)
	if err != nil {
		return nil, &ReadError{Slot: postsSlot, Err: err}
	}
	if !ok {
		return nil, nil
	}
	var posts []BlogPost
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, &ReadError{Slot: postsSlot, Err: err}
	}
	for _, p := range posts {
		if err := coercePost(p); err != nil {
			return nil, &ReadError{Slot: postsSlot, Err: err}
		}
	}
	return posts, nil
}

// Save replaces the persisted collection. publishDate serializes as an
// RFC 3339 string, so a load of what was saved round-trips.
func (r *PostRepository) Save(posts []BlogPost) error {
	if posts == nil {
		posts = []BlogPost{}
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode posts: %w", err)
	}
	if err := r.kv.Set(postsSlot, string(data)); err != nil {
		return fmt.Errorf("write slot %s: %w", postsSlot, err)
	}
	return nil
}

// coercePost checks a decoded record against the full schema instead of
// trusting the stored shape. A record that would not pass the post form
// does not get to exist just because it was persisted.
func coercePost(p BlogPost) error {
	if p.ID == "" {
		return fmt.Errorf("post %q: missing id", p.Title)
	}
	in := PostInput{
		Title:       p.Title,
		Content:     p.Content,
		Author:      p.Author,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Priority:    p.Priority,
		IsPublished: p.IsPublished,
		PublishDate: p.PublishDate,
	}
	if errs := ValidatePost(in); len(errs) > 0 {
		fields := make([]string, 0, len(errs))
		for f := range errs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		return fmt.Errorf("post %s: invalid %s", p.ID, strings.Join(fields, ", "))
	}
	return nil
}

// ElementRepository persists the webauto element collection in its own slot.
type ElementRepository struct {
	kv *KV
}

// NewElementRepository returns a repository over the webauto-elements slot.
func NewElementRepository(kv *KV) *ElementRepository {
	return &ElementRepository{kv: kv}
}

// Load reads and decodes the element collection, with the same recovery
// contract as PostRepository.Load.
func (r *ElementRepository) Load() ([]WebElement, error) {
	raw, ok, err := r.kv.Get(elementsSlot)
	if err != nil {
		return nil, &ReadError{Slot: elementsSlot, Err: err}
	}
	if !ok {
		return nil, nil
	}
	var elements []WebElement
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, &ReadError{Slot: elementsSlot, Err: err}
	}
	for _, el := range elements {
		if el.InternalID == "" || el.ElementID == "" {
			return nil, &ReadError{Slot: elementsSlot, Err: fmt.Errorf("element %q: missing id", el.ElementID)}
		}
		if !contains(ElementTypes, el.ElementType) {
			return nil, &ReadError{Slot: elementsSlot, Err: fmt.Errorf("element %s: unknown type %q", el.ElementID, el.ElementType)}
		}
	}
	return elements, nil
}

// Save replaces the persisted element collection. The value is indented so
// the export download can serve the stored bytes as-is.
func (r *ElementRepository) Save(elements []WebElement) error {
	data, err := MarshalElements(elements)
	if err != nil {
		return err
	}
	if err := r.kv.Set(elementsSlot, string(data)); err != nil {
		return fmt.Errorf("write slot %s: %w", elementsSlot, err)
	}
	return nil
}

// MarshalElements renders the collection in the persisted representation,
// which is also the export format.
func MarshalElements(elements []WebElement) ([]byte, error) {
	if elements == nil {
		elements = []WebElement{}
	}
	data, err := json.MarshalIndent(elements, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode elements: %w", err)
	}
	return data, nil
}
