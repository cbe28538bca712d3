package postdesk

import (
	"regexp"
	"time"
	"unicode/utf8"
)

// FieldErrors maps a form field name to a validation message. An empty map
// means the input passed the schema. Validation failures are data, not
// errors: handlers render them inline next to the offending field.
type FieldErrors map[string]string

// PostInput is the candidate field set collected from the post form.
type PostInput struct {
	Title       string
	Content     string
	Author      string
	ImageURL    string
	Category    string
	Priority    string
	IsPublished bool
	PublishDate time.Time
}

// ElementInput is the candidate field set collected from the webauto form.
type ElementInput struct {
	ElementID   string
	ElementType string
	Value       string
}

var elementIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidatePost checks in against the post schema and returns per-field
// messages for everything that fails.
func ValidatePost(in PostInput) FieldErrors {
	errs := FieldErrors{}
	if utf8.RuneCountInString(in.Title) < 3 {
		errs["title"] = "Title must be at least 3 characters long."
	}
	if utf8.RuneCountInString(in.Content) < 10 {
		errs["content"] = "Content must be at least 10 characters long."
	}
	if utf8.RuneCountInString(in.Author) < 2 {
		errs["author"] = "Author name is required."
	}
	if !contains(Categories, in.Category) {
		errs["category"] = "Select a valid category."
	}
	if !contains(Priorities, in.Priority) {
		errs["priority"] = "Select a valid priority."
	}
	if in.PublishDate.IsZero() {
		errs["publishDate"] = "A valid publish date is required."
	}
	return errs
}

// ValidateElement checks in against the webauto element schema.
func ValidateElement(in ElementInput) FieldErrors {
	errs := FieldErrors{}
	switch {
	case in.ElementID == "":
		errs["elementId"] = "ID is required."
	case !elementIDPattern.MatchString(in.ElementID):
		errs["elementId"] = "ID can only contain letters, numbers, hyphens, and underscores."
	}
	if !contains(ElementTypes, in.ElementType) {
		errs["elementType"] = "Select a valid element type."
	}
	return errs
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
