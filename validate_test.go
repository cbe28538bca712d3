package postdesk

import (
	"testing"
	"time"
)

func TestValidatePostTitleBoundary(t *testing.T) {
	in := validInput()

	in.Title = "ab"
	if errs := ValidatePost(in); errs["title"] != "Title must be at least 3 characters long." {
		t.Errorf("2-char title: errs = %v", errs)
	}

	in.Title = "abc"
	if errs := ValidatePost(in); errs["title"] != "" {
		t.Errorf("3-char title should pass, got %q", errs["title"])
	}
}

func TestValidatePostFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PostInput)
		field  string
	}{
		{"short content", func(in *PostInput) { in.Content = "too short" }, "content"},
		{"short author", func(in *PostInput) { in.Author = "A" }, "author"},
		{"unknown category", func(in *PostInput) { in.Category = "Gossip" }, "category"},
		{"empty category", func(in *PostInput) { in.Category = "" }, "category"},
		{"unknown priority", func(in *PostInput) { in.Priority = "Urgent" }, "priority"},
		{"zero publish date", func(in *PostInput) { in.PublishDate = time.Time{} }, "publishDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			errs := ValidatePost(in)
			if errs[tt.field] == "" {
				t.Errorf("expected error on %q, got %v", tt.field, errs)
			}
			if len(errs) != 1 {
				t.Errorf("expected exactly one error, got %v", errs)
			}
		})
	}
}

func TestValidatePostAcceptsValidInput(t *testing.T) {
	if errs := ValidatePost(validInput()); len(errs) != 0 {
		t.Errorf("valid input rejected: %v", errs)
	}
}

func TestValidateElementID(t *testing.T) {
	tests := []struct {
		id string
		ok bool
	}{
		{"login-btn", true},
		{"element_1", true},
		{"A9", true},
		{"", false},
		{"has space", false},
		{"nope!", false},
		{"semi;colon", false},
	}
	for _, tt := range tests {
		errs := ValidateElement(ElementInput{ElementID: tt.id, ElementType: "button"})
		if tt.ok && errs["elementId"] != "" {
			t.Errorf("id %q should pass, got %q", tt.id, errs["elementId"])
		}
		if !tt.ok && errs["elementId"] == "" {
			t.Errorf("id %q should fail", tt.id)
		}
	}
}

func TestValidateElementType(t *testing.T) {
	for _, typ := range ElementTypes {
		errs := ValidateElement(ElementInput{ElementID: "x", ElementType: typ})
		if errs["elementType"] != "" {
			t.Errorf("type %q should pass, got %q", typ, errs["elementType"])
		}
	}
	if errs := ValidateElement(ElementInput{ElementID: "x", ElementType: "marquee"}); errs["elementType"] == "" {
		t.Error("unknown element type should fail")
	}
}
