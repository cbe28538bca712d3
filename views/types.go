package views

import "time"

// BlogPost is the core content type rendered by templates. ID is assigned
// once at creation and never reused, even after deletion.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	IsPublished bool      `json:"isPublished"`
	PublishDate time.Time `json:"publishDate"`
}

// WebElement is one user-defined UI element in the webauto module.
// InternalID is the stable system identity; ElementID is the user-chosen
// DOM id, immutable once the element exists.
type WebElement struct {
	InternalID  string `json:"internalId"`
	ElementID   string `json:"elementId"`
	ElementType string `json:"elementType"`
	Value       string `json:"value"`
}

// Categories a post can belong to. The schema rejects anything else.
var Categories = []string{"Technology", "Lifestyle", "Travel", "Food", "Business"}

// Priorities a post can carry.
var Priorities = []string{"Low", "Medium", "High"}

// ElementTypes is the closed set of widget kinds the element renderer
// understands, in form display order.
var ElementTypes = []string{
	"button", "input", "textarea", "p", "h1", "h2", "h3", "a", "img", "select", "checkbox",
}

// ElementTypeLabels maps each widget kind to its form label.
var ElementTypeLabels = map[string]string{
	"button":   "Button",
	"input":    "Input",
	"textarea": "Textarea",
	"p":        "Paragraph",
	"h1":       "Heading 1",
	"h2":       "Heading 2",
	"h3":       "Heading 3",
	"a":        "Link",
	"img":      "Image",
	"select":   "Select",
	"checkbox": "Checkbox",
}

// Site carries the branding values templates read.
type Site struct {
	Name        string
	URL         string
	Description string
}

// Flash is one transient notification queued by a handler and shown as a
// toast on the next rendered page.
type Flash struct {
	Kind  string // "success" or "error"
	Title string
	Body  string
}

// PostFormData is the state of the post form: current values (as submitted,
// not yet normalized) plus per-field validation messages.
type PostFormData struct {
	ID          string
	Title       string
	Content     string
	Author      string
	ImageURL    string
	Category    string
	Priority    string
	IsPublished bool
	PublishDate string // yyyy-mm-dd, as the date input produces
	Errors      map[string]string
}

// ElementFormData is the state of the webauto element form.
type ElementFormData struct {
	InternalID  string // non-empty while editing an existing element
	ElementID   string
	ElementType string
	Value       string
	Errors      map[string]string
}
