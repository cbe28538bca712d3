package views

import (
	"context"
	"html"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// The components in this package are written as plain Go builders behind
// the templ.Component interface, so handlers and the element renderer stay
// composable with any templ-based caller.

// builder accumulates markup for one component.
type builder struct {
	sb strings.Builder
}

// raw appends trusted markup.
func (b *builder) raw(s string) {
	b.sb.WriteString(s)
}

// text appends user data, escaped.
func (b *builder) text(s string) {
	b.sb.WriteString(html.EscapeString(s))
}

// attr appends a name="value" attribute with the value escaped.
func (b *builder) attr(name, value string) {
	b.sb.WriteString(" ")
	b.sb.WriteString(name)
	b.sb.WriteString(`="`)
	b.sb.WriteString(html.EscapeString(value))
	b.sb.WriteString(`"`)
}

// component wraps a builder function as a templ.Component.
func component(build func(b *builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &builder{}
		build(b)
		_, err := io.WriteString(w, b.sb.String())
		return err
	})
}

// FormatDate renders a publish date the way the post cards display it.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// InputDate renders a date in the yyyy-mm-dd form the date input expects.
func InputDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// PriorityClass returns the CSS class for a priority label.
func PriorityClass(priority string) string {
	switch priority {
	case "Low":
		return "priority-low"
	case "Medium":
		return "priority-medium"
	case "High":
		return "priority-high"
	}
	return ""
}

// fieldError appends the inline message for a field, if it has one.
func (b *builder) fieldError(errors map[string]string, field string) {
	if msg, ok := errors[field]; ok {
		b.raw(`<p class="field-error">`)
		b.text(msg)
		b.raw(`</p>`)
	}
}

// csrfField appends the hidden CSRF token input for a form.
func (b *builder) csrfField(token string) {
	b.raw(`<input type="hidden" name="_csrf"`)
	b.attr("value", token)
	b.raw(`>`)
}

// excerpt shortens content for the list cards.
func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
