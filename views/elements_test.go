package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderToString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := cmp.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func TestRenderElementPerType(t *testing.T) {
	tests := []struct {
		name string
		el   WebElement
		want []string
	}{
		{
			"button with value",
			WebElement{ElementID: "login-btn", ElementType: "button", Value: "Sign in"},
			[]string{`<button id="login-btn"`, `>Sign in</button>`},
		},
		{
			"button falls back to id",
			WebElement{ElementID: "login-btn", ElementType: "button"},
			[]string{`>login-btn</button>`},
		},
		{
			"input uses id as placeholder",
			WebElement{ElementID: "search", ElementType: "input", Value: "query"},
			[]string{`<input id="search"`, `value="query"`, `placeholder="search"`},
		},
		{
			"textarea",
			WebElement{ElementID: "notes", ElementType: "textarea", Value: "hello"},
			[]string{`<textarea id="notes"`, `>hello</textarea>`},
		},
		{
			"paragraph fallback names its id",
			WebElement{ElementID: "intro", ElementType: "p"},
			[]string{`<p id="intro">This is a paragraph with id: intro</p>`},
		},
		{
			"headings",
			WebElement{ElementID: "headline", ElementType: "h2", Value: "Big News"},
			[]string{`<h2 id="headline">Big News</h2>`},
		},
		{
			"link with value",
			WebElement{ElementID: "home", ElementType: "a", Value: "https://example.com"},
			[]string{`href="https://example.com"`, `>Link to https://example.com</a>`},
		},
		{
			"link without value",
			WebElement{ElementID: "home", ElementType: "a"},
			[]string{`href="#"`, `>home</a>`},
		},
		{
			"image fallback src",
			WebElement{ElementID: "pic", ElementType: "img"},
			[]string{`<img id="pic"`, `src="` + fallbackImageSrc + `"`, `alt="pic"`},
		},
		{
			"select placeholder",
			WebElement{ElementID: "choices", ElementType: "select"},
			[]string{`<select id="choices">`, `>Select an option</option>`, `Option 1`, `Option 2`},
		},
		{
			"checkbox label",
			WebElement{ElementID: "agree", ElementType: "checkbox", Value: "I agree"},
			[]string{`<input type="checkbox" id="agree">`, `<label for="agree">I agree</label>`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderToString(t, RenderElement(tt.el))
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output %q missing %q", got, want)
				}
			}
		})
	}
}

func TestRenderElementUnknownTypeRendersNothing(t *testing.T) {
	got := renderToString(t, RenderElement(WebElement{ElementID: "x", ElementType: "marquee"}))
	if got != "" {
		t.Errorf("unknown type rendered %q, want empty", got)
	}
}

func TestRenderElementEscapesValue(t *testing.T) {
	got := renderToString(t, RenderElement(WebElement{
		ElementID: "xss", ElementType: "p", Value: `<script>alert(1)</script>`,
	}))
	if strings.Contains(got, "<script>") {
		t.Errorf("value not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped value in %q", got)
	}
}

func TestPostListShowsEmptyState(t *testing.T) {
	site := Site{Name: "Postdesk"}
	got := renderToString(t, PostList(site, nil, "", "All", "All", nil))
	if !strings.Contains(got, "No posts match the current filters.") {
		t.Error("empty list should render the no-posts message")
	}
}

func TestPostFormRendersFieldErrors(t *testing.T) {
	site := Site{Name: "Postdesk"}
	form := PostFormData{
		Title:  "ab",
		Errors: map[string]string{"title": "Title must be at least 3 characters long."},
	}
	got := renderToString(t, PostForm(site, form, false, "token", nil))
	if !strings.Contains(got, "Title must be at least 3 characters long.") {
		t.Error("field error not rendered")
	}
	if !strings.Contains(got, `name="_csrf"`) || !strings.Contains(got, `value="token"`) {
		t.Error("CSRF field missing")
	}
	if !strings.Contains(got, `min="1900-01-01"`) {
		t.Error("date input should carry the picker lower bound")
	}
}

func TestLayoutRendersFlashes(t *testing.T) {
	site := Site{Name: "Postdesk"}
	flashes := []Flash{{Kind: "success", Title: "Success", Body: `Post "X" has been created.`}}
	got := renderToString(t, PostList(site, nil, "", "", "", flashes))
	if !strings.Contains(got, "toast-success") {
		t.Error("flash toast not rendered")
	}
	if !strings.Contains(got, "has been created.") {
		t.Error("flash body not rendered")
	}
}
