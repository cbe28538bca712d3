package views

import "github.com/a-h/templ"

// fallbackImageSrc is used when an img element has no value.
const fallbackImageSrc = "https://picsum.photos/seed/1/200/300"

// RenderElement maps a WebElement to its concrete widget. The mapping is
// total over the closed type set; an unrecognized type renders nothing.
// The visible label, placeholder, href or src is the element's value when
// present, else a type-specific fallback derived from its id.
func RenderElement(el WebElement) templ.Component {
	return component(func(b *builder) {
		label := el.Value
		if label == "" {
			label = el.ElementID
		}
		switch el.ElementType {
		case "button":
			b.raw(`<button`)
			b.attr("id", el.ElementID)
			b.raw(` type="button">`)
			b.text(label)
			b.raw(`</button>`)
		case "input":
			b.raw(`<input`)
			b.attr("id", el.ElementID)
			b.raw(` type="text"`)
			b.attr("value", el.Value)
			b.attr("placeholder", el.ElementID)
			b.raw(`>`)
		case "textarea":
			b.raw(`<textarea`)
			b.attr("id", el.ElementID)
			b.attr("placeholder", el.ElementID)
			b.raw(`>`)
			b.text(el.Value)
			b.raw(`</textarea>`)
		case "p":
			b.raw(`<p`)
			b.attr("id", el.ElementID)
			b.raw(`>`)
			if el.Value != "" {
				b.text(el.Value)
			} else {
				b.text("This is a paragraph with id: " + el.ElementID)
			}
			b.raw(`</p>`)
		case "h1", "h2", "h3":
			b.raw(`<` + el.ElementType)
			b.attr("id", el.ElementID)
			b.raw(`>`)
			b.text(label)
			b.raw(`</` + el.ElementType + `>`)
		case "a":
			href := el.Value
			if href == "" {
				href = "#"
			}
			b.raw(`<a`)
			b.attr("id", el.ElementID)
			b.attr("href", href)
			b.raw(`>`)
			if el.Value != "" {
				b.text("Link to " + el.Value)
			} else {
				b.text(el.ElementID)
			}
			b.raw(`</a>`)
		case "img":
			src := el.Value
			if src == "" {
				src = fallbackImageSrc
			}
			b.raw(`<img`)
			b.attr("id", el.ElementID)
			b.attr("src", src)
			b.attr("alt", el.ElementID)
			b.raw(` width="200" height="300">`)
		case "select":
			placeholder := el.Value
			if placeholder == "" {
				placeholder = "Select an option"
			}
			b.raw(`<select`)
			b.attr("id", el.ElementID)
			b.raw(`><option value="" disabled selected>`)
			b.text(placeholder)
			b.raw(`</option><option value="option1">Option 1</option><option value="option2">Option 2</option></select>`)
		case "checkbox":
			b.raw(`<span class="inline"><input type="checkbox"`)
			b.attr("id", el.ElementID)
			b.raw(`><label`)
			b.attr("for", el.ElementID)
			b.raw(`>`)
			b.text(label)
			b.raw(`</label></span>`)
		}
	})
}

// ElementsPage is the webauto manage view: form plus the element table.
func ElementsPage(site Site, elements []WebElement, form ElementFormData, csrfToken string, flashes []Flash) templ.Component {
	editing := form.InternalID != ""
	body := component(func(b *builder) {
		b.raw(`<div class="page-head"><div><h1>Webauto Helper</h1><p class="muted">Create and manage elements for web automation practice.</p></div>`)
		b.raw(`<form method="GET" action="/webauto/export/"><button id="download-json-button" type="submit"`)
		if len(elements) == 0 {
			b.raw(` disabled`)
		}
		b.raw(`>Download JSON</button></form></div>`)

		b.raw(`<p class="tabs"><a id="manage-elements-tab" class="active" href="/webauto/">Manage Elements</a><a id="preview-elements-tab" href="/webauto/preview/">Elements Preview</a></p>`)

		b.raw(`<section id="element-form-card" class="card"><h2>`)
		if editing {
			b.raw(`Update Element</h2><p class="muted">Editing element: `)
			b.text(form.ElementID)
			b.raw(`</p>`)
		} else {
			b.raw(`Create Element</h2><p class="muted">Add a new element to the page.</p>`)
		}
		b.raw(`<form method="POST" action="/webauto/elements/" class="stack">`)
		b.csrfField(csrfToken)
		if editing {
			b.raw(`<input type="hidden" name="internalId"`)
			b.attr("value", form.InternalID)
			b.raw(`>`)
		}
		// The id of an existing element is immutable, so the input is
		// disabled while editing.
		b.raw(`<label>Element ID<input id="element-id-input" type="text" name="elementId" placeholder="e.g., login-button"`)
		b.attr("value", form.ElementID)
		if editing {
			b.raw(` disabled`)
		}
		b.raw(`></label>`)
		b.fieldError(form.Errors, "elementId")

		b.raw(`<label>Element Type<select id="element-type-select" name="elementType">`)
		for _, t := range ElementTypes {
			b.raw(`<option`)
			b.attr("value", t)
			if t == form.ElementType {
				b.raw(` selected`)
			}
			b.raw(`>`)
			b.text(ElementTypeLabels[t])
			b.raw(`</option>`)
		}
		b.raw(`</select></label>`)
		b.fieldError(form.Errors, "elementType")

		b.raw(`<label>Initial Value / Text / URL<input id="element-value-input" type="text" name="value" placeholder="e.g., Click me, or an image URL"`)
		b.attr("value", form.Value)
		b.raw(`></label>`)

		b.raw(`<p class="actions"><button id="add-update-button" type="submit">`)
		if editing {
			b.raw(`Update Element`)
		} else {
			b.raw(`Add Element`)
		}
		b.raw(`</button>`)
		if editing {
			b.raw(` <a id="cancel-edit-button" class="button secondary" href="/webauto/">Cancel</a>`)
		}
		b.raw(`</p></form></section>`)

		b.raw(`<section id="elements-list-card" class="card"><h2>Current Elements</h2>`)
		if len(elements) == 0 {
			b.raw(`<div id="no-elements-message" class="empty"><p>No elements created yet.</p><p>Use the form to add your first element.</p></div>`)
		} else {
			b.raw(`<table><thead><tr><th>ID</th><th>Type</th><th>Value/Text</th><th>Actions</th></tr></thead><tbody>`)
			for _, el := range elements {
				b.raw(`<tr`)
				b.attr("id", "element-row-"+el.InternalID)
				b.raw(`><td class="code">`)
				b.text(el.ElementID)
				b.raw(`</td><td>`)
				b.text(ElementTypeLabels[el.ElementType])
				b.raw(`</td><td class="truncate">`)
				b.text(el.Value)
				b.raw(`</td><td><a`)
				b.attr("id", "edit-button-"+el.InternalID)
				b.attr("href", "/webauto/?edit="+el.InternalID)
				b.raw(`>Edit</a> <a class="danger"`)
				b.attr("id", "delete-button-"+el.InternalID)
				b.attr("href", "/webauto/delete/"+el.InternalID+"/")
				b.raw(`>Delete</a></td></tr>`)
			}
			b.raw(`</tbody></table>`)
		}
		b.raw(`</section>`)
	})
	return Layout(site, "Webauto Helper", flashes, body)
}

// ElementsPreview renders every element through RenderElement.
func ElementsPreview(site Site, elements []WebElement, flashes []Flash) templ.Component {
	rendered := make([]templ.Component, len(elements))
	for i, el := range elements {
		rendered[i] = RenderElement(el)
	}
	body := component(func(b *builder) {
		b.raw(`<p class="tabs"><a id="manage-elements-tab" href="/webauto/">Manage Elements</a><a id="preview-elements-tab" class="active" href="/webauto/preview/">Elements Preview</a></p>`)
		b.raw(`<section class="card"><h2>Live Preview</h2><p class="muted">Interact with the elements you&#39;ve created. View the page source to see their IDs.</p>`)
		b.raw(`<div id="preview-pane" class="preview-pane">`)
	})
	tail := component(func(b *builder) {
		b.raw(`</div></section>`)
	})
	empty := component(func(b *builder) {
		b.raw(`<div id="no-preview-message" class="empty"><p>No elements to preview.</p><p>Go to the Manage Elements tab to create some.</p></div>`)
	})
	parts := []templ.Component{body}
	if len(rendered) == 0 {
		parts = append(parts, empty)
	} else {
		parts = append(parts, rendered...)
	}
	parts = append(parts, tail)
	return Layout(site, "Elements Preview", flashes, templ.Join(parts...))
}

// ConfirmDeleteElement is the two-step delete page for an element.
func ConfirmDeleteElement(site Site, el WebElement, csrfToken string) templ.Component {
	body := component(func(b *builder) {
		b.raw(`<section class="card center"><h1>Are you sure?</h1><p>This will permanently delete the element <strong class="code">`)
		b.text(el.ElementID)
		b.raw(`</strong>. This action cannot be undone.</p>`)
		b.raw(`<form method="POST"`)
		b.attr("action", "/webauto/delete/"+el.InternalID+"/")
		b.raw(`>`)
		b.csrfField(csrfToken)
		b.raw(`<p class="actions"><a class="button secondary" href="/webauto/">Cancel</a> <button type="submit" class="danger">Delete</button></p></form></section>`)
	})
	return Layout(site, "Delete element", nil, body)
}
