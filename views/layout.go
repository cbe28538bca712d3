package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps a page body with the site chrome: head, nav, toast area.
func Layout(site Site, title string, flashes []Flash, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := &builder{}
		head.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		head.raw(`<title>`)
		if title != "" {
			head.text(title + " · " + site.Name)
		} else {
			head.text(site.Name)
		}
		head.raw(`</title>`)
		head.raw(`<link rel="stylesheet" href="/public/style.css">`)
		head.raw(`</head><body>`)
		head.raw(`<header class="topbar"><nav><a class="brand" href="/">`)
		head.text(site.Name)
		head.raw(`</a><a href="/">Posts</a><a href="/webauto/">Webauto</a><a href="/feed.xml">Feed</a></nav></header>`)
		head.raw(`<main class="page">`)
		for _, f := range flashes {
			head.raw(`<div`)
			head.attr("class", "toast toast-"+f.Kind)
			head.raw(`><strong>`)
			head.text(f.Title)
			head.raw(`</strong> `)
			head.text(f.Body)
			head.raw(`</div>`)
		}
		if _, err := io.WriteString(w, head.sb.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// NotFound is the styled 404 page.
func NotFound(site Site) templ.Component {
	body := component(func(b *builder) {
		b.raw(`<section class="card center"><h1>404</h1><p>That page does not exist.</p><p><a href="/">Back to posts</a></p></section>`)
	})
	return Layout(site, "Not found", nil, body)
}

// ServerError is the styled 500 page.
func ServerError(site Site) templ.Component {
	body := component(func(b *builder) {
		b.raw(`<section class="card center"><h1>Something went wrong</h1><p>Try again in a moment.</p><p><a href="/">Back to posts</a></p></section>`)
	})
	return Layout(site, "Error", nil, body)
}
