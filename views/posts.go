package views

import "github.com/a-h/templ"

// PostList is the home page: filter controls plus the filtered post grid.
func PostList(site Site, posts []BlogPost, search, category, priority string, flashes []Flash) templ.Component {
	body := component(func(b *builder) {
		b.raw(`<div class="page-head"><div><h1>Blog Posts</h1><p class="muted">View, create, and manage your blog posts.</p></div>`)
		b.raw(`<a id="add-new-post-button" class="button" href="/posts/new/">Add New Post</a></div>`)

		// Filter & search card. A plain GET form: the URL carries the state.
		b.raw(`<section id="filters-card" class="card"><h2>Filter &amp; Search</h2><form method="GET" action="/" class="filters">`)
		b.raw(`<label>Search Title<input id="search-input" type="text" name="q" placeholder="Search by title..."`)
		b.attr("value", search)
		b.raw(`></label>`)
		b.raw(`<label>Category<select id="category-filter" name="category">`)
		filterOption(b, "All", "All Categories", category)
		for _, c := range Categories {
			filterOption(b, c, c, category)
		}
		b.raw(`</select></label>`)
		b.raw(`<label>Priority<select id="priority-filter" name="priority">`)
		filterOption(b, "All", "All Priorities", priority)
		for _, p := range Priorities {
			filterOption(b, p, p, priority)
		}
		b.raw(`</select></label>`)
		b.raw(`<button type="submit">Apply</button></form></section>`)

		b.raw(`<section id="posts-list-card" class="card"><h2>Your Posts</h2>`)
		if len(posts) == 0 {
			b.raw(`<div id="no-posts-message" class="empty"><p>No posts match the current filters.</p><p>Try adjusting your search or filter criteria.</p></div>`)
		} else {
			b.raw(`<div class="post-grid">`)
			for _, p := range posts {
				postCard(b, p)
			}
			b.raw(`</div>`)
		}
		b.raw(`</section>`)
	})
	return Layout(site, "Blog Posts", flashes, body)
}

func filterOption(b *builder, value, label, selected string) {
	b.raw(`<option`)
	b.attr("value", value)
	if value == selected || (selected == "" && value == "All") {
		b.raw(` selected`)
	}
	b.raw(`>`)
	b.text(label)
	b.raw(`</option>`)
}

func postCard(b *builder, p BlogPost) {
	b.raw(`<article`)
	b.attr("id", "post-card-"+p.ID)
	b.attr("class", "post-card")
	b.raw(`>`)
	if p.ImageURL != "" {
		b.raw(`<a`)
		b.attr("href", "/posts/"+p.ID+"/")
		b.raw(`><img class="post-image"`)
		b.attr("src", p.ImageURL)
		b.attr("alt", p.Title)
		b.raw(`></a>`)
	} else {
		b.raw(`<div class="post-image placeholder"></div>`)
	}
	b.raw(`<h3><a`)
	b.attr("href", "/posts/"+p.ID+"/")
	b.raw(`>`)
	b.text(p.Title)
	b.raw(`</a></h3><p class="muted">`)
	b.text(p.Author)
	b.raw(` · `)
	b.text(FormatDate(p.PublishDate))
	b.raw(`</p><p class="excerpt">`)
	b.text(excerpt(p.Content, 160))
	b.raw(`</p><p class="badges"><span class="badge">`)
	b.text(p.Category)
	b.raw(`</span>`)
	if p.IsPublished {
		b.raw(`<span class="badge badge-published">Published</span>`)
	} else {
		b.raw(`<span class="badge badge-draft">Draft</span>`)
	}
	b.raw(`<span`)
	b.attr("class", "priority "+PriorityClass(p.Priority))
	b.raw(`>`)
	b.text(p.Priority)
	b.raw(` Priority</span></p>`)
	b.raw(`<p class="actions"><a`)
	b.attr("id", "edit-post-"+p.ID)
	b.attr("href", "/posts/edit/"+p.ID+"/")
	b.raw(`>Edit</a> <a`)
	b.attr("id", "delete-post-"+p.ID)
	b.attr("class", "danger")
	b.attr("href", "/posts/delete/"+p.ID+"/")
	b.raw(`>Delete</a></p></article>`)
}

// PostForm renders the create or edit form with inline field errors.
func PostForm(site Site, form PostFormData, editing bool, csrfToken string, flashes []Flash) templ.Component {
	title := "Create Post"
	action := "/posts/new/"
	submit := "Add Post"
	if editing {
		title = "Update Post"
		action = "/posts/edit/" + form.ID + "/"
		submit = "Update Post"
	}
	body := component(func(b *builder) {
		b.raw(`<section id="post-form-card" class="card"><h1>`)
		b.raw(title)
		b.raw(`</h1>`)
		if editing {
			b.raw(`<p class="muted">Editing post: `)
			b.text(form.Title)
			b.raw(`</p>`)
		} else {
			b.raw(`<p class="muted">Fill out the form to add a new post.</p>`)
		}
		b.raw(`<form method="POST"`)
		b.attr("action", action)
		b.raw(` enctype="multipart/form-data" class="stack">`)
		b.csrfField(csrfToken)

		b.raw(`<label>Title<input type="text" name="title" placeholder="Your Post Title"`)
		b.attr("value", form.Title)
		b.raw(`></label>`)
		b.fieldError(form.Errors, "title")

		b.raw(`<label>Content<textarea name="content" rows="8" placeholder="Write your blog post here...">`)
		b.text(form.Content)
		b.raw(`</textarea></label>`)
		b.fieldError(form.Errors, "content")

		b.raw(`<label>Author<input type="text" name="author" placeholder="e.g., John Doe"`)
		b.attr("value", form.Author)
		b.raw(`></label>`)
		b.fieldError(form.Errors, "author")

		b.raw(`<label>Category<select name="category">`)
		for _, c := range Categories {
			b.raw(`<option`)
			b.attr("value", c)
			if c == form.Category {
				b.raw(` selected`)
			}
			b.raw(`>`)
			b.text(c)
			b.raw(`</option>`)
		}
		b.raw(`</select></label>`)
		b.fieldError(form.Errors, "category")

		b.raw(`<fieldset><legend>Priority</legend>`)
		for _, p := range Priorities {
			b.raw(`<label class="inline"><input type="radio" name="priority"`)
			b.attr("value", p)
			if p == form.Priority {
				b.raw(` checked`)
			}
			b.raw(`> `)
			b.text(p)
			b.raw(`</label>`)
		}
		b.raw(`</fieldset>`)
		b.fieldError(form.Errors, "priority")

		// The calendar affordance refuses dates before 1900; the schema
		// itself has no lower bound.
		b.raw(`<label>Publish Date<input type="date" name="publishDate" min="1900-01-01"`)
		b.attr("value", form.PublishDate)
		b.raw(`></label>`)
		b.fieldError(form.Errors, "publishDate")

		b.raw(`<label>Image<input type="file" name="image" accept="image/*"></label>`)
		b.raw(`<input type="hidden" name="imageUrl"`)
		b.attr("value", form.ImageURL)
		b.raw(`>`)
		if form.ImageURL != "" {
			b.raw(`<img class="attach-preview"`)
			b.attr("src", form.ImageURL)
			b.attr("alt", "attached image")
			b.raw(`>`)
		}
		b.fieldError(form.Errors, "image")

		b.raw(`<label class="inline"><input type="checkbox" name="isPublished"`)
		if form.IsPublished {
			b.raw(` checked`)
		}
		b.raw(`> Publish Post</label><p class="muted">Make this post publicly visible.</p>`)

		b.raw(`<p class="actions"><button type="submit">`)
		b.raw(submit)
		b.raw(`</button> <a class="button secondary" href="/">Cancel</a></p></form></section>`)
	})
	return Layout(site, title, flashes, body)
}

// PostDetail is the read view for a single post.
func PostDetail(site Site, p BlogPost, flashes []Flash) templ.Component {
	body := component(func(b *builder) {
		b.raw(`<p><a href="/">&larr; Back to posts</a></p>`)
		b.raw(`<article class="card post-detail">`)
		if p.ImageURL != "" {
			b.raw(`<img class="post-image"`)
			b.attr("src", p.ImageURL)
			b.attr("alt", p.Title)
			b.raw(`>`)
		}
		b.raw(`<h1>`)
		b.text(p.Title)
		b.raw(`</h1><p class="muted">`)
		b.text(p.Author)
		b.raw(` · `)
		b.text(FormatDate(p.PublishDate))
		b.raw(`</p><p class="badges"><span class="badge">`)
		b.text(p.Category)
		b.raw(`</span>`)
		if p.IsPublished {
			b.raw(`<span class="badge badge-published">Published</span>`)
		} else {
			b.raw(`<span class="badge badge-draft">Draft</span>`)
		}
		b.raw(`<span`)
		b.attr("class", "priority "+PriorityClass(p.Priority))
		b.raw(`>`)
		b.text(p.Priority)
		b.raw(` Priority</span></p><div class="content">`)
		b.text(p.Content)
		b.raw(`</div><p class="actions"><a`)
		b.attr("href", "/posts/edit/"+p.ID+"/")
		b.raw(`>Edit</a> <a class="danger"`)
		b.attr("href", "/posts/delete/"+p.ID+"/")
		b.raw(`>Delete</a></p></article>`)
	})
	return Layout(site, p.Title, flashes, body)
}

// ConfirmDeletePost is the first step of the two-step delete gesture.
// Cancel is a plain link; only the POST performs the mutation.
func ConfirmDeletePost(site Site, p BlogPost, csrfToken string) templ.Component {
	body := component(func(b *builder) {
		b.raw(`<section class="card center"><h1>Are you sure?</h1><p>This will permanently delete the post <strong>&quot;`)
		b.text(p.Title)
		b.raw(`&quot;</strong>. This action cannot be undone.</p>`)
		b.raw(`<form method="POST"`)
		b.attr("action", "/posts/delete/"+p.ID+"/")
		b.raw(`>`)
		b.csrfField(csrfToken)
		b.raw(`<p class="actions"><a class="button secondary" href="/">Cancel</a> <button type="submit" class="danger">Delete</button></p></form></section>`)
	})
	return Layout(site, "Delete post", nil, body)
}
