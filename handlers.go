package postdesk

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"postdesk/views"
)

func (a *App) handlePostList(c echo.Context) error {
	search := c.QueryParam("q")
	category := c.QueryParam("category")
	priority := c.QueryParam("priority")
	filtered := FilterPosts(a.Posts.All(), search, category, priority)
	return Render(c, views.PostList(a.site(), filtered, search, category, priority, a.flashes(c)))
}

func (a *App) handlePostDetail(c echo.Context) error {
	post, err := a.Posts.Get(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return Render(c, views.PostDetail(a.site(), post, a.flashes(c)))
}

func (a *App) handleNewPostForm(c echo.Context) error {
	form := views.PostFormData{
		Category:    "Technology",
		Priority:    "Medium",
		PublishDate: views.InputDate(time.Now()),
	}
	return Render(c, views.PostForm(a.site(), form, false, CsrfToken(c), a.flashes(c)))
}

func (a *App) handleCreatePost(c echo.Context) error {
	in, form, err := a.bindPostForm(c)
	if err != nil {
		return err
	}
	if len(form.Errors) > 0 {
		for field, msg := range ValidatePost(in) {
			form.Errors[field] = msg
		}
		return RenderStatus(c, http.StatusUnprocessableEntity,
			views.PostForm(a.site(), form, false, CsrfToken(c), a.flashes(c)))
	}
	post, errs, saveErr := a.Posts.Create(in)
	if len(errs) > 0 {
		form.Errors = errs
		return RenderStatus(c, http.StatusUnprocessableEntity,
			views.PostForm(a.site(), form, false, CsrfToken(c), a.flashes(c)))
	}
	a.reportSave(c, saveErr)
	addFlash(c, views.Flash{Kind: "success", Title: "Success",
		Body: fmt.Sprintf("Post %q has been created.", post.Title)})
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleEditPostForm(c echo.Context) error {
	post, err := a.Posts.Get(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	form := views.PostFormData{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		Author:      post.Author,
		ImageURL:    post.ImageURL,
		Category:    post.Category,
		Priority:    post.Priority,
		IsPublished: post.IsPublished,
		PublishDate: views.InputDate(post.PublishDate),
	}
	return Render(c, views.PostForm(a.site(), form, true, CsrfToken(c), a.flashes(c)))
}

func (a *App) handleUpdatePost(c echo.Context) error {
	id := c.Param("id")
	in, form, err := a.bindPostForm(c)
	if err != nil {
		return err
	}
	form.ID = id
	if len(form.Errors) > 0 {
		for field, msg := range ValidatePost(in) {
			form.Errors[field] = msg
		}
		return RenderStatus(c, http.StatusUnprocessableEntity,
			views.PostForm(a.site(), form, true, CsrfToken(c), a.flashes(c)))
	}
	// The form always submits the complete field set; the patch carries
	// every field. Partial patches are a library-level affordance.
	patch := PostPatch{
		Title:       &in.Title,
		Content:     &in.Content,
		Author:      &in.Author,
		ImageURL:    &in.ImageURL,
		Category:    &in.Category,
		Priority:    &in.Priority,
		IsPublished: &in.IsPublished,
		PublishDate: &in.PublishDate,
	}
	post, errs, updateErr := a.Posts.Update(id, patch)
	if len(errs) > 0 {
		form.Errors = errs
		return RenderStatus(c, http.StatusUnprocessableEntity,
			views.PostForm(a.site(), form, true, CsrfToken(c), a.flashes(c)))
	}
	if errors.Is(updateErr, ErrNotFound) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	a.reportSave(c, updateErr)
	addFlash(c, views.Flash{Kind: "success", Title: "Success",
		Body: fmt.Sprintf("Post %q has been updated.", post.Title)})
	return c.Redirect(http.StatusSeeOther, "/posts/"+id+"/")
}

func (a *App) handleConfirmDeletePost(c echo.Context) error {
	post, err := a.Posts.Get(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return Render(c, views.ConfirmDeletePost(a.site(), post, CsrfToken(c)))
}

func (a *App) handleDeletePost(c echo.Context) error {
	post, removed, saveErr := a.Posts.Delete(c.Param("id"))
	if removed {
		a.reportSave(c, saveErr)
		addFlash(c, views.Flash{Kind: "success", Title: "Post Deleted",
			Body: fmt.Sprintf("Post %q has been removed.", post.Title)})
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// bindPostForm collects the submitted field set and echoes it back as form
// state for re-rendering. An attached image is converted to an embedded
// data URL, replacing whatever the hidden imageUrl field carried.
func (a *App) bindPostForm(c echo.Context) (PostInput, views.PostFormData, error) {
	if err := c.Request().ParseMultipartForm(maxAttachmentSize); err != nil && err != http.ErrNotMultipart {
		return PostInput{}, views.PostFormData{}, echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	in := PostInput{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Content:     c.FormValue("content"),
		Author:      strings.TrimSpace(c.FormValue("author")),
		ImageURL:    c.FormValue("imageUrl"),
		Category:    c.FormValue("category"),
		Priority:    c.FormValue("priority"),
		IsPublished: c.FormValue("isPublished") != "",
	}
	rawDate := strings.TrimSpace(c.FormValue("publishDate"))
	if d, err := time.Parse("2006-01-02", rawDate); err == nil {
		in.PublishDate = d
	}

	form := views.PostFormData{
		Title:       in.Title,
		Content:     in.Content,
		Author:      in.Author,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Priority:    in.Priority,
		IsPublished: in.IsPublished,
		PublishDate: rawDate,
		Errors:      map[string]string{},
	}

	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		dataURL, attachErr := attachmentDataURL(file)
		if attachErr != nil {
			c.Logger().Warnf("attach image: %v", attachErr)
			form.Errors["image"] = "Invalid image: " + attachErr.Error()
		} else {
			in.ImageURL = dataURL
			form.ImageURL = dataURL
		}
	}
	return in, form, nil
}

// reportSave logs and surfaces a persistence failure without blocking:
// the in-memory state already holds the change.
func (a *App) reportSave(c echo.Context, err error) {
	if err == nil {
		return
	}
	c.Logger().Errorf("persist: %v", err)
	addFlash(c, views.Flash{Kind: "error", Title: "Warning",
		Body: "Your change could not be saved to disk. It is kept for this session."})
}
