// Package postdesk is a local-first blog post manager plus a small
// element-authoring helper ("webauto"), built with Go, Echo, and templ.
// Both collections live whole in named slots of one SQLite-backed
// key-value store; the in-memory collections are the source of truth for
// rendering and every mutation rewrites its slot.
package postdesk

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"postdesk/views"
)

// App is the central postdesk application. It wires together the store,
// repositories, lifecycle managers, middleware, and routes.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	KV       *KV
	Posts    *Posts
	Elements *Elements

	customRoutes []func(*App)

	warnMu       sync.Mutex
	loadWarnings []views.Flash
}

// New creates a new postdesk App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start opens the store, loads both collections, sets up middleware and
// routes, and starts the server.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("postdesk: SessionSecret is required")
	}

	kv, err := OpenKV(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("postdesk: open store: %w", err)
	}
	a.KV = kv

	// A corrupt slot degrades to an empty collection plus a warning toast
	// on the first page render; it never aborts startup.
	posts, err := NewPostRepository(kv).Load()
	if err != nil {
		a.Echo.Logger.Warnf("postdesk: %v", err)
		a.loadWarnings = append(a.loadWarnings, views.Flash{
			Kind: "error", Title: "Error", Body: "Could not load saved posts.",
		})
	}
	a.Posts = NewPosts(NewPostRepository(kv), posts)

	elements, err := NewElementRepository(kv).Load()
	if err != nil {
		a.Echo.Logger.Warnf("postdesk: %v", err)
		a.loadWarnings = append(a.loadWarnings, views.Flash{
			Kind: "error", Title: "Error", Body: "Could not load saved elements.",
		})
	}
	a.Elements = NewElements(NewElementRepository(kv), elements)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/style.css", handleStylesheet)
	e.GET("/feed.xml", a.handleFeed)

	// Blog post routes
	e.GET("/", a.handlePostList)
	e.GET("/posts/new/", a.handleNewPostForm)
	e.POST("/posts/new/", a.handleCreatePost)
	e.GET("/posts/:id/", a.handlePostDetail)
	e.GET("/posts/edit/:id/", a.handleEditPostForm)
	e.POST("/posts/edit/:id/", a.handleUpdatePost)
	e.GET("/posts/delete/:id/", a.handleConfirmDeletePost)
	e.POST("/posts/delete/:id/", a.handleDeletePost)

	// Webauto routes
	e.GET("/webauto/", a.handleElements)
	e.POST("/webauto/elements/", a.handleSaveElement)
	e.GET("/webauto/delete/:internalId/", a.handleConfirmDeleteElement)
	e.POST("/webauto/delete/:internalId/", a.handleDeleteElement)
	e.GET("/webauto/preview/", a.handleElementsPreview)
	e.GET("/webauto/export/", a.handleElementsExport)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.KV != nil {
		return a.KV.Close()
	}
	return nil
}

// site returns the branding values templates read.
func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
	}
}

// flashes drains queued toasts, prepending any pending load warnings.
func (a *App) flashes(c echo.Context) []views.Flash {
	a.warnMu.Lock()
	out := a.loadWarnings
	a.loadWarnings = nil
	a.warnMu.Unlock()
	return append(out, popFlashes(c)...)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
