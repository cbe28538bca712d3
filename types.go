package postdesk

import "postdesk/views"

// The domain types live in the views package so templates can consume them
// without an import cycle; the library re-exports them.

// BlogPost is the core content type persisted in the blog-posts slot.
type BlogPost = views.BlogPost

// WebElement is one user-defined UI element in the webauto module.
type WebElement = views.WebElement

// Enumerations the validation schema closes over.
var (
	Categories   = views.Categories
	Priorities   = views.Priorities
	ElementTypes = views.ElementTypes
)
