package postdesk

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

// embeddedAssets holds the stylesheet shipped with the app.
//
//go:embed embedded/*
var embeddedAssets embed.FS

func handleStylesheet(c echo.Context) error {
	data, err := embeddedAssets.ReadFile("embedded/style.css")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", data)
}
