package postdesk

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"postdesk/views"
)

// exportFileName is the fixed name offered by the download action.
const exportFileName = "webauto-elements.json"

func (a *App) handleElements(c echo.Context) error {
	form := views.ElementFormData{ElementType: "input"}
	if editID := c.QueryParam("edit"); editID != "" {
		if el, err := a.Elements.Get(editID); err == nil {
			form = views.ElementFormData{
				InternalID:  el.InternalID,
				ElementID:   el.ElementID,
				ElementType: el.ElementType,
				Value:       el.Value,
			}
		}
	}
	return Render(c, views.ElementsPage(a.site(), a.Elements.All(), form, CsrfToken(c), a.flashes(c)))
}

// handleSaveElement services both create and update; an update is marked by
// the hidden internalId field the edit form carries.
func (a *App) handleSaveElement(c echo.Context) error {
	in := ElementInput{
		ElementID:   c.FormValue("elementId"),
		ElementType: c.FormValue("elementType"),
		Value:       c.FormValue("value"),
	}
	internalID := c.FormValue("internalId")

	var (
		el      WebElement
		errs    FieldErrors
		saveErr error
		verb    string
	)
	if internalID == "" {
		el, errs, saveErr = a.Elements.Create(in)
		verb = "created"
	} else {
		el, errs, saveErr = a.Elements.Update(internalID, in)
		verb = "updated"
	}
	if len(errs) > 0 {
		form := views.ElementFormData{
			InternalID:  internalID,
			ElementID:   in.ElementID,
			ElementType: in.ElementType,
			Value:       in.Value,
			Errors:      errs,
		}
		return RenderStatus(c, http.StatusUnprocessableEntity,
			views.ElementsPage(a.site(), a.Elements.All(), form, CsrfToken(c), a.flashes(c)))
	}
	if errors.Is(saveErr, ErrNotFound) {
		return c.Redirect(http.StatusSeeOther, "/webauto/")
	}
	a.reportSave(c, saveErr)
	addFlash(c, views.Flash{Kind: "success", Title: "Success",
		Body: fmt.Sprintf("Element %q has been %s.", el.ElementID, verb)})
	return c.Redirect(http.StatusSeeOther, "/webauto/")
}

func (a *App) handleConfirmDeleteElement(c echo.Context) error {
	el, err := a.Elements.Get(c.Param("internalId"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/webauto/")
	}
	return Render(c, views.ConfirmDeleteElement(a.site(), el, CsrfToken(c)))
}

func (a *App) handleDeleteElement(c echo.Context) error {
	el, removed, saveErr := a.Elements.Delete(c.Param("internalId"))
	if removed {
		a.reportSave(c, saveErr)
		addFlash(c, views.Flash{Kind: "success", Title: "Element Deleted",
			Body: fmt.Sprintf("Element %q has been removed.", el.ElementID)})
	}
	return c.Redirect(http.StatusSeeOther, "/webauto/")
}

func (a *App) handleElementsPreview(c echo.Context) error {
	return Render(c, views.ElementsPreview(a.site(), a.Elements.All(), a.flashes(c)))
}

// handleElementsExport serves the collection as a download, byte-identical
// to the persisted representation.
func (a *App) handleElementsExport(c echo.Context) error {
	data, err := a.Elements.ExportJSON()
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", exportFileName))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}
