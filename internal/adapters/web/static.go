package web

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v5"
)

// EventImage serves a stored event image from the public directory.
// filepath.Base strips any traversal attempt from the name.
func (h *Handler) EventImage(c echo.Context) error {
	name := filepath.Base(c.PathParam("name"))
	if name == "." || name == "/" {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	http.ServeFile(c.Response(), c.Request(), filepath.Join(h.imageDir, name))
	return nil
}
