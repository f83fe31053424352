package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/labstack/echo/v5"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pageNames = []string{"welcome", "show", "create", "edit", "dashboard", "login", "register"}

var pageFuncs = template.FuncMap{
	"fmtDate": func(t time.Time) string {
		return t.Format("02/01/2006")
	},
	"contains": func(items []string, item string) bool {
		for _, it := range items {
			if it == item {
				return true
			}
		}
		return false
	},
}

// renderer holds one parsed template set per page; every set shares the
// layout, each page supplies the "content" block.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() *renderer {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.New(name).Funcs(pageFuncs).ParseFS(
			templateFS,
			"templates/layout.gohtml",
			"templates/"+name+".gohtml",
		))
	}
	return &renderer{pages: pages}
}

func (r *renderer) render(c echo.Context, status int, page string, data map[string]any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("render: unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	return c.HTML(status, buf.String())
}
