package api

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"gapminder/internal/models"
)

//go:embed page.html
var pageHTML string

var (
	pageTmplOnce sync.Once
	pageTmpl     *template.Template
)

type pageData struct {
	Title   string
	Options models.Options
}

// GetPage serves the dashboard shell. Its script posts every control change
// to /api/callback and applies the returned outputs.
func (h *Handler) GetPage(c echo.Context) error {
	pageTmplOnce.Do(func() {
		pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // server-built option data
			},
		}).Parse(pageHTML))
	})

	var buf bytes.Buffer
	data := pageData{Title: "Gapminder Dashboard", Options: h.dash.Index().Options(h.defaults)}
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
