// Package webui serves the HTML converter page and the catalog debug pages.
package webui

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"easyconvert.app/internal/app"
	"easyconvert.app/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageCSP allows the pages' inline styles and the converter form, nothing else.
const pageCSP = "default-src 'none'; style-src 'unsafe-inline'; form-action 'self'; frame-ancestors 'none';"

type WebUI struct {
	*app.Application
	templates *template.Template
}

func New(application *app.Application) (*WebUI, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &WebUI{Application: application, templates: tmpl}, nil
}

// render executes a template into a buffer first so a failed render becomes a clean 500.
func (webUI *WebUI) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	var buf bytes.Buffer
	if err := webUI.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render page", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", pageCSP)
	_, _ = buf.WriteTo(w)
}
