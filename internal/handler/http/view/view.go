package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders full HTML pages.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any) error
}

type templateRenderer struct {
	pages map[string]*template.Template
}

// Pages available to Render.
const (
	PageAdmin   = "admin"
	PageCheckin = "checkin"
	PageLogin   = "login"
)

// NewRenderer parses every page together with the shared layout.
func NewRenderer() (Renderer, error) {
	pages := make(map[string]*template.Template)
	for _, page := range []string{PageAdmin, PageCheckin, PageLogin} {
		tmpl, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		pages[page] = tmpl
	}
	return &templateRenderer{pages: pages}, nil
}

func (r *templateRenderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	// render into a buffer so a template error never leaves a half-written page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
