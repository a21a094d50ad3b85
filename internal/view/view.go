// Package view renders the HTML pages of the inventory website from
// templates embedded into the binary.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*
var templateFS embed.FS

// Page names accepted by [Renderer.Render].
const (
	PageIndex      = "index.gohtml"
	PageBagForm    = "bag_form.gohtml"
	PageVialForm   = "vial_form.gohtml"
	PageFreezeForm = "freeze_form.gohtml"
	PageBagView    = "bag_view.gohtml"
	PageVialView   = "vial_view.gohtml"
	PageConfirm    = "confirm.gohtml"
	PageError      = "error.gohtml"
)

var pages = []string{
	PageIndex,
	PageBagForm,
	PageVialForm,
	PageFreezeForm,
	PageBagView,
	PageVialView,
	PageConfirm,
	PageError,
}

// shared templates parsed together with every page
var partials = []string{
	"templates/layout.gohtml",
	"templates/description_fields.gohtml",
}

// Page is the value every template is executed with.
type Page struct {
	WebsiteName string
	Version     string
	Title       string
	Data        any
}

// Renderer executes page templates inside the common layout.
type Renderer struct {
	templates   map[string]*template.Template
	websiteName string
	version     string
}

// NewRenderer parses all pages once so that requests only execute templates.
func NewRenderer(websiteName, version string) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		patterns := append([]string{"templates/" + page}, partials...)
		tmpl, err := template.New(page).ParseFS(templateFS, patterns...)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParsingTemplate, page, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{
		templates:   templates,
		websiteName: websiteName,
		version:     version,
	}, nil
}

// Render writes page with the given status. The page is executed into a
// buffer first so a failing template never produces a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page, title string, data any) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "layout", Page{
		WebsiteName: r.websiteName,
		Version:     r.version,
		Title:       title,
		Data:        data,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExecutingTemplate, page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}
