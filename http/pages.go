package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type page struct {
	Title string
}

// renderPage executes the named template into a buffer first so a failing
// template never leaves a half written response.
func renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write page")
	}
}

func Home(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, "home.html", page{Title: "Kostenrechner"})
}

// NotFound is the fallback for every unknown route. It carries a single
// link back to the home page.
func NotFound(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusNotFound, "not_found.html", page{Title: "Seite nicht gefunden"})
}
