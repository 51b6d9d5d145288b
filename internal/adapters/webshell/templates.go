package webshell

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"stayfront/internal/domain"
	"stayfront/internal/shared"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmplFuncs = template.FuncMap{
	"nights": domain.Nights,
	// media resolves an image path against the media host; absolute URLs
	// pass through untouched.
	"media": func(base, path string) string {
		if path == "" {
			return path
		}
		if !strings.HasPrefix(path, "http") && !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return shared.MediaURL(base, path)
	},
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
}

var pageNames = []string{
	"home", "login", "register", "hotels", "hotel_detail",
	"rooms", "bookings", "profile", "admin", "error",
}

// Each page is its own template set built on the shared layout, so every
// page can define "content" without clashing.
var pages = func() map[string]*template.Template {
	out := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		out[name] = template.Must(template.New(name).Funcs(tmplFuncs).ParseFS(
			templateFS, "templates/layout.tmpl", "templates/"+name+".tmpl"))
	}
	return out
}()

// viewData is what every template executes against. Data carries the
// page-specific values; the rest is ambient chrome.
type viewData struct {
	Session   domain.Session
	Flash     string
	Alert     string
	Errors    domain.FieldErrors
	Form      map[string]string
	MediaBase string
	Data      map[string]any
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	h.renderWith(w, r, page, data, nil, nil)
}

// renderWith re-renders a page around a failed form submit: errs show next
// to their fields and form carries the values the user already typed.
func (h *Handlers) renderWith(w http.ResponseWriter, r *http.Request, page string, data map[string]any, errs domain.FieldErrors, form map[string]string) {
	t, ok := pages[page]
	if !ok {
		h.renderError(w, http.StatusInternalServerError, "Page not available")
		return
	}
	vd := viewData{
		Session:   h.Sessions.Current(),
		Flash:     r.URL.Query().Get("msg"),
		Alert:     r.URL.Query().Get("err"),
		Errors:    errs,
		Form:      form,
		MediaBase: h.MediaBase,
		Data:      data,
	}

	// render fully before writing so a template error can still 500 cleanly
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", vd); err != nil {
		log.Error().Err(err).Str("page", page).Msg("template render failed")
		h.renderError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handlers) renderError(w http.ResponseWriter, status int, msg string) {
	vd := viewData{Alert: msg, MediaBase: h.MediaBase}
	if h.Sessions != nil {
		vd.Session = h.Sessions.Current()
	}
	var buf bytes.Buffer
	if err := pages["error"].ExecuteTemplate(&buf, "layout", vd); err != nil {
		http.Error(w, msg, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
