// Package web serves the server-rendered Yatube pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/Kirill2434/yatube/pkg/ctxutil"
)

//go:embed templates
var templateFS embed.FS

// Data is a template context. Keys follow the page contracts: page_obj,
// group, author, posts_count, post, comments, form, is_edit.
// "user" is always set by the renderer.
type Data map[string]any

// Templates renders named pages, each composed with the shared layout.
type Templates struct {
	log   *slog.Logger
	pages map[string]*template.Template
}

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// NewTemplates parses every page under templates/ except the layout and
// includes. mediaURL maps a stored image path to its public URL.
func NewTemplates(logger *slog.Logger, mediaURL func(string) string) (*Templates, error) {
	funcs := template.FuncMap{
		"mediaURL": mediaURL,
		"date": func(t time.Time) string {
			return fmt.Sprintf("%02d %s %d", t.Day(), monthsGenitive[t.Month()-1], t.Year())
		},
		"linebreaksbr": func(s string) template.HTML {
			return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
		},
	}

	root, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}

	pages := map[string]*template.Template{}
	for _, dir := range []string{"posts", "users", "about", "core"} {
		names, err := fs.Glob(root, dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			t, err := template.New(path.Base(name)).Funcs(funcs).ParseFS(root, "base.html", "includes/*.html", name)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
			pages[name] = t
		}
	}

	return &Templates{log: logger.With("component", "templates"), pages: pages}, nil
}

// Render executes page name with data and writes it with status. The page
// is rendered to a buffer first so a template error never leaves a half
// written response.
func (t *Templates) Render(w http.ResponseWriter, r *http.Request, status int, name string, data Data) {
	page, ok := t.pages[name]
	if !ok {
		t.log.ErrorContext(r.Context(), "unknown template", slog.String("template", name))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = Data{}
	}
	if user, ok := ctxutil.UserFromCtx(r.Context()); ok {
		data["user"] = user
	} else {
		data["user"] = nil
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "base", data); err != nil {
		t.log.ErrorContext(r.Context(), "render template",
			slog.String("template", name),
			slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w) //nolint:errcheck
}
