// internal/view/render.go
//
// Central view engine: embedded template sets, func-map injection, and
// buffered execution so a template error never leaks a half-written page.
//
// Public helpers
// --------------
//   - New   – parse the embedded layout, partials, and pages once at boot.
//   - Page  – write a rendered page to an http.ResponseWriter.
//
// Every page file is parsed into its own clone of the base set (layout +
// partials), so each page can define its own "content" template without
// colliding with siblings.  Sub-templates ({{ template "field" . }}) work
// out-of-the-box.
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"go.uber.org/zap"
)

//go:embed templates/*.html templates/pages/*.html
var files embed.FS

// Renderer holds the parsed template sets.  It is read-only after New
// returns and therefore safe for concurrent use.
type Renderer struct {
	log   *zap.SugaredLogger
	pages map[string]*template.Template
}

// New parses the embedded templates.  The base set holds layout.html and
// every partial directly under templates/; each file under
// templates/pages/ becomes a page keyed by its base name ("home",
// "place", ...).
func New(log *zap.SugaredLogger) (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcMap()).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse base: %w", err)
	}

	names, err := fs.Glob(files, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: glob pages: %w", err)
	}

	pages := make(map[string]*template.Template, len(names))
	for _, p := range names {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("view: clone base: %w", err)
		}
		if _, err := set.ParseFS(files, p); err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", p, err)
		}
		key := strings.TrimSuffix(path.Base(p), ".html")
		pages[key] = set
	}

	return &Renderer{log: log, pages: pages}, nil
}

// Page renders the named page into a buffer, then streams it.  A missing
// page or an execution error yields a plain 500; the detail goes to the
// log, never to the visitor.
func (r *Renderer) Page(w http.ResponseWriter, name string, data any) {
	set, ok := r.pages[name]
	if !ok {
		r.log.Errorw("unknown page template", "page", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.log.Errorw("template execution failed", "page", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
