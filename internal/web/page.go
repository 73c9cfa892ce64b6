// internal/web/page.go
//
// Shared page scaffolding: the fields every template expects, plus the
// open-redirect guard for the post-login target.
package web

import (
	"net/http"
	"net/url"

	"github.com/yanizio/swimspot/internal/api"
	"github.com/yanizio/swimspot/internal/metrics"
	"github.com/yanizio/swimspot/internal/requestinfo"
)

// page carries the layout-level data.  Concrete pages embed it.
type page struct {
	Title  string
	Viewer *api.Identity
	Req    *requestinfo.Info
}

// newPage fills the layout fields and counts the view.
func (h *Handlers) newPage(r *http.Request, name, title string) page {
	metrics.PageViews.WithLabelValues(name).Inc()

	p := page{Title: title, Req: requestinfo.FromContext(r.Context())}
	if ident, _, ok := h.sess.Current(); ok {
		p.Viewer = &ident
	}
	return p
}

// safeRedirect accepts only same-site absolute paths.  Anything else,
// including protocol-relative "//host" tricks, falls back to "/".
func safeRedirect(target string) string {
	if len(target) < 1 || target[0] != '/' {
		return "/"
	}
	if len(target) > 1 && target[1] == '/' {
		return "/"
	}
	return target
}

// authRedirect sends an anonymous visitor to the login page and back.
func (h *Handlers) authRedirect(w http.ResponseWriter, r *http.Request, back string) {
	http.Redirect(w, r, "/auth?mode=login&redirect="+url.QueryEscape(back), http.StatusSeeOther)
}
