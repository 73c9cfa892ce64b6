// internal/web/profile.go
//
// Account page; requires a session.
package web

import "net/http"

func (h *Handlers) handleProfileGET(w http.ResponseWriter, r *http.Request) {
	if !h.sess.Authenticated() {
		h.authRedirect(w, r, "/profile")
		return
	}
	h.views.Page(w, "profile", h.newPage(r, "profile", "Your account"))
}
