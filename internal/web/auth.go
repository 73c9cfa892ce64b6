// internal/web/auth.go
//
// Sign-in and account-creation pages.
//
// Context
//   One page serves both modes; the active form definition follows the
//   ?mode= query.  A ?redirect= parameter carries the path the visitor was
//   trying to reach, survives the round trip through the POST action, and
//   is vetted by safeRedirect before use.
package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/yanizio/swimspot/internal/api"
	"github.com/yanizio/swimspot/internal/form"
	"github.com/yanizio/swimspot/internal/metrics"
	"github.com/yanizio/swimspot/internal/validate"
)

type authPage struct {
	page
	Mode     string
	Redirect string
	Flash    string
	Form     *form.State
	Action   string
	Options  map[string][]api.Option

	// Strength is the 0..4 password meter, register mode only.
	Strength int
}

func (h *Handlers) handleAuthGET(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode != "register" {
		mode = "login"
	}
	redirect := safeRedirect(r.URL.Query().Get("redirect"))

	st, err := form.New("auth/" + mode)
	if err != nil {
		h.log.Errorw("form definition missing", "form", "auth/"+mode, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.views.Page(w, "auth", authPage{
		page:     h.newPage(r, "auth", "Sign in"),
		Mode:     mode,
		Redirect: redirect,
		Form:     st,
		Action:   authAction(mode, redirect),
		Options:  map[string][]api.Option{},
	})
}

func (h *Handlers) handleLoginPOST(w http.ResponseWriter, r *http.Request) {
	h.handleCredentialsPOST(w, r, "login", h.sess.Login,
		"Incorrect email or password.")
}

func (h *Handlers) handleRegisterPOST(w http.ResponseWriter, r *http.Request) {
	h.handleCredentialsPOST(w, r, "register", h.sess.Register,
		"Could not create the account.  The email may already be in use.")
}

func (h *Handlers) handleLogoutPOST(w http.ResponseWriter, r *http.Request) {
	h.sess.Logout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleCredentialsPOST is the shared login/register flow.  acquire is the
// session-cache method that trades credentials for a session.
func (h *Handlers) handleCredentialsPOST(w http.ResponseWriter, r *http.Request, mode string, acquire func(context.Context, string, string) bool, rejectedMsg string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	formID := "auth/" + mode
	redirect := safeRedirect(r.URL.Query().Get("redirect"))

	def, ok := form.Get(formID)
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	st := rebuildState(def, r.PostForm)

	outcome := st.Submit(r.Context(), h.sess, func(ctx context.Context, p map[string]string) error {
		if !acquire(ctx, p["email"], p["password"]) {
			return errors.New("credentials rejected")
		}
		return nil
	})
	metrics.FormSubmissions.WithLabelValues(formID, outcome.String()).Inc()

	if outcome == form.Submitted {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}

	data := authPage{
		page:     h.newPage(r, "auth", "Sign in"),
		Mode:     mode,
		Redirect: redirect,
		Form:     st,
		Action:   authAction(mode, redirect),
		Options:  map[string][]api.Option{},
	}
	if outcome == form.Failed {
		data.Flash = rejectedMsg
	}
	if mode == "register" {
		data.Strength = validate.PasswordStrength(st.Value("password"))
	}
	h.views.Page(w, "auth", data)
}

func authAction(mode, redirect string) string {
	action := "/auth/" + mode
	if redirect != "/" {
		action += "?redirect=" + url.QueryEscape(redirect)
	}
	return action
}
