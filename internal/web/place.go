// internal/web/place.go
//
// Place detail: aggregated ratings, comments, and the comment form.
package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/swimspot/internal/api"
	"github.com/yanizio/swimspot/internal/form"
	"github.com/yanizio/swimspot/internal/metrics"
)

const commentForm = "place/comment"

type placePage struct {
	page
	PlaceID  int64
	Detail   api.PlaceDetail
	Comments []api.Comment
	Flash    string
	Form     *form.State
	Action   string
	Options  map[string][]api.Option
}

// placeID pulls the {id} route parameter.
func placeID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handlers) handlePlaceGET(w http.ResponseWriter, r *http.Request) {
	id, ok := placeID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	st, err := form.New(commentForm)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.renderPlace(w, r, id, st, "")
}

func (h *Handlers) handleCommentPOST(w http.ResponseWriter, r *http.Request) {
	id, ok := placeID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	def, ok := form.Get(commentForm)
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	st := rebuildState(def, r.PostForm)

	outcome := st.Submit(r.Context(), h.sess, func(ctx context.Context, p map[string]string) error {
		ident, token, ok := h.sess.Current()
		if !ok {
			return errors.New("no session")
		}
		return h.comments.Post(ctx, api.CommentSubmission{
			Text:    p["comment"],
			UserID:  ident.ID,
			PlaceID: id,
		}, token)
	})
	metrics.FormSubmissions.WithLabelValues(commentForm, outcome.String()).Inc()

	target := "/places/" + strconv.FormatInt(id, 10)
	switch outcome {
	case form.Submitted:
		http.Redirect(w, r, target, http.StatusSeeOther)
	case form.AuthRequired:
		h.authRedirect(w, r, target)
	case form.Failed:
		h.renderPlace(w, r, id, st, "Could not post the comment.  Please try again.")
	default:
		h.renderPlace(w, r, id, st, "")
	}
}

func (h *Handlers) renderPlace(w http.ResponseWriter, r *http.Request, id int64, st *form.State, flash string) {
	detail, err := h.places.Detail(r.Context(), id)
	if errors.Is(err, api.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Warnw("place detail unavailable", "place", id, "error", err)
		http.Error(w, "the place is unavailable right now", http.StatusBadGateway)
		return
	}

	data := placePage{
		page:    h.newPage(r, "place", detail.Title),
		PlaceID: id,
		Detail:  detail,
		Flash:   flash,
		Form:    st,
		Action:  "/places/" + strconv.FormatInt(id, 10) + "/comments",
		Options: map[string][]api.Option{},
	}

	// Comments are decoration; a lookup failure never blocks the page.
	if comments, err := h.comments.List(r.Context(), id); err != nil {
		h.log.Warnw("comment lookup failed", "place", id, "error", err)
	} else {
		data.Comments = comments
	}

	h.views.Page(w, "place", data)
}
