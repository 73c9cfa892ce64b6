// internal/web/rate.go
//
// The rating page: five category scores, 1..5 each.
//
// Context
//   Ratings do not flow through the text-form engine; the inputs are radio
//   groups, not free text.  The handler checks presence here, and the
//   rating client rechecks the 1..5 range before any network call.
package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/yanizio/swimspot/internal/api"
	"github.com/yanizio/swimspot/internal/metrics"
)

// ratingCategory is one scored aspect of a place.
type ratingCategory struct {
	Key   string
	Label string
}

var ratingCategories = []ratingCategory{
	{"purity", "Water purity"},
	{"logistics", "Logistics"},
	{"vibe", "Vibe"},
	{"temperature", "Water temperature"},
	{"impression", "Overall impression"},
}

type ratePage struct {
	page
	PlaceID    int64
	PlaceTitle string
	Flash      string
	Action     string
	Categories []ratingCategory
	Values     map[string]int
	Errors     map[string]string
}

func (h *Handlers) handleRateGET(w http.ResponseWriter, r *http.Request) {
	id, ok := placeID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	target := "/places/" + strconv.FormatInt(id, 10) + "/rate"
	if !h.sess.Authenticated() {
		h.authRedirect(w, r, target)
		return
	}
	h.renderRate(w, r, id, map[string]int{}, map[string]string{}, "")
}

func (h *Handlers) handleRatePOST(w http.ResponseWriter, r *http.Request) {
	id, ok := placeID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	target := "/places/" + strconv.FormatInt(id, 10)
	if !h.sess.Authenticated() {
		h.authRedirect(w, r, target+"/rate")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	values := make(map[string]int, len(ratingCategories))
	errs := make(map[string]string)
	for _, cat := range ratingCategories {
		score, err := strconv.Atoi(r.PostForm.Get(cat.Key))
		if err != nil || score < 1 || score > 5 {
			errs[cat.Key] = "Pick a score."
			continue
		}
		values[cat.Key] = score
	}
	if len(errs) > 0 {
		metrics.FormSubmissions.WithLabelValues("place/rate", "invalid").Inc()
		h.renderRate(w, r, id, values, errs, "")
		return
	}

	ident, token, ok := h.sess.Current()
	if !ok {
		h.authRedirect(w, r, target+"/rate")
		return
	}
	err := h.ratings.Submit(r.Context(), api.RatingSubmission{
		UserID:  ident.ID,
		PlaceID: id,
		Scores:  values,
	}, token)
	if err != nil {
		metrics.FormSubmissions.WithLabelValues("place/rate", "failed").Inc()
		h.log.Warnw("rating submit failed", "place", id, "error", err)
		msg := "Could not submit the rating.  Please try again."
		if errors.Is(err, api.ErrRejected) {
			msg = "The rating was not accepted."
		}
		h.renderRate(w, r, id, values, errs, msg)
		return
	}

	metrics.FormSubmissions.WithLabelValues("place/rate", "submitted").Inc()
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handlers) renderRate(w http.ResponseWriter, r *http.Request, id int64, values map[string]int, errs map[string]string, flash string) {
	title := "this place"
	if detail, err := h.places.Detail(r.Context(), id); err == nil {
		title = detail.Title
	}

	h.views.Page(w, "rate", ratePage{
		page:       h.newPage(r, "rate", "Rate "+title),
		PlaceID:    id,
		PlaceTitle: title,
		Flash:      flash,
		Action:     "/places/" + strconv.FormatInt(id, 10) + "/rate",
		Categories: ratingCategories,
		Values:     values,
		Errors:     errs,
	})
}
