// internal/web/addplace.go
//
// The three-step add-place wizard.
//
// Context
//   Access-zone and infrastructure picklists come from two backend lookups
//   that run concurrently inside PlaceClient.Options.  When the lookup
//   fails the wizard still renders; the selects are empty and the page
//   carries a retry notice, so typed-in work is never thrown away.
package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/yanizio/swimspot/internal/api"
	"github.com/yanizio/swimspot/internal/form"
	"github.com/yanizio/swimspot/internal/metrics"
)

const addPlaceForm = "place/add"

type addPlacePage struct {
	page
	Flash         string
	Form          *form.State
	Action        string
	Options       map[string][]api.Option
	OptionsFailed bool
}

func (h *Handlers) handleAddPlaceGET(w http.ResponseWriter, r *http.Request) {
	if !h.sess.Authenticated() {
		h.authRedirect(w, r, "/places/add")
		return
	}
	st, err := form.New(addPlaceForm)
	if err != nil {
		h.log.Errorw("form definition missing", "form", addPlaceForm, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.renderAddPlace(w, r, st, "")
}

func (h *Handlers) handleAddPlacePOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	def, ok := form.Get(addPlaceForm)
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	st := rebuildState(def, r.PostForm)

	switch r.PostForm.Get("_action") {
	case actionBack:
		st.Back()
		h.renderAddPlace(w, r, st, "")
		return
	case actionNext:
		st.Advance()
		h.renderAddPlace(w, r, st, "")
		return
	}

	outcome := st.Submit(r.Context(), h.sess, func(ctx context.Context, p map[string]string) error {
		_, token, _ := h.sess.Current()
		return h.places.Create(ctx, placeFromPayload(p), token)
	})
	metrics.FormSubmissions.WithLabelValues(addPlaceForm, outcome.String()).Inc()

	switch outcome {
	case form.Submitted:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case form.AuthRequired:
		h.authRedirect(w, r, "/places/add")
	case form.Failed:
		h.renderAddPlace(w, r, st, "Could not save the place.  Please try again.")
	default:
		h.renderAddPlace(w, r, st, "")
	}
}

// placeFromPayload maps the sanitized form payload onto the wire type.
func placeFromPayload(p map[string]string) api.CreatePlace {
	place := api.CreatePlace{
		Title:       p["title"],
		Region:      p["region"],
		City:        p["city"],
		Description: p["description"],
		AccessZone:  p["access_zone"],
		Transport:   p["transport"],
	}
	for _, item := range strings.Split(p["infrastructure"], ",") {
		if item = strings.TrimSpace(item); item != "" {
			place.Infra = append(place.Infra, item)
		}
	}
	return place
}

func (h *Handlers) renderAddPlace(w http.ResponseWriter, r *http.Request, st *form.State, flash string) {
	data := addPlacePage{
		page:    h.newPage(r, "add_place", "Add a place"),
		Flash:   flash,
		Form:    st,
		Action:  "/places/add",
		Options: map[string][]api.Option{},
	}

	zones, features, err := h.loadOptions(r.Context())
	if err != nil {
		h.log.Warnw("option lookup failed", "error", err)
		data.OptionsFailed = true
	} else {
		data.Options["access_zone"] = zones
		data.Options["infrastructure"] = features
	}

	h.views.Page(w, "add_place", data)
}

// optionSet is the memoized pair of picklists.
type optionSet struct {
	zones    []api.Option
	features []api.Option
}

// loadOptions serves the picklists from the memo, falling back to the two
// concurrent backend lookups on a miss.  Failures are never cached.
func (h *Handlers) loadOptions(ctx context.Context) (zones, features []api.Option, err error) {
	if v, ok := h.memo.Get("options"); ok {
		set := v.(optionSet)
		return set.zones, set.features, nil
	}
	zones, features, err = h.places.Options(ctx)
	if err != nil {
		return nil, nil, err
	}
	h.memo.Add("options", optionSet{zones: zones, features: features})
	return zones, features, nil
}
