// internal/web/home.go
//
// Landing page: hero plus the scored place listing.
package web

import (
	"net/http"

	"github.com/yanizio/swimspot/internal/api"
)

type homePage struct {
	page
	Places    []api.PlaceSummary
	LoadError string
}

func (h *Handlers) handleHomeGET(w http.ResponseWriter, r *http.Request) {
	data := homePage{page: h.newPage(r, "home", "Find a place to swim")}

	places, err := h.places.ListWithScore(r.Context())
	if err != nil {
		h.log.Warnw("place listing unavailable", "error", err)
		data.LoadError = "Places are unavailable right now.  Please try again later."
	} else {
		data.Places = places
	}

	h.views.Page(w, "home", data)
}
