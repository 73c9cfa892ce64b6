// internal/web/web.go
//
// Swimspot – HTTP page handlers.
//
// Context
//   Handlers are deliberately thin.  Each POST rebuilds the relevant form
//   state from the submitted values, drives the form engine one action
//   forward, and renders or redirects on the outcome.  All domain checks
//   live in the form, validate, and api packages; nothing here inspects a
//   field value directly.
//
// Notes
//   • Oxford commas, two spaces after periods.

package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/swimspot/internal/api"
	"github.com/yanizio/swimspot/internal/cache"
	"github.com/yanizio/swimspot/internal/session"
	"github.com/yanizio/swimspot/internal/view"
)

// Picklists change on backend deploys, not between page loads.
const optionTTL = 5 * time.Minute

// Handlers bundles every collaborator the pages need.  Construct once in
// cmd/web and mount Routes() on the site router.
type Handlers struct {
	log      *zap.SugaredLogger
	views    *view.Renderer
	sess     *session.Cache
	places   *api.PlaceClient
	ratings  *api.RatingClient
	comments *api.CommentClient

	// memo holds the labeled picklists between renders.
	memo *cache.LRU
}

// New wires the handler set.
func New(log *zap.SugaredLogger, views *view.Renderer, sess *session.Cache, places *api.PlaceClient, ratings *api.RatingClient, comments *api.CommentClient) *Handlers {
	return &Handlers{
		log:      log,
		views:    views,
		sess:     sess,
		places:   places,
		ratings:  ratings,
		comments: comments,
		memo:     cache.New(8, optionTTL),
	}
}

// Routes builds the site router.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.handleHomeGET)

	r.Get("/auth", h.handleAuthGET)
	r.Post("/auth/login", h.handleLoginPOST)
	r.Post("/auth/register", h.handleRegisterPOST)
	r.Post("/auth/logout", h.handleLogoutPOST)
	r.Get("/profile", h.handleProfileGET)

	r.Get("/places/add", h.handleAddPlaceGET)
	r.Post("/places/add", h.handleAddPlacePOST)
	r.Get("/places/{id}", h.handlePlaceGET)
	r.Post("/places/{id}/comments", h.handleCommentPOST)
	r.Get("/places/{id}/rate", h.handleRateGET)
	r.Post("/places/{id}/rate", h.handleRatePOST)

	return r
}
