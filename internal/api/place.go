// internal/api/place.go
//
// Place service collaborator: scored listings, aggregated detail, creation,
// and the labeled option lists the add-place wizard renders.
//

package api

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const placeService = "place"

// PlaceClient talks to the place service and the aggregation endpoint.
type PlaceClient struct {
	c *Client
}

// NewPlaceClient wraps the shared transport.
func NewPlaceClient(c *Client) *PlaceClient { return &PlaceClient{c: c} }

// ListWithScore returns every place with its average rating attached.
func (p *PlaceClient) ListWithScore(ctx context.Context) ([]PlaceSummary, error) {
	var places []PlaceSummary
	err := p.c.getJSON(ctx, placeService, "/place-service/place/with-average-score", "", &places)
	return places, err
}

// Detail returns the aggregated view of one place.  ErrNotFound when the ID
// is unknown.
func (p *PlaceClient) Detail(ctx context.Context, id int64) (PlaceDetail, error) {
	var d PlaceDetail
	err := p.c.getJSON(ctx, placeService, fmt.Sprintf("/api/aggregated/places/%d", id), "", &d)
	return d, err
}

// Create submits a new place together with its initial rating scaffold.
// Requires a bearer token.
func (p *PlaceClient) Create(ctx context.Context, place CreatePlace, token string) error {
	return p.c.postJSON(ctx, placeService, "/place-service/place/create-with-rating", token, place, nil)
}

// Options fetches the access-zone and infrastructure choice lists.  The two
// requests run concurrently; the first failure cancels the other.
func (p *PlaceClient) Options(ctx context.Context) (zones, features []Option, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.c.getJSON(gctx, placeService, "/place-service/place/access-zones-labeled", "", &zones)
	})
	g.Go(func() error {
		return p.c.getJSON(gctx, placeService, "/place-service/place/infrastructure-features-labeled", "", &features)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return zones, features, nil
}
