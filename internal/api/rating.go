// internal/api/rating.go
//
// Rating service collaborator.
//

package api

import (
	"context"
	"fmt"
)

const ratingService = "rating"

// RatingClient talks to the rating service.
type RatingClient struct {
	c *Client
}

// NewRatingClient wraps the shared transport.
func NewRatingClient(c *Client) *RatingClient { return &RatingClient{c: c} }

// Submit sends one user's category scores for one place.  Scores must all
// be within 1..5; the check lives here so no caller can bypass it.
func (r *RatingClient) Submit(ctx context.Context, sub RatingSubmission, token string) error {
	for cat, score := range sub.Scores {
		if score < 1 || score > 5 {
			return fmt.Errorf("score for %q out of range: %d", cat, score)
		}
	}
	return r.c.postJSON(ctx, ratingService, "/rating-service/rating/submit", token, sub, nil)
}
