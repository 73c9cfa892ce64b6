// internal/api/types.go
//
// Typed wire contracts for the backend services.  Shapes are validated at
// this boundary, never assumed downstream.
//

package api

// Identity is the signed-in user as the auth service reports it.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  *Role  `json:"role,omitempty"`
}

// Role is the optional role object attached to an identity.
type Role struct {
	Code string `json:"code"`
}

// Credentials pairs a bearer token with the identity it belongs to, as
// returned by login and register.
type Credentials struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// Option is one labeled choice (access zones, infrastructure features).
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PlaceSummary is one row of the scored place listing.
type PlaceSummary struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Region       string   `json:"region"`
	City         string   `json:"city"`
	Description  string   `json:"description"`
	AccessZone   string   `json:"accessZone"`
	Transport    string   `json:"publicTransportDescription"`
	Infra        []string `json:"infrastructure"`
	AverageScore float64  `json:"averageScore"`
}

// CategoryAverage is one per-category aggregate on a place detail.
type CategoryAverage struct {
	Category     string  `json:"category"`
	AverageScore float64 `json:"averageScore"`
}

// PlaceDetail is the aggregated detail view of a single place.
type PlaceDetail struct {
	Title         string            `json:"title"`
	Region        string            `json:"region"`
	City          string            `json:"city"`
	Description   string            `json:"description"`
	AccessZone    string            `json:"accessZone"`
	Transport     string            `json:"publicTransportDescription"`
	Infra         []string          `json:"infrastructure"`
	AverageRating float64           `json:"averageRating"`
	TotalRatings  int               `json:"totalRatings"`
	CategoryAVG   []CategoryAverage `json:"placeCategoryAVG"`
}

// CreatePlace is the payload of place creation.
type CreatePlace struct {
	Title       string   `json:"title"`
	Region      string   `json:"region"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	AccessZone  string   `json:"accessZone"`
	Transport   string   `json:"publicTransportDescription"`
	Infra       []string `json:"infrastructure"`
}

// RatingSubmission carries one user's category scores for one place.
// Scores map category ID → 1..5.
type RatingSubmission struct {
	UserID  int64          `json:"userId"`
	PlaceID int64          `json:"placeId"`
	Scores  map[string]int `json:"scores"`
}

// Comment is one comment as the comment service returns it.
type Comment struct {
	Text      string `json:"text"`
	UserID    int64  `json:"userId"`
	PlaceID   int64  `json:"placeId"`
	UserEmail string `json:"userEmail"`
}

// CommentSubmission is the payload of a new comment.
type CommentSubmission struct {
	Text    string `json:"text"`
	UserID  int64  `json:"userId"`
	PlaceID int64  `json:"placeId"`
}
