// internal/api/client_test.go
//
// Unit-tests for the collaborator clients against httptest servers.
//
// Context
// -------
// Three behaviours matter at this boundary:
//
//   • success decodes the typed response shape
//   • 4xx maps onto ErrRejected (404 onto ErrNotFound), 5xx and transport
//     failures onto plain errors
//   • bearer tokens and JSON bodies go out exactly as the services expect
//
// Run: go test ./internal/api -v

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func testClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zap.NewNop().Sugar()), srv
}

func TestAuthLogin_Success(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth-service/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req struct{ Email, Password string }
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "user@example.com" || req.Password != "abc123" {
			t.Errorf("credentials not forwarded: %+v", req)
		}
		json.NewEncoder(w).Encode(Credentials{
			Token: "tok-1",
			User:  Identity{ID: 7, Email: "user@example.com"},
		})
	})

	creds, err := NewAuthClient(c).Login(context.Background(), "user@example.com", "abc123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if creds.Token != "tok-1" || creds.User.ID != 7 {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestAuthLogin_Rejected(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := NewAuthClient(c).Login(context.Background(), "user@example.com", "wrong")
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("err = %v, want ErrRejected", err)
	}
}

func TestFetchProfile_BearerHeader(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-9" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(Identity{ID: 1, Email: "a@b.io", Role: &Role{Code: "user"}})
	})

	ident, err := NewAuthClient(c).FetchProfile(context.Background(), "tok-9")
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}
	if ident.Role == nil || ident.Role.Code != "user" {
		t.Fatalf("role not decoded: %+v", ident)
	}
}

func TestPlaceDetail_NotFound(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := NewPlaceClient(c).Detail(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, ErrRejected) {
		t.Fatal("ErrNotFound must also read as ErrRejected")
	}
}

func TestPlaceListWithScore(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/place-service/place/with-average-score" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]PlaceSummary{
			{ID: 1, Title: "Озеро Светлое", City: "Kazan", AverageScore: 4.2},
		})
	})

	places, err := NewPlaceClient(c).ListWithScore(context.Background())
	if err != nil {
		t.Fatalf("ListWithScore: %v", err)
	}
	if len(places) != 1 || places[0].Title != "Озеро Светлое" {
		t.Fatalf("unexpected places: %+v", places)
	}
}

func TestPlaceOptions_Concurrent(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/place-service/place/access-zones-labeled":
			json.NewEncoder(w).Encode([]Option{{Value: "beach", Label: "Beach"}})
		case "/place-service/place/infrastructure-features-labeled":
			json.NewEncoder(w).Encode([]Option{{Value: "parking", Label: "Parking"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	})

	zones, features, err := NewPlaceClient(c).Options(context.Background())
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if len(zones) != 1 || zones[0].Value != "beach" {
		t.Fatalf("zones = %+v", zones)
	}
	if len(features) != 1 || features[0].Value != "parking" {
		t.Fatalf("features = %+v", features)
	}
}

func TestPlaceOptions_OneFailureFailsBoth(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/place-service/place/access-zones-labeled" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]Option{})
	})

	_, _, err := NewPlaceClient(c).Options(context.Background())
	if err == nil {
		t.Fatal("Options succeeded despite a failing leg")
	}
}

func TestRatingSubmit_RangeCheck(t *testing.T) {
	called := false
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	err := NewRatingClient(c).Submit(context.Background(), RatingSubmission{
		UserID: 1, PlaceID: 2, Scores: map[string]int{"purity": 6},
	}, "tok")
	if err == nil {
		t.Fatal("out-of-range score accepted")
	}
	if called {
		t.Fatal("invalid submission reached the network")
	}

	err = NewRatingClient(c).Submit(context.Background(), RatingSubmission{
		UserID: 1, PlaceID: 2,
		Scores: map[string]int{"purity": 5, "vibe": 1},
	}, "tok")
	if err != nil {
		t.Fatalf("valid submission failed: %v", err)
	}
	if !called {
		t.Fatal("valid submission never sent")
	}
}

func TestCommentRoundTrip(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/comment-service/comment":
			var sub CommentSubmission
			if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
				t.Fatalf("decode comment: %v", err)
			}
			if sub.Text != "great spot" || sub.PlaceID != 3 {
				t.Errorf("comment payload = %+v", sub)
			}
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodGet && r.URL.Path == "/comment-service/comment/getAllByPlaceId/3":
			json.NewEncoder(w).Encode([]Comment{{Text: "great spot", PlaceID: 3, UserEmail: "a@b.io"}})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	})

	cc := NewCommentClient(c)
	if err := cc.Post(context.Background(), CommentSubmission{Text: "great spot", UserID: 1, PlaceID: 3}, "tok"); err != nil {
		t.Fatalf("Post: %v", err)
	}
	comments, err := cc.List(context.Background(), 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(comments) != 1 || comments[0].UserEmail != "a@b.io" {
		t.Fatalf("comments = %+v", comments)
	}
}

func TestTransportFailure_IsNotRejection(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // closed server: connection refused
	c := NewClient(srv.URL, zap.NewNop().Sugar())

	_, err := NewPlaceClient(c).ListWithScore(context.Background())
	if err == nil {
		t.Fatal("call against a dead server succeeded")
	}
	if errors.Is(err, ErrRejected) {
		t.Fatal("transport failure must not read as rejection")
	}
}
