// internal/api/client.go
//
// Swimspot – backend collaborator plumbing.
//
// Context
//   Every data operation the site performs is a plain HTTP/JSON call to one
//   of four backend services (auth, place, rating, comment) behind a shared
//   gateway base URL.  This file owns the transport: request construction,
//   JSON codec, bearer headers, and the mapping of HTTP status classes onto
//   the two failure modes the rest of the code distinguishes.
//
// Failure model
//   •  ErrRejected  – the backend answered with a 4xx-class status.  The
//      caller shows a generic message; no structured detail is assumed.
//   •  ErrNotFound  – 404 specifically, so detail pages can render a real
//      not-found state.
//   •  anything else – transport or 5xx failure.  Treated identically to
//      rejection for user messaging, logged for diagnostics.
//
//   There is deliberately no retry or backoff here.
//
// Style
//   Two-space sentence spacing, Oxford comma, concise inline notes.
//
//------------------------------------------------------------------------------

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/swimspot/internal/metrics"
)

// ErrRejected marks a 4xx-class answer from a collaborator.  Callers test
// with errors.Is and translate to a generic user-facing message.
var ErrRejected = errors.New("rejected by backend")

// ErrNotFound marks a 404 specifically.  errors.Is(err, ErrRejected) is
// also true for it.
var ErrNotFound = fmt.Errorf("not found: %w", ErrRejected)

// Client is the shared HTTP plumbing all service clients ride on.
type Client struct {
	base string
	http *http.Client
	log  *zap.SugaredLogger
}

// NewClient builds a Client for the gateway at base.  The timeout bounds
// every collaborator call; there is no per-call override because no page
// needs one.
func NewClient(base string, log *zap.SugaredLogger) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
		log:  log,
	}
}

// -----------------------------------------------------------------------------
// Request helpers
// -----------------------------------------------------------------------------

// getJSON performs a GET against path and decodes the body into out.
// service labels the metric; token, when non-empty, rides as a bearer.
func (c *Client) getJSON(ctx context.Context, service, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(service, req, token, out)
}

// postJSON marshals body, POSTs it to path, and decodes the answer into out
// when out is non-nil.
func (c *Client) postJSON(ctx context.Context, service, path, token string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(service, req, token, out)
}

func (c *Client) do(service string, req *http.Request, token string, out any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CollaboratorRequests.WithLabelValues(service, "error").Inc()
		c.log.Warnw("collaborator unreachable",
			"service", service, "path", req.URL.Path, "error", err)
		return fmt.Errorf("%s: %w", service, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.CollaboratorRequests.WithLabelValues(service, "rejected").Inc()
		return ErrNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		metrics.CollaboratorRequests.WithLabelValues(service, "rejected").Inc()
		c.log.Infow("collaborator rejected request",
			"service", service, "path", req.URL.Path, "status", resp.StatusCode)
		return fmt.Errorf("%s: status %d: %w", service, resp.StatusCode, ErrRejected)
	case resp.StatusCode >= 500:
		metrics.CollaboratorRequests.WithLabelValues(service, "error").Inc()
		c.log.Warnw("collaborator server error",
			"service", service, "path", req.URL.Path, "status", resp.StatusCode)
		return fmt.Errorf("%s: status %d", service, resp.StatusCode)
	}

	metrics.CollaboratorRequests.WithLabelValues(service, "ok").Inc()

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", service, err)
	}
	return nil
}
