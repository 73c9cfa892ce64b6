// Package metrics holds Prometheus instruments that are used across the
// application.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CollaboratorRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collaborator_requests_total",
			Help: "Backend service calls by service and outcome (ok, rejected, error).",
		},
		[]string{"service", "outcome"},
	)

	FormSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Form submit attempts by form ID and outcome.",
		},
		[]string{"form", "outcome"},
	)

	PageViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_views_total",
			Help: "Rendered page views by page name.",
		},
		[]string{"page"},
	)

	SessionBootstraps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_bootstraps_total",
			Help: "Session rehydration attempts at startup by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		CollaboratorRequests,
		FormSubmissions,
		PageViews,
		SessionBootstraps,
	)
}
