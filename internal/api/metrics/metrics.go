// Package metrics defines and registers the domain Prometheus metrics of the
// tourism API. HTTP request metrics come from the echoprometheus middleware;
// everything here describes authentication and search behaviour.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tourism"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Labels:
//   - role: the resolved role, or "none" when the credentials were rejected
//   - result: "success", "rejected" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by resolved role and result.",
	},
	[]string{"role", "result"},
)

// SignupsTotal counts accounts created, including staff accounts created by
// an admin.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// SessionsRevokedTotal counts logouts that revoked a session token.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of session tokens revoked at logout.",
	},
)

// ── Search metrics ────────────────────────────────────────────────────────────

// SearchResults observes the size of each relevance search result.
// Label:
//   - entity: "activity" or "itinerary"
var SearchResults = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_results",
		Help:      "Number of entities returned per search request.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
	},
	[]string{"entity"},
)
