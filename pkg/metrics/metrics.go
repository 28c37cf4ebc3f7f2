// Package metrics provides Prometheus instruments for the edge pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "edge"

var (
	// RouteDecisions counts router outcomes per matched rule.
	RouteDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_decisions_total",
			Help:      "Total number of routing decisions by rule and action",
		},
		[]string{"rule", "action"},
	)

	// GuardOutcomes counts terminal states of the access guard.
	GuardOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guard_outcomes_total",
			Help:      "Total number of access guard outcomes",
		},
		[]string{"outcome"},
	)

	// LookupDuration measures identity and directory round trips.
	LookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Duration of external lookups in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"lookup"},
	)

	// LookupFailures counts lookups that failed or timed out.
	LookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_failures_total",
			Help:      "Total number of failed external lookups",
		},
		[]string{"lookup"},
	)

	// SessionRefreshes counts refresh-token exchanges by result.
	SessionRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_refresh_total",
			Help:      "Total number of session refresh attempts",
		},
		[]string{"status"},
	)

	// CacheLookups counts directory cache reads by result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_cache_total",
			Help:      "Total number of directory cache reads by result",
		},
		[]string{"lookup", "result"},
	)
)

// RecordDecision records a routing decision.
func RecordDecision(rule, action string) {
	RouteDecisions.WithLabelValues(rule, action).Inc()
}

// RecordGuardOutcome records a guard terminal state.
func RecordGuardOutcome(outcome string) {
	GuardOutcomes.WithLabelValues(outcome).Inc()
}

// RecordLookup records a lookup duration and, when err is non-nil, a failure.
func RecordLookup(lookup string, started time.Time, err error) {
	LookupDuration.WithLabelValues(lookup).Observe(time.Since(started).Seconds())
	if err != nil {
		LookupFailures.WithLabelValues(lookup).Inc()
	}
}

// RecordRefresh records a session refresh attempt.
func RecordRefresh(status string) {
	SessionRefreshes.WithLabelValues(status).Inc()
}

// RecordCache records a directory cache read.
func RecordCache(lookup, result string) {
	CacheLookups.WithLabelValues(lookup, result).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
