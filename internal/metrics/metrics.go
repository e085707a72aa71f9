// Package metrics defines the Prometheus collectors exported on /metrics.
// All observation methods are safe to call on a nil *Metrics, which tests use
// to opt out of instrumentation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "oracle"

// Verification outcomes.
const (
	OutcomeVerified      = "verified"
	OutcomeReplayed      = "replayed"
	OutcomeGeofence      = "geofence_rejected"
	OutcomeWindow        = "window_rejected"
	OutcomeConflict      = "state_conflict"
	OutcomeExpired       = "expired"
	OutcomeConfiguration = "configuration_error"
	OutcomeInvalid       = "invalid"
	OutcomeError         = "error"
)

// Metrics holds the application's collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	HTTPRequests          *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	Verifications         *prometheus.CounterVec
	CacheLookups          *prometheus.CounterVec
	LeaderboardRecomputes prometheus.Counter
	RecomputeDuration     prometheus.Histogram
	Expirations           prometheus.Counter
}

// New registers all collectors with reg.
// Pass prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests completed, by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Verifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Presence claims handled, by outcome.",
		}, []string{"outcome"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups, by cache and result.",
		}, []string{"cache", "result"}),
		LeaderboardRecomputes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaderboard_recomputes_total",
			Help:      "Leaderboard recomputations from the journey table.",
		}),
		RecomputeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "leaderboard_recompute_duration_seconds",
			Help:      "Time spent scanning journeys to rebuild the leaderboard.",
			Buckets:   prometheus.DefBuckets,
		}),
		Expirations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commitments_expired_total",
			Help:      "Commitments moved to settled_failure by expiry.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveVerification counts one presence claim.
func (m *Metrics) ObserveVerification(outcome string) {
	if m == nil {
		return
	}
	m.Verifications.WithLabelValues(outcome).Inc()
}

// ObserveCache counts one cache lookup.
func (m *Metrics) ObserveCache(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(cache, result).Inc()
}

// ObserveRecompute records one leaderboard rebuild.
func (m *Metrics) ObserveRecompute(d time.Duration) {
	if m == nil {
		return
	}
	m.LeaderboardRecomputes.Inc()
	m.RecomputeDuration.Observe(d.Seconds())
}

// ObserveExpired counts commitments expired.
func (m *Metrics) ObserveExpired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.Expirations.Add(float64(n))
}

// ObserveHTTP records a completed request.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
