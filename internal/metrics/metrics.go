package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes recorded by SearchPerformed
const (
	SearchEmpty = "empty"
	SearchHit   = "hit"
	SearchMiss  = "miss"
)

// Metrics owns the application's collectors and the registry they live in.
// All recording methods are no-ops on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	recipesCreated  prometheus.Counter
	recipesSeeded   prometheus.Counter
	searches        *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipes_http_requests_total",
				Help: "HTTP requests handled, by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipes_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		recipesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recipes_created_total",
			Help: "Recipes added through the submission form",
		}),
		recipesSeeded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recipes_seeded_total",
			Help: "Demo recipes inserted at startup",
		}),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipes_search_queries_total",
				Help: "Search requests by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.recipesCreated,
		m.recipesSeeded,
		m.searches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecipeCreated counts a successful submission
func (m *Metrics) RecipeCreated() {
	if m == nil {
		return
	}
	m.recipesCreated.Inc()
}

// RecipesSeeded counts demo rows inserted by the seeder
func (m *Metrics) RecipesSeeded(n int) {
	if m == nil {
		return
	}
	m.recipesSeeded.Add(float64(n))
}

// SearchPerformed counts a search by outcome
func (m *Metrics) SearchPerformed(outcome string) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
}
