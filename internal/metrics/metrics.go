package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the API
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Solves counts route computations by algorithm and outcome
	Solves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_solves_total", Help: "Route computations by algorithm and status."},
		[]string{"algorithm", "status"},
	)
	// SolveDuration tracks solver wall time by algorithm
	SolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "route_solve_duration_seconds", Help: "Solver duration in seconds.", Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 30}},
		[]string{"algorithm"},
	)
	// SolveSize observes instance sizes handed to the solver
	SolveSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "route_solve_points", Help: "Points per solved instance.", Buckets: []float64{2, 3, 5, 8, 10, 15, 25, 50, 100}},
	)

	// GeocodeCache counts geocode cache hits and misses
	GeocodeCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "geocode_cache_total", Help: "Geocode cache lookups by outcome."},
		[]string{"outcome"},
	)
)

// RegisterDefault registers collectors to the dedicated registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Solves)
		Registry.MustRegister(SolveDuration)
		Registry.MustRegister(SolveSize)
		Registry.MustRegister(GeocodeCache)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
