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

	// RoutesComputed counts shortest-path queries by outcome
	RoutesComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "routes_computed_total", Help: "Shortest-path queries by outcome."},
		[]string{"outcome"},
	)
	// RouteLength tracks computed route total weights in km
	RouteLength = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "route_total_weight_km", Help: "Total weight of computed routes in km.", Buckets: []float64{0.5, 1, 2, 5, 10, 20, 50, 100}},
	)
)

// RegisterDefault registers collectors to the dedicated registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(RoutesComputed)
		Registry.MustRegister(RouteLength)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
