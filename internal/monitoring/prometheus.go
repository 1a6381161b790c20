package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and updates the prometheus metrics exposed on the
// metrics port.
type Collector struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	entityCount     *prometheus.GaugeVec
}

// NewCollector creates a collector with its own registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	entityCount := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "entity_count",
			Help: "Number of persisted entities per collection",
		},
		[]string{"entity"},
	)

	registry.MustRegister(requestDuration, requestsTotal, entityCount)

	return &Collector{
		registry:        registry,
		requestDuration: requestDuration,
		requestsTotal:   requestsTotal,
		entityCount:     entityCount,
	}
}

// ObserveRequest records one served HTTP request
func (c *Collector) ObserveRequest(method, path string, status int, duration time.Duration) {
	c.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	c.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// SetEntityCount records the current size of an entity collection
func (c *Collector) SetEntityCount(entity string, count int) {
	c.entityCount.WithLabelValues(entity).Set(float64(count))
}

// Handler returns the exposition handler for the collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
