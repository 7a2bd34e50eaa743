// Package metrics exposes Prometheus instrumentation for the REST API and
// the chart computation pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "swisseph"

// Result labels for geocode lookups
const (
	GeocodeResultCache    = "cache"
	GeocodeResultRemote   = "remote"
	GeocodeResultFallback = "fallback"
	GeocodeResultRequest  = "request"
)

// Collector bundles all Prometheus metrics behind a dedicated registry.
type Collector struct {
	registry *prometheus.Registry

	chartsComputed  *prometheus.CounterVec
	computeDuration *prometheus.HistogramVec
	geocodeRequests *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	ephemerisMode   prometheus.Gauge
}

// NewCollector creates a Collector with all metrics registered on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
	}

	c.initCounters()
	c.initHistograms()
	c.initGauges()
	c.registerMetrics()

	return c
}

func (c *Collector) initCounters() {
	c.chartsComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "charts_computed_total",
			Help:      "Number of chart computations by house system and status.",
		},
		[]string{"house_system", "status"},
	)

	c.geocodeRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Number of location lookups by result source.",
		},
		[]string{"result"},
	)

	c.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)
}

func (c *Collector) initHistograms() {
	c.computeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_seconds",
			Help:      "Chart computation latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"house_system"},
	)

	c.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
}

func (c *Collector) initGauges() {
	c.ephemerisMode = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ephemeris_full_precision",
			Help:      "1 when the VSOP87 data set is loaded, 0 when the built-in series is in use.",
		},
	)
}

func (c *Collector) registerMetrics() {
	c.registry.MustRegister(
		c.chartsComputed,
		c.computeDuration,
		c.geocodeRequests,
		c.httpRequests,
		c.httpDuration,
		c.ephemerisMode,
	)
}

// Handler returns an http.Handler serving the registry in the Prometheus
// exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveChartComputed records one chart computation.
func (c *Collector) ObserveChartComputed(houseSystem, status string, seconds float64) {
	c.chartsComputed.WithLabelValues(houseSystem, status).Inc()
	c.computeDuration.WithLabelValues(houseSystem).Observe(seconds)
}

// ObserveGeocode records one location lookup by result source.
func (c *Collector) ObserveGeocode(result string) {
	c.geocodeRequests.WithLabelValues(result).Inc()
}

// SetFullPrecision records which ephemeris backend is active.
func (c *Collector) SetFullPrecision(enabled bool) {
	if enabled {
		c.ephemerisMode.Set(1)
		return
	}
	c.ephemerisMode.Set(0)
}

// ObserveHTTPRequest records one handled HTTP request.
func (c *Collector) ObserveHTTPRequest(method, route, status string, seconds float64) {
	c.httpRequests.WithLabelValues(method, route, status).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(seconds)
}
