package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the BFF.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration   *prometheus.HistogramVec
	upstreamErrors    *prometheus.CounterVec
	cacheHits         *prometheus.CounterVec
	cacheMisses       *prometheus.CounterVec
	documentsRendered *prometheus.CounterVec
	requestsTotal     *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rentify_request_duration_seconds",
				Help:    "Duration of view operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		upstreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rentify_upstream_errors_total",
				Help: "Total errors from the Rentify backend, by resource.",
			},
			[]string{"resource"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rentify_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rentify_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
		documentsRendered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rentify_documents_rendered_total",
				Help: "Total contracts and receipts rendered.",
			},
			[]string{"kind"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rentify_requests_total",
				Help: "Total requests processed.",
			},
			[]string{"status"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrUpstreamError increments the upstream error counter for a resource.
func (m *Metrics) IncrUpstreamError(resource string) {
	m.upstreamErrors.WithLabelValues(resource).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// IncrDocumentRendered counts one rendered document ("contract" or "receipt").
func (m *Metrics) IncrDocumentRendered(kind string) {
	m.documentsRendered.WithLabelValues(kind).Inc()
}

// IncrRequest increments the request counter with a status label.
func (m *Metrics) IncrRequest(status string) {
	m.requestsTotal.WithLabelValues(status).Inc()
}

// OpsSnapshot is the JSON shape served by GET /v1/ops/snapshot.
type OpsSnapshot struct {
	TotalRequests      int64   `json:"totalRequests"`
	ErrorRate          float64 `json:"errorRate"`
	CacheHitRate       float64 `json:"cacheHitRate"`
	ContractsRendered  int64   `json:"contractsRendered"`
	ReceiptsRendered   int64   `json:"receiptsRendered"`
	UpstreamErrorCount int64   `json:"upstreamErrorCount"`
	Period             string  `json:"period"`
}

// GetSnapshot reads current counter values into an operational summary.
// Counters are cumulative since startup.
func (m *Metrics) GetSnapshot() *OpsSnapshot {
	success := getCounterValue(m.requestsTotal, "success")
	failed := getCounterValue(m.requestsTotal, "error")
	total := success + failed

	var hits, misses float64
	for _, cache := range []string{"leases", "payments", "tenants", "properties", "locations"} {
		hits += getCounterValue(m.cacheHits, cache)
		misses += getCounterValue(m.cacheMisses, cache)
	}

	var upstream float64
	for _, resource := range []string{"leases", "payments", "tenants", "properties", "landlords", "guarantors", "maintenance", "reports", "locations", "auth"} {
		upstream += getCounterValue(m.upstreamErrors, resource)
	}

	errorRate := float64(0)
	if total > 0 {
		errorRate = failed / total
	}
	cacheHitRate := float64(0)
	if hits+misses > 0 {
		cacheHitRate = hits / (hits + misses)
	}

	return &OpsSnapshot{
		TotalRequests:      int64(total),
		ErrorRate:          errorRate,
		CacheHitRate:       cacheHitRate,
		ContractsRendered:  int64(getCounterValue(m.documentsRendered, "contract")),
		ReceiptsRendered:   int64(getCounterValue(m.documentsRendered, "receipt")),
		UpstreamErrorCount: int64(upstream),
		Period:             "since_start",
	}
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
