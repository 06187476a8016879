package health

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HttpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "api",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "api",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	QuotesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quotes",
			Subsystem: "retrieval",
			Name:      "generated_total",
			Help:      "Quote option sets stored, by source",
		},
		[]string{"source"},
	)

	QuotesFallback = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quotes",
			Subsystem: "retrieval",
			Name:      "fallback_total",
			Help:      "Quote retrievals answered with the fallback option set",
		},
	)

	registerOnce sync.Once
)

// RegisterMetrics registers the collectors with the default registry. It is
// safe to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HttpDuration, HttpRequests, QuotesGenerated, QuotesFallback)
	})
}
