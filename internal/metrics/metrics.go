package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "antisocial",
		Name:      "backend_requests_total",
		Help:      "Requests issued to the REST backend, by operation and outcome.",
	}, []string{"op", "outcome"})

	apiLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "antisocial",
		Name:      "backend_request_duration_seconds",
		Help:      "Latency of requests issued to the REST backend.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	feedPartialFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "antisocial",
		Name:      "feed_partial_failures_total",
		Help:      "Per-post sub-fetches that failed during feed aggregation.",
	}, []string{"fetch"})

	feedAggregations = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "antisocial",
		Name:      "feed_aggregation_duration_seconds",
		Help:      "Wall time of a whole feed aggregation.",
		Buckets:   prometheus.DefBuckets,
	})
)

// ObserveBackendRequest records one backend call. outcome is a status code or "network_error".
func ObserveBackendRequest(op, outcome string, took time.Duration) {
	apiRequests.WithLabelValues(op, outcome).Inc()
	apiLatency.WithLabelValues(op).Observe(took.Seconds())
}

func FeedPartialFailure(fetch string) {
	feedPartialFailures.WithLabelValues(fetch).Inc()
}

func ObserveAggregation(took time.Duration) {
	feedAggregations.Observe(took.Seconds())
}

// Handler exposes the default registry on a Fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
