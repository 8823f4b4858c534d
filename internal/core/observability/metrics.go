// Package observability exposes Prometheus metrics for the service.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"method", "route", "status"},
	)

	profileResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_resolutions_total",
			Help: "Profile resolutions by data-type class and source (table, rule, default).",
		},
		[]string{"class", "source"},
	)

	mosaicItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mosaic_items_total",
			Help: "Mosaic item build outcomes.",
		},
		[]string{"outcome"},
	)

	cacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_results_total",
			Help: "Descriptor cache results by outcome.",
		},
		[]string{"outcome"},
	)

	invalidationEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invalidation_events_total",
			Help: "Collection invalidation events by result.",
		},
		[]string{"result"},
	)

	cacheOpDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_op_duration_seconds",
			Help:    "Latency of descriptor cache operations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"op", "ok"},
	)

	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_build_info",
			Help: "Build information for the binary.",
		},
		[]string{"version"},
	)
)

func ObserveHTTP(method, route string, status int, durationSeconds float64) {
	st := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, st).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route, st).Observe(durationSeconds)
}

func IncProfileResolution(class, source string) {
	profileResolutionsTotal.WithLabelValues(class, source).Inc()
}

func AddMosaicOutcomes(ok, failed int) {
	if ok > 0 {
		mosaicItemsTotal.WithLabelValues("ok").Add(float64(ok))
	}
	if failed > 0 {
		mosaicItemsTotal.WithLabelValues("error").Add(float64(failed))
	}
}

func ObserveCacheOp(op string, err error, durationSeconds float64) {
	ok := "true"
	if err != nil {
		ok = "false"
	}
	cacheOpDurationSeconds.WithLabelValues(op, ok).Observe(durationSeconds)
}

func IncCacheHit()  { cacheResults.WithLabelValues("hit").Inc() }
func IncCacheMiss() { cacheResults.WithLabelValues("miss").Inc() }

func IncInvalidation(result string) {
	invalidationEventsTotal.WithLabelValues(result).Inc()
}

func ExposeBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	buildInfo.WithLabelValues(version).Set(1)
}
