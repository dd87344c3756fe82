// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"bookfaker/internal/locale"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookfaker_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookfaker_http_active_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	RecordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookfaker_records_generated_total",
			Help: "Total number of book records synthesized",
		},
		[]string{"locale"},
	)

	ReviewsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookfaker_reviews_generated_total",
			Help: "Total number of reviews synthesized",
		},
		[]string{"locale"},
	)

	CoverCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookfaker_cover_cache_hits_total",
			Help: "Cover renders served from cache",
		},
	)

	CoverCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookfaker_cover_cache_misses_total",
			Help: "Cover renders computed on demand",
		},
	)
)

// RecordAPIRequest observes one finished HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
		return
	}
	APIActiveRequests.Dec()
}

// Generation implements book.Recorder and cover.Recorder on top of the
// package collectors.
type Generation struct{}

func (Generation) RecordsGenerated(l locale.Locale, records, reviews int) {
	RecordsGenerated.WithLabelValues(l.String()).Add(float64(records))
	ReviewsGenerated.WithLabelValues(l.String()).Add(float64(reviews))
}

func (Generation) CoverCacheHit()  { CoverCacheHits.Inc() }
func (Generation) CoverCacheMiss() { CoverCacheMisses.Inc() }
