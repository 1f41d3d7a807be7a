package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engine metrics.
var (
	WordsTranslated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lishgreek_words_translated_total",
		Help: "Total Greeklish words run through the translator",
	})

	IndexMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lishgreek_index_misses_total",
		Help: "Words with no canonical-index candidates, echoed unchanged",
	})

	CandidatesPerWord = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lishgreek_candidates_per_word",
		Help:    "Number of index candidates retrieved per translated word",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})
)

// HTTP server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lishgreek_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lishgreek_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lishgreek_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)
