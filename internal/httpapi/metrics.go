package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedback_submissions_accepted_total",
		Help: "Number of feedback submissions validated and persisted.",
	})
	submissionsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedback_submissions_rejected_total",
		Help: "Number of feedback submissions rejected by validation.",
	})
	reportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedback_reports_generated_total",
		Help: "Number of PDF reports rendered.",
	})
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_summary_cache_lookups_total",
		Help: "Summary cache lookups by result.",
	}, []string{"result"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "feedback_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "code"})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware observes request latency per route pattern.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
