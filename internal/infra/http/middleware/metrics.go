package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	clientsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clients_created_total",
			Help: "Total number of clients created",
		},
	)

	clientsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clients_deleted_total",
			Help: "Total number of clients deleted",
		},
	)

	interactionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interactions_recorded_total",
			Help: "Total number of interactions recorded",
		},
		[]string{"type"},
	)

	suggestionsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestions_accepted_total",
			Help: "Total number of AI status suggestions accepted",
		},
		[]string{"status"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordClientCreated() {
	clientsCreated.Inc()
}

func RecordClientDeleted() {
	clientsDeleted.Inc()
}

func RecordInteraction(interactionType string) {
	interactionsRecorded.WithLabelValues(interactionType).Inc()
}

func RecordSuggestionAccepted(status string) {
	suggestionsAccepted.WithLabelValues(status).Inc()
}
