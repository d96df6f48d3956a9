package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	// Workload file lines
	LinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workload_lines_total",
			Help: "Total number of workload lines read",
		},
		[]string{"outcome"}, // dispatched, skipped, parse_error
	)

	// HTTP metrics
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workload_requests_total",
			Help: "Total number of requests sent to the target service",
		},
		[]string{"entity", "action", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workload_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity", "action"},
	)

	TransportErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workload_transport_errors_total",
			Help: "Requests that never got a response",
		},
		[]string{"entity", "action"},
	)

	RequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workload_request_errors_total",
			Help: "Requests that could not be built and were never sent",
		},
		[]string{"entity", "action"},
	)
)

const (
	OutcomeDispatched = "dispatched"
	OutcomeSkipped    = "skipped"
	OutcomeParseError = "parse_error"
)

// ObserveLine - count one line read from the workload
func ObserveLine(outcome string) {
	LinesTotal.WithLabelValues(outcome).Inc()
}

// Serve exposes /metrics on addr until the returned server is shut down.
func Serve(addr string, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server stopped", zap.String("addr", addr), zap.Error(err))
		}
	}()
	return srv
}
