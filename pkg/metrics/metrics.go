package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	ActionUnknown  = "unknown"
)

var (
	// Each remote call, labelled by outcome (success or failure kind)
	InvocationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_invocation_attempts_total",
			Help: "Total number of calls made to the model endpoint",
		},
		[]string{"outcome"},
	)

	// End-to-end invocation latency including backoff waits
	InvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_invocation_duration_seconds",
			Help:    "Model invocation latency in seconds, retries included",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
		},
		[]string{"result"},
	)

	TaskSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_submissions_total",
			Help: "Total number of submitted task requests",
		},
		[]string{"action", "result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~30s
		},
		[]string{"method", "path", "status"},
	)
)

// RecordInvocationAttempt counts one remote call.
func RecordInvocationAttempt(outcome string) {
	InvocationAttempts.WithLabelValues(outcome).Inc()
}

// RecordInvocation observes a finished invocation.
func RecordInvocation(result string, duration time.Duration) {
	InvocationDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordTaskSubmission counts a submitted task by action and result.
func RecordTaskSubmission(action, result string) {
	TaskSubmissions.WithLabelValues(action, result).Inc()
}

// RecordHTTPRequestDuration observes an HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
