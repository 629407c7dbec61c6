package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"selection-assistant/pkg/metrics"
)

func TestRecordInvocationAttempt(t *testing.T) {
	before := testutil.ToFloat64(metrics.InvocationAttempts.WithLabelValues("http_error"))
	metrics.RecordInvocationAttempt("http_error")
	metrics.RecordInvocationAttempt("http_error")
	after := testutil.ToFloat64(metrics.InvocationAttempts.WithLabelValues("http_error"))

	if after-before != 2 {
		t.Errorf("expected counter to grow by 2, grew by %v", after-before)
	}
}

func TestRecordTaskSubmission(t *testing.T) {
	before := testutil.ToFloat64(metrics.TaskSubmissions.WithLabelValues("summarize", "success"))
	metrics.RecordTaskSubmission("summarize", "success")
	after := testutil.ToFloat64(metrics.TaskSubmissions.WithLabelValues("summarize", "success"))

	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, grew by %v", after-before)
	}
}

func TestRecordInvocation_DoesNotPanic(t *testing.T) {
	metrics.RecordInvocation(metrics.OutcomeSuccess, 1500*time.Millisecond)
	metrics.RecordHTTPRequestDuration("POST", "/api/v1/tasks", "200", 20*time.Millisecond)
}
