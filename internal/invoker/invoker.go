package invoker

import (
	"context"
	"errors"
	"time"

	"selection-assistant/internal/model"
	"selection-assistant/pkg/gemini"
	"selection-assistant/pkg/metrics"
)

// Invoke sends q with the credential captured at entry and retries failed attempts
// with exponential backoff. Attempts run strictly one after another.
func (i *implInvoker) Invoke(ctx context.Context, q model.ModelQuery) (string, error) {
	apiKey := i.credentials.Current()
	if apiKey == "" {
		metrics.RecordInvocation(string(model.FailureMissingCredential), 0)
		return "", &Error{Kind: model.FailureMissingCredential, Err: ErrMissingCredential}
	}

	req := buildRequest(q)
	start := time.Now()

	var lastErr error
	attempts := 0

	for attempt := 1; attempt <= i.config.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := i.config.Delay(attempt)
			i.l.Debugf(ctx, "%s: waiting %s before attempt %d", LogPrefixInvoke, delay, attempt)
			if err := i.sleeper.Sleep(ctx, delay); err != nil {
				lastErr = err
				break
			}
		}

		attempts = attempt
		text, err := i.attempt(ctx, apiKey, req)
		if err == nil {
			metrics.RecordInvocationAttempt(metrics.OutcomeSuccess)
			metrics.RecordInvocation(metrics.OutcomeSuccess, time.Since(start))
			i.l.Infof(ctx, "%s: model=%s succeeded on attempt %d/%d", LogPrefixInvoke, i.llm.Model(), attempt, i.config.MaxAttempts)
			return text, nil
		}

		lastErr = err
		kind, _ := classify(err)
		metrics.RecordInvocationAttempt(string(kind))
		i.l.Warnf(ctx, "%s: attempt %d/%d failed (%s): %v", LogPrefixInvoke, attempt, i.config.MaxAttempts, kind, err)

		if kind == model.FailureMalformedResponse && !i.config.RetryMalformed {
			break
		}
	}

	kind, status := classify(lastErr)
	metrics.RecordInvocation(string(kind), time.Since(start))
	return "", &Error{Kind: kind, StatusCode: status, Attempts: attempts, Err: lastErr}
}

// attempt performs one HTTP call and extracts the generated text.
func (i *implInvoker) attempt(ctx context.Context, apiKey string, req gemini.GenerateRequest) (string, error) {
	resp, err := i.llm.GenerateContent(ctx, apiKey, req)
	if err != nil {
		return "", err
	}
	return resp.Text()
}

// buildRequest puts the instruction in the system slot and the selected text in the user slot.
func buildRequest(q model.ModelQuery) gemini.GenerateRequest {
	return gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: q.Instruction}},
		},
		Contents: []gemini.Content{
			{
				Role:  gemini.RoleUser,
				Parts: []gemini.Part{{Text: q.Content}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: q.Temperature,
		},
	}
}

// classify maps an attempt error to a failure kind and, for HTTP errors, the status code.
func classify(err error) (model.FailureKind, int) {
	var apiErr *gemini.APIError
	switch {
	case errors.As(err, &apiErr):
		return model.FailureHTTP, apiErr.StatusCode
	case errors.Is(err, gemini.ErrMalformedResponse):
		return model.FailureMalformedResponse, 0
	default:
		return model.FailureTransport, 0
	}
}
