package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"selection-assistant/internal/assistant"
	"selection-assistant/internal/invoker"
	"selection-assistant/internal/model"
	"selection-assistant/internal/router"
	"selection-assistant/pkg/gemini"
	"selection-assistant/pkg/metrics"
)

// Submit resolves req, invokes the model and classifies the outcome.
// The invocation is detached from ctx cancellation: once started it runs to success or failure.
func (uc *implUseCase) Submit(ctx context.Context, req model.TaskRequest) model.TaskResult {
	q, failure := uc.resolve(ctx, req)
	if failure != nil {
		metrics.RecordTaskSubmission(actionLabel(req.Action), string(failure.Kind))
		return model.TaskResult{Failure: failure}
	}

	text, err := uc.invoker.Invoke(context.WithoutCancel(ctx), q)
	if err != nil {
		failure := invocationFailure(err)
		uc.l.Warnf(ctx, "internal.assistant.Submit: action=%s failed: %v", req.Action, err)
		metrics.RecordTaskSubmission(actionLabel(req.Action), string(failure.Kind))
		return model.TaskResult{Failure: failure}
	}

	uc.l.Infof(ctx, "internal.assistant.Submit: action=%s succeeded (%d chars)", req.Action, len(text))
	metrics.RecordTaskSubmission(actionLabel(req.Action), metrics.OutcomeSuccess)
	return model.NewSuccess(text)
}

// Preview resolves req without any network call.
func (uc *implUseCase) Preview(ctx context.Context, req model.TaskRequest) (model.ModelQuery, *model.Failure) {
	return uc.resolve(ctx, req)
}

// resolve checks the credential guard and builds the query.
// Missing credentials are reported before parameter errors, matching the order the UI checks them.
func (uc *implUseCase) resolve(ctx context.Context, req model.TaskRequest) (model.ModelQuery, *model.Failure) {
	if uc.credentials.Current() == "" {
		return model.ModelQuery{}, &model.Failure{Kind: model.FailureMissingCredential, Message: assistant.MsgMissingCredential}
	}

	q, err := uc.router.Resolve(req)
	if err != nil {
		uc.l.Debugf(ctx, "internal.assistant.resolve: action=%s rejected: %v", req.Action, err)
		return model.ModelQuery{}, routingFailure(err)
	}
	return q, nil
}

// actionLabel keeps the metric label set bounded to the known actions.
func actionLabel(a model.Action) string {
	if !a.Valid() {
		return metrics.ActionUnknown
	}
	return a.String()
}

func routingFailure(err error) *model.Failure {
	switch {
	case errors.Is(err, router.ErrEmptyParameter):
		return &model.Failure{Kind: model.FailureEmptyParameter, Message: assistant.MsgEmptyParameter}
	case errors.Is(err, router.ErrEmptyText):
		return &model.Failure{Kind: model.FailureEmptyText, Message: assistant.MsgEmptyText}
	default:
		return &model.Failure{Kind: model.FailureUnknownAction, Message: assistant.MsgUnknownAction}
	}
}

func invocationFailure(err error) *model.Failure {
	var invErr *invoker.Error
	if !errors.As(err, &invErr) {
		return &model.Failure{Kind: model.FailureTransport, Message: assistant.MsgTransport}
	}

	f := &model.Failure{Kind: invErr.Kind, StatusCode: invErr.StatusCode, Attempts: invErr.Attempts}
	switch invErr.Kind {
	case model.FailureMissingCredential:
		f.Message = assistant.MsgMissingCredential
	case model.FailureHTTP:
		f.Message = fmt.Sprintf("%s (HTTP %d).", assistant.MsgHTTP, invErr.StatusCode)
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Body) != "" {
			f.Message += " " + snippet(apiErr.Body)
		}
	case model.FailureMalformedResponse:
		f.Message = assistant.MsgMalformedResponse
	default:
		f.Message = assistant.MsgTransport
	}
	return f
}

// snippet shortens an error body for display.
func snippet(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	if utf8.RuneCountInString(body) <= maxSnippetRunes {
		return body
	}
	return string([]rune(body)[:maxSnippetRunes]) + "..."
}
