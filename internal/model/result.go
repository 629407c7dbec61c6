package model

import "fmt"

// FailureKind classifies why a TaskRequest did not produce text.
type FailureKind string

const (
	FailureMissingCredential FailureKind = "missing_credential"
	FailureEmptyParameter    FailureKind = "empty_parameter"
	FailureEmptyText         FailureKind = "empty_text"
	FailureUnknownAction     FailureKind = "unknown_action"
	FailureTransport         FailureKind = "transport_error"
	FailureHTTP              FailureKind = "http_error"
	FailureMalformedResponse FailureKind = "malformed_response"
)

// Failure describes a failed TaskRequest.
// StatusCode is set for FailureHTTP; Attempts is the number of remote calls made.
type Failure struct {
	Kind       FailureKind
	Message    string
	StatusCode int
	Attempts   int
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// TaskResult is either a success carrying the model text or a Failure.
type TaskResult struct {
	Text    string
	Failure *Failure
}

// Succeeded reports whether the result carries model text.
func (r TaskResult) Succeeded() bool {
	return r.Failure == nil
}

// NewSuccess builds a successful TaskResult.
func NewSuccess(text string) TaskResult {
	return TaskResult{Text: text}
}

// NewFailure builds a failed TaskResult.
func NewFailure(kind FailureKind, message string) TaskResult {
	return TaskResult{Failure: &Failure{Kind: kind, Message: message}}
}
