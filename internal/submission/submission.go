// Package submission sends a finished intake form to the hosted form
// endpoint.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingFormID is returned before any network call when no form
	// identifier is configured.
	ErrMissingFormID = errors.New("submission: form id is not configured")
	// ErrRejected wraps every non-success answer from the endpoint.
	ErrRejected = errors.New("submission: rejected by endpoint")
)

// Submitter performs a single send of a flattened form payload.
type Submitter interface {
	Submit(ctx context.Context, payload map[string]string) (Result, error)
}

// SubmitterFunc adapts a plain function to Submitter.
type SubmitterFunc func(ctx context.Context, payload map[string]string) (Result, error)

// Submit calls fn.
func (fn SubmitterFunc) Submit(ctx context.Context, payload map[string]string) (Result, error) {
	return fn(ctx, payload)
}

// FieldError is one validation complaint returned by the endpoint.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result is the outcome the UI consumes. OK is the only thing shown to the
// visitor; the rest goes to the log.
type Result struct {
	OK         bool
	StatusCode int
	Next       string
	Errors     []FieldError
}

// Summary renders the endpoint's complaints on one line.
func (r Result) Summary() string {
	if r.OK {
		return "ok"
	}
	if len(r.Errors) == 0 {
		if r.StatusCode > 0 {
			return fmt.Sprintf("status %d", r.StatusCode)
		}
		return "failed"
	}
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}
