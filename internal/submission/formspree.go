package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the base URL form identifiers are appended to.
	DefaultEndpoint = "https://formspree.io/f"
	// DefaultTimeout bounds a single submission round trip.
	DefaultTimeout = 15 * time.Second

	maxResponseBytes = 64 << 10
)

// Logger is the minimal logging surface the adapter writes to.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Formspree posts payloads as JSON to <endpoint>/<formID>.
type Formspree struct {
	endpoint string
	formID   string
	client   *http.Client
	logger   Logger
}

// Option customizes Formspree construction.
type Option func(*Formspree)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(f *Formspree) {
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			f.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithHTTPClient swaps the HTTP client, mostly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Formspree) {
		if client != nil {
			f.client = client
		}
	}
}

// WithTimeout sets the client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Formspree) {
		if timeout > 0 {
			f.client = &http.Client{Timeout: timeout, Transport: f.client.Transport}
		}
	}
}

// WithLogger overrides the default no-op logger.
func WithLogger(l Logger) Option {
	return func(f *Formspree) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFormspree prepares an adapter for the given form identifier.
func NewFormspree(formID string, opts ...Option) *Formspree {
	f := &Formspree{
		endpoint: DefaultEndpoint,
		formID:   strings.TrimSpace(formID),
		client:   &http.Client{Timeout: DefaultTimeout},
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// URL returns the address submissions are posted to.
func (f *Formspree) URL() string {
	return f.endpoint + "/" + f.formID
}

type formspreeResponse struct {
	OK     bool         `json:"ok"`
	Next   string       `json:"next"`
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors"`
}

// Submit sends payload once. It never retries.
func (f *Formspree) Submit(ctx context.Context, payload map[string]string) (Result, error) {
	if f == nil || f.formID == "" {
		return Result{}, ErrMissingFormID
	}
	if ctx == nil {
		ctx = context.Background()
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("submission: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.URL(), bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("submission: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("submission: post %s: %w", f.URL(), err)
	}
	defer resp.Body.Close()

	result := Result{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return result, fmt.Errorf("submission: read response: %w", err)
	}
	var decoded formspreeResponse
	parsed := false
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			f.logger.Printf("submission: undecodable response (status %d)", resp.StatusCode)
		} else {
			parsed = true
		}
	}
	result.Next = decoded.Next
	result.Errors = decoded.Errors
	if len(result.Errors) == 0 && decoded.Error != "" {
		result.Errors = []FieldError{{Message: decoded.Error}}
	}

	// Only an explicit "ok": true in a 2xx reply counts as accepted.
	success := resp.StatusCode >= 200 && resp.StatusCode < 300 &&
		parsed && decoded.OK && len(result.Errors) == 0
	if !success {
		return result, fmt.Errorf("%w: %s", ErrRejected, result.Summary())
	}
	result.OK = true
	return result, nil
}
