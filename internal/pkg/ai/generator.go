// Package ai provides the backend adapters and generation facade for acommit.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// FallbackMessage is returned whenever a backend response is missing the
// expected fields. The caller's confirmation prompt must never be empty, so
// a malformed upstream payload degrades to this safe default instead of
// failing the run.
const FallbackMessage = "chore: update files"

// DefaultTimeout is the timeout for a single generation call.
const DefaultTimeout = 120 * time.Second

// Generator is the uniform interface over the three backend families:
// a plain-text prompt in, one sanitized commit message line out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// APIError represents a non-success HTTP status from a backend.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// newHTTPClient builds the shared transport configuration used by the
// raw-HTTP adapters.
func newHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: transport,
	}
}
