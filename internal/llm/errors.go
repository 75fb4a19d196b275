package llm

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyResponse is returned when an upstream answers 200 with no content choices.
var ErrEmptyResponse = errors.New("no response from provider")

// APIError is a non-2xx answer from an upstream completion API.
type APIError struct {
	Provider string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.Status, e.Body)
}

// Unauthorized reports whether the upstream rejected the credential.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// IsUnauthorized reports whether err wraps an APIError for a rejected credential.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}

const maxErrorBody = 4 << 10

func newAPIError(provider string, resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		Provider: provider,
		Status:   resp.StatusCode,
		Body:     string(body),
	}
}
