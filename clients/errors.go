package clients

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested resource does not exist upstream.
	ErrNotFound = errors.New("resource not found")
	// ErrUnavailable covers transport failures and timeouts; callers may retry.
	ErrUnavailable = errors.New("upstream service unavailable")
	// ErrInvalidResponse means the upstream answered with something we cannot use.
	ErrInvalidResponse = errors.New("invalid upstream response")
)

// APIError is a structured failure returned by an upstream API (for example
// "slot no longer available"). Its message is surfaced to the customer verbatim.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upstream error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
