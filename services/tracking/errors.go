package tracking

import (
	"errors"
	"fmt"
)

// Error codes mirrored from the reservation flow taxonomy; tracking failures
// are just as recoverable.
const (
	CodeValidation = "validation_error"
	CodeNetwork    = "network_error"
	CodeIneligible = "ineligible_action"
	CodeExternal   = "external_service_error"
)

// TrackingError is a classified, user-facing failure of a tracking operation.
type TrackingError struct {
	Code    string
	Message string
}

func (e *TrackingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &TrackingError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNetworkError(format string, args ...any) error {
	return &TrackingError{Code: CodeNetwork, Message: fmt.Sprintf(format, args...)}
}

func NewIneligibleError(format string, args ...any) error {
	return &TrackingError{Code: CodeIneligible, Message: fmt.Sprintf(format, args...)}
}

func NewExternalServiceError(format string, args ...any) error {
	return &TrackingError{Code: CodeExternal, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the tracking error code, or "" for unclassified errors.
func ErrorCode(err error) string {
	var trackingErr *TrackingError
	if errors.As(err, &trackingErr) {
		return trackingErr.Code
	}
	return ""
}

// ErrReservationNotFound means the tracking token matches no reservation.
var ErrReservationNotFound = errors.New("reservation not found")
