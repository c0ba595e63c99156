package reservation

import (
	"errors"
	"fmt"
)

// Error codes for the reservation flow. Every failure is scoped to the
// current session and recoverable by retry or by restarting from selection.
const (
	CodeValidation = "validation_error"
	CodeNetwork    = "network_error"
	CodeIneligible = "ineligible_action"
	CodeExternal   = "external_service_error"
)

// FlowError is a classified, user-facing failure of a flow operation.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &FlowError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNetworkError(format string, args ...any) error {
	return &FlowError{Code: CodeNetwork, Message: fmt.Sprintf(format, args...)}
}

func NewIneligibleError(format string, args ...any) error {
	return &FlowError{Code: CodeIneligible, Message: fmt.Sprintf(format, args...)}
}

func NewExternalServiceError(format string, args ...any) error {
	return &FlowError{Code: CodeExternal, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the flow error code, or "" for unclassified errors.
func ErrorCode(err error) string {
	var flowErr *FlowError
	if errors.As(err, &flowErr) {
		return flowErr.Code
	}
	return ""
}

// ErrSessionNotFound means the session expired or never existed.
var ErrSessionNotFound = errors.New("reservation session not found or expired")
