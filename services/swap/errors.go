package swap

import (
	"errors"
	"fmt"
)

// Error codes for swap engine failures.
const (
	CodeNotFound        = "notFound"
	CodeInvalidArgument = "invalidArgument"
	CodeSlotUnavailable = "slotUnavailable"
	CodeInvalidState    = "invalidState"
)

// SwapError is a structured engine failure. Code identifies the taxonomy
// entry; Message is safe to surface to the caller.
type SwapError struct {
	Code    string
	Message string
}

func (e *SwapError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &SwapError{Code: CodeNotFound, Message: msg}
}

func NewInvalidArgumentError(msg string) error {
	return &SwapError{Code: CodeInvalidArgument, Message: msg}
}

func NewSlotUnavailableError(msg string) error {
	return &SwapError{Code: CodeSlotUnavailable, Message: msg}
}

func NewInvalidStateError(msg string) error {
	return &SwapError{Code: CodeInvalidState, Message: msg}
}

// ErrorCode extracts the engine error code from err, or "" when err is not
// a SwapError.
func ErrorCode(err error) string {
	var se *SwapError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
