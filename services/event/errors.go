package event

import (
	"errors"
	"fmt"
)

// Error codes for event operation failures.
const (
	CodeNotFound        = "notFound"
	CodeInvalidArgument = "invalidArgument"
	CodeSlotLocked      = "slotLocked"
)

// EventError is a structured failure from the event service.
type EventError struct {
	Code    string
	Message string
}

func (e *EventError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &EventError{Code: CodeNotFound, Message: msg}
}

func NewInvalidArgumentError(msg string) error {
	return &EventError{Code: CodeInvalidArgument, Message: msg}
}

func NewSlotLockedError(msg string) error {
	return &EventError{Code: CodeSlotLocked, Message: msg}
}

// ErrorCode extracts the error code from err, or "" when err is not an
// EventError.
func ErrorCode(err error) string {
	var ee *EventError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}
