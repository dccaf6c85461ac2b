package user

import (
	"errors"
	"fmt"
)

// Error codes for identity failures.
const (
	CodeDuplicateEmail     = "duplicateEmail"
	CodeInvalidCredentials = "invalidCredentials"
	CodeInvalidArgument    = "invalidArgument"
	CodeNotFound           = "notFound"
)

// AuthError is a structured identity failure.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewDuplicateEmailError() error {
	return &AuthError{Code: CodeDuplicateEmail, Message: "email already registered"}
}

func NewInvalidCredentialsError() error {
	return &AuthError{Code: CodeInvalidCredentials, Message: "invalid email or password"}
}

func NewInvalidArgumentError(msg string) error {
	return &AuthError{Code: CodeInvalidArgument, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &AuthError{Code: CodeNotFound, Message: msg}
}

// ErrorCode extracts the error code from err, or "" when err is not an
// AuthError.
func ErrorCode(err error) string {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
