package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return "invalid value for " + err.Fields[0].Field
		}
		return "validation failed"
	}
	return err.Err.Error()
}

// UnauthorizedError is returned when a request lacks a valid credential.
type UnauthorizedError struct {
	Reason string
}

const unauthorizedMsg = "invalid or missing API key"

func NewUnauthorizedError(reason string) error {
	return &UnauthorizedError{Reason: reason}
}

// Error never includes Reason so clients cannot tell a missing key from a wrong one.
func (err UnauthorizedError) Error() string {
	return unauthorizedMsg
}

func IsUnauthorized(err error) bool {
	_, ok := errors.Cause(err).(*UnauthorizedError)
	return ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
