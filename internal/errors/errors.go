// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrNoFileSelected     = errors.New("no file selected")
	ErrNotAnImage         = errors.New("selected file is not an image")
	ErrSubmissionInFlight = errors.New("analysis already in progress")
	ErrTradeNotFound      = errors.New("trade not found")
	ErrNotConfirmed       = errors.New("deletion not confirmed")
	ErrLoadSuperseded     = errors.New("load superseded by a newer request")
	ErrConfigInvalid      = errors.New("invalid configuration")
)

// BusinessError represents a well-formed failure envelope from the backend:
// a success:false response or an analyze body carrying an error field.
type BusinessError struct {
	Op      string
	Message string
}

func (e *BusinessError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: request failed", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NewBusinessError creates a new BusinessError.
func NewBusinessError(op, message string) *BusinessError {
	return &BusinessError{Op: op, Message: message}
}

// TransportError represents a failed request: connection errors, timeouts,
// or a malformed response body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a new TransportError.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// IsBusiness reports whether err is a BusinessError.
func IsBusiness(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// UserMessage extracts the message to surface to the user. Business errors
// carry the server-supplied message; transport errors the underlying cause.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var be *BusinessError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Err.Error()
	}
	return err.Error()
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
