package document

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error raised while producing a
// provisioning document.
type ErrorType int

const (
	// ErrTypeShape indicates the identity field does not normalize to a
	// 12-character MAC. Nothing is written.
	ErrTypeShape ErrorType = iota
	// ErrTypeDestination indicates the output destination could not be
	// opened or written. Nothing (or no partial document) is left behind.
	ErrTypeDestination
	// ErrTypeUnknown indicates an unexpected error.
	ErrTypeUnknown
)

// String returns a human-readable name for the error type.
func (et ErrorType) String() string {
	switch et {
	case ErrTypeShape:
		return "Shape Error"
	case ErrTypeDestination:
		return "Destination Error"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// GenError is an error raised during document generation. Every GenError is
// structural: retrying without changing the form cannot fix it.
type GenError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *GenError) Unwrap() error {
	return e.Err
}

// NewShapeError creates an identity-shape error.
func NewShapeError(message string) *GenError {
	return &GenError{Type: ErrTypeShape, Message: message}
}

// NewDestinationError creates an output-destination error.
func NewDestinationError(message string, err error) *GenError {
	return &GenError{Type: ErrTypeDestination, Message: message, Err: err}
}

// IsShapeError checks if an error is an identity-shape error.
func IsShapeError(err error) bool {
	var genErr *GenError
	return errors.As(err, &genErr) && genErr.Type == ErrTypeShape
}

// IsDestinationError checks if an error is an output-destination error.
func IsDestinationError(err error) bool {
	var genErr *GenError
	return errors.As(err, &genErr) && genErr.Type == ErrTypeDestination
}

// ShortMessage returns a concise, operator-facing message for an error.
// The session stays open and editable after any of these.
func ShortMessage(err error) string {
	var genErr *GenError
	if !errors.As(err, &genErr) {
		return err.Error()
	}
	switch genErr.Type {
	case ErrTypeShape:
		return genErr.Message
	case ErrTypeDestination:
		return "Cannot write config file - check the output directory"
	default:
		return genErr.Message
	}
}
