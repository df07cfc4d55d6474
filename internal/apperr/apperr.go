// Package apperr defines the error taxonomy shared by the service layer
// and the HTTP handlers. Handlers translate these into response status
// codes and the JSON error envelope; services never shape HTTP responses
// themselves.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing input. It is raised
// before any I/O and implies no side effects occurred.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a field.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AuthorizationError reports that the caller does not own the referenced
// resource. No mutation is performed when it is raised.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NotFound builds a NotFoundError for a resource and identifier.
func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InsufficientWordsError reports that the supply engine could not
// assemble a word set meeting the minimum size, even after generation.
type InsufficientWordsError struct {
	Available int
	Required  int
}

func (e *InsufficientWordsError) Error() string {
	return fmt.Sprintf("insufficient words: have %d, need %d", e.Available, e.Required)
}

// GenerationFailedError reports a failed or timed-out content generator
// call, with the counts the caller needs for diagnostics.
type GenerationFailedError struct {
	Available int
	Requested int
	Err       error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("word generation failed (available %d, requested %d): %v", e.Available, e.Requested, e.Err)
}

func (e *GenerationFailedError) Unwrap() error { return e.Err }

// TransactionFailedError reports a failure inside the task completion
// transaction. The transaction is always fully rolled back before this
// error surfaces.
type TransactionFailedError struct {
	Err error
}

func (e *TransactionFailedError) Error() string {
	return fmt.Sprintf("transaction failed: %v", e.Err)
}

func (e *TransactionFailedError) Unwrap() error { return e.Err }

// DataAccessError is the catch-all for store-layer I/O failures not
// otherwise classified.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// DataAccess wraps a store-layer error with the failing operation name.
func DataAccess(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsAuthorization reports whether err is an AuthorizationError.
func IsAuthorization(err error) bool {
	var e *AuthorizationError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsInsufficientWords reports whether err is an InsufficientWordsError.
func IsInsufficientWords(err error) bool {
	var e *InsufficientWordsError
	return errors.As(err, &e)
}

// IsGenerationFailed reports whether err is a GenerationFailedError.
func IsGenerationFailed(err error) bool {
	var e *GenerationFailedError
	return errors.As(err, &e)
}
