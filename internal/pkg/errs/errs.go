// Package errs provides the standardized error types used across the application.
//
// Each error kind follows the same pattern: a sentinel error variable, a struct
// carrying the error details, constructor functions with and without a cause,
// an Error() method and an Unwrap() method so errors.Is can classify any error
// against its sentinel.
//
// The kinds mirror the API error taxonomy: object-not-found, invalid/required
// value and bad-request map to client mistakes, forbidden/unauthorized/conflict
// cover access control and uniqueness violations. Anything that is none of
// these is treated as an internal failure by the transport layer.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for missing entities.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid is the sentinel for values that fail validation.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")
	// ErrBadRequest is the sentinel for violated operation preconditions.
	ErrBadRequest = errors.New("bad request")
	// ErrForbidden is the sentinel for authenticated but not entitled callers,
	// including state-incompatible lifecycle actions.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized is the sentinel for missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict is the sentinel for duplicate unique fields.
	ErrConflict = errors.New("conflict")
	// ErrVersionIsInvalid is the sentinel for optimistic concurrency conflicts:
	// the row changed after the aggregate was read.
	ErrVersionIsInvalid = errors.New("version is invalid")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an entity could not be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// NotFoundError indicates that an entity or a matching resource could not be
// found, with a caller-facing message instead of a parameter/identifier pair.
// The message is safe to expose to the caller verbatim.
type NotFoundError struct {
	Message string
	Cause   error
}

// NewNotFoundError creates a NotFoundError with a caller-facing message.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// NewNotFoundErrorWithCause creates a NotFoundError wrapping the underlying cause.
func NewNotFoundErrorWithCause(message string, cause error) *NotFoundError {
	return &NotFoundError{Message: message, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", e.Message, e.Cause))
	}
	return sanitize(e.Message)
}

func (e *NotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping the
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// BadRequestError indicates that an operation precondition on input or entity
// state was violated. The message is safe to expose to the caller verbatim.
type BadRequestError struct {
	Message string
	Cause   error
}

// NewBadRequestError creates a BadRequestError with a caller-facing message.
func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

// NewBadRequestErrorWithCause creates a BadRequestError wrapping the
// underlying cause.
func NewBadRequestErrorWithCause(message string, cause error) *BadRequestError {
	return &BadRequestError{Message: message, Cause: cause}
}

func (e *BadRequestError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", e.Message, e.Cause))
	}
	return sanitize(e.Message)
}

func (e *BadRequestError) Unwrap() error {
	return ErrBadRequest
}

// ForbiddenError indicates that the caller is authenticated but not entitled
// to the operation, or that the entity is in a state that rejects the action.
// The message is safe to expose to the caller verbatim.
type ForbiddenError struct {
	Message string
	Cause   error
}

// NewForbiddenError creates a ForbiddenError with a caller-facing message.
func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping the underlying cause.
func NewForbiddenErrorWithCause(message string, cause error) *ForbiddenError {
	return &ForbiddenError{Message: message, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", e.Message, e.Cause))
	}
	return sanitize(e.Message)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// UnauthorizedError indicates a missing or invalid credential.
// The message is safe to expose to the caller verbatim.
type UnauthorizedError struct {
	Message string
	Cause   error
}

// NewUnauthorizedError creates an UnauthorizedError with a caller-facing message.
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping the
// underlying cause.
func NewUnauthorizedErrorWithCause(message string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Message: message, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", e.Message, e.Cause))
	}
	return sanitize(e.Message)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ConflictError indicates a duplicate unique field, such as an email address
// that is already registered. The message is safe to expose to the caller.
type ConflictError struct {
	Message string
	Cause   error
}

// NewConflictError creates a ConflictError with a caller-facing message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NewConflictErrorWithCause creates a ConflictError wrapping the underlying cause.
func NewConflictErrorWithCause(message string, cause error) *ConflictError {
	return &ConflictError{Message: message, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", e.Message, e.Cause))
	}
	return sanitize(e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// VersionIsInvalidError indicates a lost optimistic concurrency race: the
// aggregate's stored version moved on between the read and the write.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError for the given
// parameter name.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping
// the underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// IsClassified reports whether err carries one of the package's error kinds.
// Unclassified errors are treated as internal failures by callers: their
// message is logged but never exposed to the end user.
func IsClassified(err error) bool {
	return errors.Is(err, ErrObjectNotFound) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrVersionIsInvalid)
}
