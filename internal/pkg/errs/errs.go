package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the classification anchors for errors.Is checks.
// Every concrete error type in this package unwraps to one of these.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrConflict          = errors.New("conflict")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValueIsRequiredError indicates a required value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value was present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for a malformed value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for a malformed value
// wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates an error for a value outside [min, max].
func NewValueIsOutOfRangeError(paramName string, value, minVal, maxVal any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minVal, Max: maxVal}
}

// NewValueIsOutOfRangeErrorWithCause creates an error for a value outside
// [min, max] wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minVal, maxVal any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minVal, Max: maxVal, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing entity.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing entity
// wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// NotAuthorizedError indicates the acting principal lacks permission
// for the requested operation.
type NotAuthorizedError struct {
	Role      string
	Operation string
}

// NewNotAuthorizedError creates an error for a forbidden operation.
func NewNotAuthorizedError(role, operation string) *NotAuthorizedError {
	return &NotAuthorizedError{Role: role, Operation: operation}
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("%s: role %s may not perform %s", ErrNotAuthorized, sanitize(e.Role), sanitize(e.Operation))
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// ConflictError indicates a unique-constraint violation, such as a
// duplicate branch name.
type ConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewConflictError creates an error for a duplicate value.
func NewConflictError(paramName string, value any) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value}
}

// NewConflictErrorWithCause creates an error for a duplicate value
// wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, value any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s already exists: %s (cause: %s)",
			ErrConflict, e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %s already exists: %s", ErrConflict, e.ParamName, sanitize(e.Value))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
