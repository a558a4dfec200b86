// Package apperr defines the typed failure kinds used across Tattvam
// services. Services return an *Error; controllers map its Kind to an
// HTTP status. Kinds are compared with errors.Is against the sentinel
// values below, so wrapping with fmt.Errorf("...: %w", err) is safe.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown is the zero kind; mapped to 500.
	KindUnknown Kind = iota
	// KindNotFound — the referenced entity id does not exist.
	KindNotFound
	// KindValidation — malformed or out-of-range input.
	KindValidation
	// KindUnauthorized — missing, invalid, or expired credential.
	KindUnauthorized
	// KindForbidden — authenticated but not entitled to the resource.
	KindForbidden
	// KindConflict — uniqueness violation (duplicate email/username).
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a failure with a kind, a client-safe message, and optional
// field-level validation details.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string // non-nil only for validation failures
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is match an *Error against a kind sentinel, e.g.
// errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	s, ok := target.(*Error)
	return ok && s.Message == "" && s.Kind == e.Kind
}

// Sentinel values for errors.Is comparisons.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrConflict     = &Error{Kind: KindConflict}
)

// NotFound builds a not-found error for a named entity.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// Validation builds a validation error with a message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// ValidationFields builds a validation error carrying field-level details.
func ValidationFields(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

// Unauthorized builds an unauthorized error.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Forbidden builds a forbidden error.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// Conflict builds a conflict error.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// KindOf extracts the Kind from any error in the chain.
// Returns KindUnknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
