package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind classifies a business failure. Everything a service returns is one of
// these; anything unclassified is treated as KindInternal at the boundary.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindNoRecognizedField
	KindUnauthorized
	KindInternal
)

// Violation is a single declarative-constraint failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the typed failure every service boundary returns.
// Field names the offending field for Conflict/NotFound failures.
type Error struct {
	Kind       Kind
	Field      string
	Message    string
	Violations []Violation
	Err        error // wrapped cause, logged but never exposed for KindInternal
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Conflict reports a violated uniqueness rule on the named field.
func Conflict(field, message string) *Error {
	return &Error{Kind: KindConflict, Field: field, Message: message}
}

// NotFound reports a referenced identifier that does not resolve.
func NotFound(field, message string) *Error {
	return &Error{Kind: KindNotFound, Field: field, Message: message}
}

// NoRecognizedField reports a patch map with no acceptable key.
func NoRecognizedField() *Error {
	return &Error{Kind: KindNoRecognizedField, Message: "no valid field was passed"}
}

// Unauthorized reports a credential mismatch.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Validationf reports a single ad-hoc validation failure on a field.
func Validationf(field, format string, args ...interface{}) *Error {
	return &Error{
		Kind:       KindValidation,
		Field:      field,
		Message:    fmt.Sprintf(format, args...),
		Violations: []Violation{{Field: field, Message: fmt.Sprintf(format, args...)}},
	}
}

// Internal wraps an infrastructure error. The cause stays attached for
// logging; the message is what callers are allowed to see.
func Internal(err error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// FromValidation folds an ozzo validation result into a single Error
// carrying every violation, concatenated in deterministic field order.
// A nil input returns nil.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return Internal(err, "validation failed")
	}

	fields := make([]string, 0, len(verrs))
	for f := range verrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	violations := make([]Violation, 0, len(fields))
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		violations = append(violations, Violation{Field: f, Message: verrs[f].Error()})
		parts = append(parts, fmt.Sprintf("%s: %s", f, verrs[f].Error()))
	}

	return &Error{
		Kind:       KindValidation,
		Message:    "validation errors: " + strings.Join(parts, "; "),
		Violations: violations,
	}
}

// KindOf extracts the Kind from an error chain.
// Unclassified errors are KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// As extracts the *Error from a chain, wrapping unclassified errors as
// internal faults so callers always get a typed failure.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err, "internal server error")
}
