package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking. Every rule violation raised by an
// aggregate unwraps to exactly one of these, which is what the HTTP adapter
// uses for status mapping.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrState      = errors.New("illegal state transition")
)

// ViolationKind classifies a rule violation by the category of precondition
// that failed.
type ViolationKind string

const (
	// KindValidation covers invalid construction values (length, range,
	// enum membership).
	KindValidation ViolationKind = "validation"
	// KindNotFound covers references to entities absent from the aggregate.
	KindNotFound ViolationKind = "not_found"
	// KindConflict covers uniqueness violations within an aggregate.
	KindConflict ViolationKind = "conflict"
	// KindState covers operations invoked in a lifecycle state that does
	// not permit them.
	KindState ViolationKind = "state"
)

// RuleViolation is the single error type raised by domain operations whose
// preconditions fail. The message text is part of the contract: callers and
// tests match on substrings such as "already exists" or "not found".
type RuleViolation struct {
	Kind    ViolationKind
	Message string
}

func (e *RuleViolation) Error() string {
	return e.Message
}

// Unwrap maps the violation kind to its sentinel so that
// errors.Is(err, ErrValidation) etc. work through wrapping.
func (e *RuleViolation) Unwrap() error {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return ErrConflict
	case KindState:
		return ErrState
	default:
		return ErrValidation
	}
}

// Validationf creates a validation-kind RuleViolation.
func Validationf(format string, args ...any) *RuleViolation {
	return &RuleViolation{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a not-found-kind RuleViolation.
func NotFoundf(format string, args ...any) *RuleViolation {
	return &RuleViolation{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf creates a conflict-kind RuleViolation.
func Conflictf(format string, args ...any) *RuleViolation {
	return &RuleViolation{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Statef creates a state-kind RuleViolation.
func Statef(format string, args ...any) *RuleViolation {
	return &RuleViolation{Kind: KindState, Message: fmt.Sprintf(format, args...)}
}
