package exam

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a referenced resource does not exist.
// Surfaced to the caller, non-retryable.
type NotFoundError struct {
	Resource string // "subject", "topic", "test", "attempt", "question"
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Resource, e.ID)
}

// RuleViolationError indicates the operation conflicts with a business rule
// (re-submission, ownership mismatch, no weak topics for a remedial test).
// Surfaced to the caller, non-retryable.
type RuleViolationError struct {
	Reason string
}

func (e *RuleViolationError) Error() string {
	return e.Reason
}

// ExternalServiceError indicates an unrecoverable failure of an external
// collaborator for a path that has no fallback.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsRuleViolation reports whether err is a RuleViolationError.
func IsRuleViolation(err error) bool {
	var rv *RuleViolationError
	return errors.As(err, &rv)
}
