package errs

import (
	"errors"
)

// ErrDomainRuleViolation is the sentinel for every rejected business rule.
var ErrDomainRuleViolation = errors.New("domain rule violation")

// DomainRuleViolationError carries a message that is safe to show to the end user.
type DomainRuleViolationError struct {
	Message string
}

// NewDomainRuleViolationError creates a rule violation with the given user-facing message.
func NewDomainRuleViolationError(message string) *DomainRuleViolationError {
	return &DomainRuleViolationError{Message: message}
}

func (e *DomainRuleViolationError) Error() string {
	return e.Message
}

func (e *DomainRuleViolationError) Unwrap() error {
	return ErrDomainRuleViolation
}
