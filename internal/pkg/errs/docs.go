// Package errs provides the error types shared by every layer of the package
// service. Each type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) used with errors.Is
//   - a struct carrying the details of the failure
//   - a constructor, plus a WithCause variant where callers have an underlying error
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Two kinds are raised by the lifecycle core and surfaced to API clients verbatim:
//   - DomainRuleViolationError: a business rule rejected the request
//   - EntityNotFoundError: an id-based lookup found nothing
//
// The value errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError)
// describe malformed input caught before any business rule runs.
package errs
