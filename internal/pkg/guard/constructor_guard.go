// Package guard provides ConstructorGuard, a marker that tells a value built by its
// constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects whose
// invariants are checked by a constructor. The zero value fails validation.
//
// Example:
//
//	type GetPackageQuery struct {
//	    id    *int64
//	    guard guard.ConstructorGuard
//	}
//
//	func (q GetPackageQuery) Validate() error {
//	    return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
