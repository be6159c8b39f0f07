package services

import (
	"fmt"

	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/pkg/errs"
)

var (
	msgWeightCeiling    = fmt.Sprintf("Weight must not exceed %.1f kg", packages.MaxWeight)
	msgInitialStatus    = fmt.Sprintf("Status must be an initial state (e.g. %s)", packages.Pending)
	msgAlreadyDelivered = "Cannot update a package that has already been delivered"
)

// LifecycleValidator is a domain service that gatekeeps every state-changing
// operation on a Package. It never mutates the package or touches storage;
// callers apply the proposed values only after validation succeeds.
//
// Business rules:
//   - Weight must not exceed packages.MaxWeight, on create and on every update
//   - New packages start in PENDING
//   - A DELIVERED package rejects every update, checked before anything else
//   - Status moves only along the transition table of packages.Status
//
// Example usage:
//
//	validator := NewLifecycleValidator()
//	if err := validator.ValidateForUpdate(existing, cmd.Weight(), cmd.Status()); err != nil {
//	    return err
//	}
//	_ = existing.Revise(cmd.Description(), cmd.Weight(), cmd.Fragile(), cmd.Status())
type LifecycleValidator struct{}

// NewLifecycleValidator creates a new LifecycleValidator instance.
func NewLifecycleValidator() LifecycleValidator {
	return LifecycleValidator{}
}

// ValidateForCreation checks a package that is about to be persisted for the first time.
//
// Returns a DomainRuleViolationError when the weight exceeds the ceiling or the
// status is not the initial one.
func (v LifecycleValidator) ValidateForCreation(candidate *packages.Package) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	if err := v.validateWeight(candidate.Weight()); err != nil {
		return err
	}

	if !candidate.Status().IsInitial() {
		return errs.NewDomainRuleViolationError(msgInitialStatus)
	}

	return nil
}

// ValidateForUpdate checks the proposed weight and status against the stored package.
// The checks short-circuit in this order:
//  1. delivered guard
//  2. weight ceiling
//  3. transition table
//
// The order is observable: an over-limit weight is reported before an invalid
// transition, and a delivered package is rejected whatever else is proposed.
func (v LifecycleValidator) ValidateForUpdate(existing *packages.Package, weight float64, next packages.Status) error {
	if err := existing.Validate(); err != nil {
		return err
	}

	if existing.Status().IsTerminal() {
		return errs.NewDomainRuleViolationError(msgAlreadyDelivered)
	}

	if err := v.validateWeight(weight); err != nil {
		return err
	}

	current := existing.Status()
	if !current.CanTransitionTo(next) {
		return errs.NewDomainRuleViolationError(
			fmt.Sprintf("Invalid status transition: from %s to %s", current, next),
		)
	}

	return nil
}

func (v LifecycleValidator) validateWeight(weight float64) error {
	if weight > packages.MaxWeight {
		return errs.NewDomainRuleViolationError(msgWeightCeiling)
	}
	return nil
}
