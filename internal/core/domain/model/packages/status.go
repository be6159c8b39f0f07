package packages

import (
	"fmt"

	"github.com/belvip/logistic-application/internal/pkg/errs"
)

// Status represents the lifecycle state of a package.
//
// State transitions:
//
//	PENDING ──> PROCESSING ──> IN_TRANSIT ──> OUT_FOR_DELIVERY ──> DELIVERED
//
//	FAILED_DELIVERY, RETURNED: no transition leads into or out of them.
//
// Every transition that is not drawn above is forbidden.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the only status a package can be created with.
	Pending

	// Processing means the package is being prepared at the origin facility.
	Processing

	// InTransit means the package is moving between facilities.
	InTransit

	// OutForDelivery means the package is on the final delivery vehicle.
	OutForDelivery

	// Delivered is the terminal state. Delivered packages cannot be updated.
	Delivered

	// FailedDelivery is declared for delivery failures set outside this service.
	FailedDelivery

	// Returned is declared for packages sent back to the sender outside this service.
	Returned
)

var statusNames = [...]string{
	Unknown:        "UNKNOWN",
	Pending:        "PENDING",
	Processing:     "PROCESSING",
	InTransit:      "IN_TRANSIT",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	FailedDelivery: "FAILED_DELIVERY",
	Returned:       "RETURNED",
}

// nextStatus is the transition table: each status allows at most one forward move.
// Unknown marks the absence of an allowed move.
var nextStatus = [...]Status{
	Unknown:        Unknown,
	Pending:        Processing,
	Processing:     InTransit,
	InTransit:      OutForDelivery,
	OutForDelivery: Delivered,
	Delivered:      Unknown,
	FailedDelivery: Unknown,
	Returned:       Unknown,
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Processing, InTransit, OutForDelivery, Delivered, FailedDelivery, Returned}
}

// ParseStatus converts a status name such as "IN_TRANSIT" into a Status.
// Only the exact upper-case names are accepted.
func ParseStatus(value string) (Status, error) {
	for _, s := range AllStatuses() {
		if statusNames[s] == value {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate returns an error unless s is one of the declared lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || int(s) >= len(statusNames) {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the upper-case name used in the API and in storage.
func (s Status) String() string {
	if s < Unknown || int(s) >= len(statusNames) {
		return statusNames[Unknown]
	}
	return statusNames[s]
}

// IsInitial reports whether a package may be created with this status.
func (s Status) IsInitial() bool {
	return s == Pending
}

// IsTerminal reports whether the status freezes the package.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the single status reachable from s, if any.
func (s Status) Next() (Status, bool) {
	if s.Validate() != nil {
		return Unknown, false
	}
	next := nextStatus[s]
	return next, next != Unknown
}

// CanTransitionTo reports whether the transition table allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	allowed, ok := s.Next()
	return ok && allowed == next
}
