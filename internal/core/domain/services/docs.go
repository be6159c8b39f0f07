// Package services provides domain services of the logistics system: business
// rules that judge a Package without belonging to its data.
//
// The package includes:
//   - LifecycleValidator: creation and update rules for package status and weight
package services
