// Package packages provides the Package aggregate of the logistics system and
// the Status enumeration that describes where a package is in its shipping
// lifecycle.
//
// The package includes:
//   - Package: the aggregate root holding description, weight, fragility and status
//   - Status: the lifecycle enumeration and its fixed transition table
//
// Key business rules:
//   - Descriptions are 4 to 255 characters and not blank
//   - Weight is positive; the 50.0 kg ceiling is a lifecycle rule checked by
//     services.LifecycleValidator on create and on every update
//   - Status moves one step at a time along
//     PENDING -> PROCESSING -> IN_TRANSIT -> OUT_FOR_DELIVERY -> DELIVERED
//   - FAILED_DELIVERY and RETURNED are declared states with no inbound transition
//   - A DELIVERED package is immutable
package packages
