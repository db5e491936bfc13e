// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the parcel locker platform.
// It implements business workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - LockerAllocator: A domain service for finding and reserving lockers for rents
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
