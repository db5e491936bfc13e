package rent

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// Status represents the lifecycle state of a rent. It implements a linear
// state machine:
//
//	CREATED ──> WAITING_DROPOFF ──> WAITING_PICKUP ──> DELIVERED
//
// CREATED means the rent is persisted but no locker could be allocated yet;
// WAITING_DROPOFF means a locker is reserved and the sender may deposit the
// parcel; WAITING_PICKUP means the parcel is inside and a one-time code has
// been issued; DELIVERED is terminal.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// Created is the initial status: persisted, awaiting locker allocation.
	Created

	// WaitingDropoff indicates a locker is reserved for the parcel.
	WaitingDropoff

	// WaitingPickup indicates the parcel is in the locker and a pickup code
	// has been issued to the receiver.
	WaitingPickup

	// Delivered is the terminal status after a successful pickup.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		Created:        "CREATED",
		WaitingDropoff: "WAITING_DROPOFF",
		WaitingPickup:  "WAITING_PICKUP",
		Delivered:      "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:        "CREATED",
		WaitingDropoff: "WAITING_DROPOFF",
		WaitingPickup:  "WAITING_PICKUP",
		Delivered:      "DELIVERED",
	}
}

// StatusFromString parses the wire representation of a rent status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid rent status", s))
}

// String returns the wire representation of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Status value belongs to the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid rent status", s))
	}
	return nil
}

// Assign transitions the status to WaitingDropoff. Only CREATED rents can be
// assigned a locker; allocation never re-runs on an already-assigned rent.
func (s Status) Assign() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign a locker", s.String()),
		)
	}
	return WaitingDropoff, nil
}

// Dropoff transitions the status to WaitingPickup. The caller-facing
// ErrNotInDropoffStatus is returned from any other state, including a second
// dropoff attempt.
func (s Status) Dropoff() (Status, error) {
	if s != WaitingDropoff {
		return 0, ErrNotInDropoffStatus
	}
	return WaitingPickup, nil
}

// Pickup transitions the status to Delivered, the terminal state.
func (s Status) Pickup() (Status, error) {
	if s != WaitingPickup {
		return 0, ErrNotInPickupStatus
	}
	return Delivered, nil
}

// ValidateCanHaveLocker checks the consistency between status and locker
// binding: a locker id is present iff the rent has left CREATED.
func (s Status) ValidateCanHaveLocker(hasLocker bool) error {
	if hasLocker && s == Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a locker", s.String()),
		)
	}
	if !hasLocker && s != Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no locker", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCode checks the consistency between status and the one-time
// pickup code: the code is present iff the parcel reached the locker.
func (s Status) ValidateCanHaveCode(hasCode bool) error {
	if hasCode && s != WaitingPickup && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a pickup code", s.String()),
		)
	}
	if !hasCode && (s == WaitingPickup || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no pickup code", s.String()),
		)
	}
	return nil
}
