package locker

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// Status is the administrative/reservation flag of a locker. OPEN lockers can
// accept a new rent; the lifecycle engine flips a locker to CLOSED when it is
// reserved for a rent, and operators may close a locker for maintenance.
//
// Status is deliberately independent of the occupancy flag: a locker reserved
// at creation time is CLOSED but not yet occupied until the parcel is dropped
// off. Availability for allocation requires both OPEN and unoccupied.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusOpen marks a locker that can be selected for a new rent,
	// provided it is not occupied.
	StatusOpen

	// StatusClosed marks a locker reserved for a rent or disabled by an
	// operator.
	StatusClosed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusOpen:   "OPEN",
		StatusClosed: "CLOSED",
	}
}

// StatusFromString parses the wire representation of a locker status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid locker status", s))
}

// String returns the wire representation, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects StatusUnknown and any value outside the closed set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid locker status", s))
	}
	return nil
}
