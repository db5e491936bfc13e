package services

import (
	"errors"

	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/domain/model/rent"
)

// ErrLockerNotFound is returned when no suitable locker is available for rent
// allocation. This occurs when either no lockers are provided or none of the
// provided lockers can hold the parcel due to size, occupancy or status.
var ErrLockerNotFound = errors.New("locker not found")

// LockerAllocator is a domain service responsible for finding and reserving a
// locker for a rent.
//
// Key responsibilities:
//   - Validating rents before allocation
//   - Selecting the first locker that matches size and availability
//   - Ensuring atomic reserve-and-bind workflow
//
// Business rules:
//   - Rents must be valid and in CREATED status before allocation
//   - Lockers must be OPEN, unoccupied and of the exact parcel size
//   - Selection is deterministic: the first matching locker wins
//   - Reservation and rent binding happen together
//
// Example usage:
//
//	allocator := LockerAllocator{}
//	r, _ := rent.NewRent(id, weight, size, sender, receiver)
//	lockers := []*locker.Locker{locker1, locker2, locker3}
//
//	assignedLocker, err := allocator.Allocate(r, lockers)
//	if errors.Is(err, ErrLockerNotFound) {
//	    // No available locker; the rent stays CREATED
//	    return
//	}
//	if err != nil {
//	    // Handle allocation failure
//	    return
//	}
//	// Rent successfully bound to assignedLocker
type LockerAllocator struct{}

// NewLockerAllocator creates a new LockerAllocator instance.
func NewLockerAllocator() LockerAllocator {
	return LockerAllocator{}
}

// Allocate finds a locker for the given rent and executes the reservation
// workflow.
//
// Parameters:
//   - r: The rent to allocate (must be valid and in CREATED status)
//   - lockers: Slice of candidate lockers to consider, in storage order
//
// Returns:
//   - *locker.Locker: The locker reserved for the rent
//   - error: ErrLockerNotFound if no suitable locker exists, or other
//     validation/reservation errors
//
// Selection algorithm:
//   - Validates the rent and each candidate locker
//   - Skips lockers that are closed, occupied or of a different size
//   - Reserves the first matching locker and binds it to the rent
func (a LockerAllocator) Allocate(r *rent.Rent, lockers []*locker.Locker) (*locker.Locker, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if _, err := r.Status().Assign(); err != nil {
		return nil, err
	}

	candidate, err := a.findAvailableLocker(r, lockers)
	if err != nil {
		return nil, err
	}

	if err = candidate.Reserve(); err != nil {
		return nil, err
	}

	if err = r.Allocate(candidate.ID()); err != nil {
		return nil, err
	}

	return candidate, nil
}

// findAvailableLocker searches the candidates in order for the first locker
// that can hold the rent's parcel.
func (a LockerAllocator) findAvailableLocker(r *rent.Rent, lockers []*locker.Locker) (*locker.Locker, error) {
	for _, l := range lockers {
		if err := l.Validate(); err != nil {
			return nil, err
		}

		if !l.IsAvailable() {
			continue
		}

		if l.Size() != r.Size() {
			continue
		}

		return l, nil
	}

	return nil, ErrLockerNotFound
}
