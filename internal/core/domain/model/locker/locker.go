package locker

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

// Domain errors for locker operations.
var (
	// ErrLockerIsNotConstructed is returned when using an improperly initialized Locker.
	ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker constructor")
	// ErrLockerIsOccupied is returned when binding a rent to a locker that
	// already holds a parcel.
	ErrLockerIsOccupied = errs.NewBadRequestError("Locker is already occupied")
	// ErrLockerIsNotOpen is returned when binding a rent to a locker that an
	// operator or another rent has closed.
	ErrLockerIsNotOpen = errs.NewBadRequestError("Locker is not open")
)

// Locker represents an individually lockable compartment at a bloq.
// It is an aggregate root tracking the compartment's size, its administrative
// status and whether a parcel currently occupies it.
//
// Invariants:
//   - Must have valid identifiers for itself and its owning bloq
//   - Size belongs to the shared closed set
//   - Selectable for a new rent iff status is OPEN and not occupied
//
// The lifecycle engine drives the status/occupancy pair through three steps:
// Reserve (assignment; CLOSED, empty), Occupy (dropoff; CLOSED, occupied) and
// Release (pickup; OPEN, empty).
type Locker struct {
	id         kernel.UUID
	bloqID     kernel.UUID
	size       kernel.Size
	status     Status
	isOccupied bool
	version    int

	guard guard.ConstructorGuard
}

// NewLocker creates a validated Locker under the given bloq. New lockers
// start OPEN and unoccupied, ready to be picked by the allocation strategy.
func NewLocker(id, bloqID kernel.UUID, size kernel.Size) (*Locker, error) {
	l := &Locker{
		status:  StatusOpen,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setBloqID(bloqID),
		l.setSize(size),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocker reconstructs a Locker from persistent storage, including its
// status and occupancy at the time of persistence.
func RestoreLocker(
	id, bloqID kernel.UUID,
	size kernel.Size,
	status Status,
	isOccupied bool,
	version int,
) (*Locker, error) {
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	l := &Locker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setBloqID(bloqID),
		l.setSize(size),
		l.setStatus(status),
	); err != nil {
		return nil, err
	}

	l.isOccupied = isOccupied
	l.version = version
	return l, nil
}

// Validate ensures the Locker was created through NewLocker.
func (l *Locker) Validate() error {
	if l == nil {
		return ErrLockerIsNotConstructed
	}
	return l.guard.Validate(ErrLockerIsNotConstructed)
}

// IsEqual compares two lockers by identifier.
func (l *Locker) IsEqual(other *Locker) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the locker's unique identifier.
func (l *Locker) ID() kernel.UUID {
	return l.id
}

// BloqID returns the identifier of the owning bloq.
func (l *Locker) BloqID() kernel.UUID {
	return l.bloqID
}

// Size returns the compartment size.
func (l *Locker) Size() kernel.Size {
	return l.size
}

// Status returns the current administrative/reservation status.
func (l *Locker) Status() Status {
	return l.status
}

// IsOccupied reports whether a parcel is currently inside the locker.
func (l *Locker) IsOccupied() bool {
	return l.isOccupied
}

// Version returns the optimistic concurrency token the locker was loaded with.
func (l *Locker) Version() int {
	return l.version
}

// BumpVersion advances the optimistic concurrency token. Repositories call it
// once after each successful conditional write so the in-memory aggregate
// stays writable.
func (l *Locker) BumpVersion() {
	l.version++
}

// IsAvailable reports whether the locker can be selected for a new rent:
// status OPEN and no parcel inside.
func (l *Locker) IsAvailable() bool {
	return l.status == StatusOpen && !l.isOccupied
}

// EnsureAcceptsRent verifies the locker can be bound to a rent, returning the
// caller-facing precondition error otherwise. Occupancy is checked before
// status so a closed, occupied locker reports the occupancy problem.
func (l *Locker) EnsureAcceptsRent() error {
	if l.isOccupied {
		return ErrLockerIsOccupied
	}
	if l.status != StatusOpen {
		return ErrLockerIsNotOpen
	}
	return nil
}

// Reserve closes the locker for an assigned rent. The locker must currently
// accept rents; the parcel is not inside yet, so occupancy stays false.
func (l *Locker) Reserve() error {
	if err := l.EnsureAcceptsRent(); err != nil {
		return err
	}
	l.status = StatusClosed
	return nil
}

// Occupy marks the parcel as dropped off inside the locker.
func (l *Locker) Occupy() {
	l.isOccupied = true
}

// Release returns the locker to the available pool after pickup: the parcel
// is out and the compartment reopens for new rents.
func (l *Locker) Release() {
	l.isOccupied = false
	l.status = StatusOpen
}

// Open re-enables the locker administratively.
func (l *Locker) Open() {
	l.status = StatusOpen
}

// Close disables the locker administratively.
func (l *Locker) Close() {
	l.status = StatusClosed
}

// SetOccupied overrides the occupancy flag. Intended for operator corrections
// through the directory's partial update, not for lifecycle transitions.
func (l *Locker) SetOccupied(occupied bool) {
	l.isOccupied = occupied
}

func (l *Locker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Locker) setBloqID(bloqID kernel.UUID) error {
	if err := bloqID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("bloqId", err)
	}
	l.bloqID = bloqID
	return nil
}

func (l *Locker) setSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	l.size = size
	return nil
}

func (l *Locker) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}
