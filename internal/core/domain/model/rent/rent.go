package rent

import (
	"errors"
	"fmt"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

// Domain errors for rent operations. The caller-facing messages are part of
// the API contract and must not be reworded.
var (
	// ErrRentIsNotConstructed is returned when using an improperly initialized Rent.
	ErrRentIsNotConstructed = errors.New("Rent must be created via NewRent constructor")
	// ErrSenderEmailIsRequired is returned when creating a rent without a sender email.
	ErrSenderEmailIsRequired = errs.NewValueIsRequiredError("senderEmail")
	// ErrReceiverEmailIsRequired is returned when creating a rent without a receiver email.
	ErrReceiverEmailIsRequired = errs.NewValueIsRequiredError("receiverEmail")
	// ErrNoLockerAssigned is returned by dropoff/pickup before a locker is bound.
	ErrNoLockerAssigned = errs.NewBadRequestError("Rent does not have a locker assigned")
	// ErrNotInDropoffStatus is returned by dropoff outside WAITING_DROPOFF.
	ErrNotInDropoffStatus = errs.NewForbiddenError("Rent is not in drop off status")
	// ErrNotInPickupStatus is returned by pickup outside WAITING_PICKUP.
	ErrNotInPickupStatus = errs.NewForbiddenError("Rent is not in pickup status")
	// ErrInvalidCode is returned by pickup when the supplied code does not match.
	ErrInvalidCode = errs.NewForbiddenError("Invalid code")
	// ErrNotAuthorizedToView is returned when a principal that is neither the
	// sender nor an operations user touches the rent.
	ErrNotAuthorizedToView = errs.NewForbiddenError("You are not authorized to view this rent")
	// ErrNotAuthorizedToUpdate is returned when a principal that is neither
	// the receiver nor an operations user attempts pickup.
	ErrNotAuthorizedToUpdate = errs.NewForbiddenError("You are not authorized to update this rent")
)

// Rent represents one parcel-delivery transaction. It is the aggregate root
// of the lifecycle engine and the only entity that moves through the
// dropoff/pickup state machine.
//
// Invariants:
//   - Weight is strictly positive, size belongs to the shared closed set
//   - A locker id is bound iff the status has left CREATED
//   - The one-time code is set iff the status is WAITING_PICKUP or DELIVERED
//   - Rents are never deleted; DELIVERED is terminal
type Rent struct {
	id            kernel.UUID
	lockerID      *kernel.UUID
	weight        float64
	size          kernel.Size
	status        Status
	senderEmail   string
	receiverEmail string
	code          string
	version       int

	guard guard.ConstructorGuard
}

// NewRent creates a validated Rent in CREATED status with no locker bound.
func NewRent(
	id kernel.UUID,
	weight float64,
	size kernel.Size,
	senderEmail, receiverEmail string,
) (*Rent, error) {
	r := &Rent{
		status:  Created,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setWeight(weight),
		r.setSize(size),
		r.setSenderEmail(senderEmail),
		r.setReceiverEmail(receiverEmail),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRent reconstructs a Rent from persistent storage, enforcing the
// cross-field invariants between status, locker binding and pickup code.
func RestoreRent(
	id kernel.UUID,
	lockerID *kernel.UUID,
	weight float64,
	size kernel.Size,
	status Status,
	senderEmail, receiverEmail, code string,
	version int,
) (*Rent, error) {
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	r := &Rent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setWeight(weight),
		r.setSize(size),
		r.setSenderEmail(senderEmail),
		r.setReceiverEmail(receiverEmail),
		status.Validate(),
		status.ValidateCanHaveLocker(lockerID != nil),
		status.ValidateCanHaveCode(code != ""),
	); err != nil {
		return nil, err
	}

	if lockerID != nil {
		if err := lockerID.Validate(); err != nil {
			return nil, err
		}
		bound := *lockerID
		r.lockerID = &bound
	}

	r.status = status
	r.code = code
	r.version = version
	return r, nil
}

// Validate ensures the Rent was created through NewRent.
func (r *Rent) Validate() error {
	if r == nil {
		return ErrRentIsNotConstructed
	}
	return r.guard.Validate(ErrRentIsNotConstructed)
}

// IsEqual compares two rents by identifier.
func (r *Rent) IsEqual(other *Rent) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rent's unique identifier.
func (r *Rent) ID() kernel.UUID {
	return r.id
}

// LockerID returns the bound locker's id, or nil while the rent is CREATED.
func (r *Rent) LockerID() *kernel.UUID {
	if r.lockerID == nil {
		return nil
	}
	bound := *r.lockerID
	return &bound
}

// Weight returns the parcel weight.
func (r *Rent) Weight() float64 {
	return r.weight
}

// Size returns the parcel size.
func (r *Rent) Size() kernel.Size {
	return r.size
}

// Status returns the current lifecycle status.
func (r *Rent) Status() Status {
	return r.status
}

// SenderEmail returns the email of the user who created the rent.
func (r *Rent) SenderEmail() string {
	return r.senderEmail
}

// ReceiverEmail returns the email the pickup code is sent to.
func (r *Rent) ReceiverEmail() string {
	return r.receiverEmail
}

// Code returns the one-time pickup code, or "" before dropoff.
func (r *Rent) Code() string {
	return r.code
}

// Version returns the optimistic concurrency token the rent was loaded with.
func (r *Rent) Version() int {
	return r.version
}

// BumpVersion advances the optimistic concurrency token. Repositories call it
// once after each successful conditional write so the in-memory aggregate
// stays writable.
func (r *Rent) BumpVersion() {
	r.version++
}

// Allocate binds a reserved locker to the rent and advances it to
// WAITING_DROPOFF. Only CREATED rents can be allocated.
func (r *Rent) Allocate(lockerID kernel.UUID) error {
	if err := lockerID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	r.status = newStatus
	bound := lockerID
	r.lockerID = &bound
	return nil
}

// MoveToLocker rebinds the rent to a different locker through the partial
// update operation. Rebinding a CREATED rent behaves like allocation so the
// locker/status invariant holds.
func (r *Rent) MoveToLocker(lockerID kernel.UUID) error {
	if r.status == Created {
		return r.Allocate(lockerID)
	}

	if err := lockerID.Validate(); err != nil {
		return err
	}
	bound := lockerID
	r.lockerID = &bound
	return nil
}

// ChangeWeight updates the parcel weight through the partial update operation.
func (r *Rent) ChangeWeight(weight float64) error {
	return r.setWeight(weight)
}

// ChangeSize updates the parcel size through the partial update operation.
func (r *Rent) ChangeSize(size kernel.Size) error {
	return r.setSize(size)
}

// Dropoff records the parcel deposit: the rent advances to WAITING_PICKUP and
// stores the freshly generated one-time code. Requires a bound locker and
// WAITING_DROPOFF status.
func (r *Rent) Dropoff(code string) error {
	if r.lockerID == nil {
		return ErrNoLockerAssigned
	}

	newStatus, err := r.status.Dropoff()
	if err != nil {
		return err
	}

	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	r.status = newStatus
	r.code = code
	return nil
}

// DropoffBy records the deposit on behalf of the given principal, enforcing
// the operation's precondition order: authorization, locker binding, status.
func (r *Rent) DropoffBy(principal account.Principal, code string) error {
	if err := r.EnsureViewableBy(principal); err != nil {
		return err
	}
	return r.Dropoff(code)
}

// Pickup completes the delivery: the supplied code must match the stored one
// exactly, the rent must hold a locker and be in WAITING_PICKUP status.
func (r *Rent) Pickup(code string) error {
	if r.lockerID == nil {
		return ErrNoLockerAssigned
	}

	newStatus, err := r.status.Pickup()
	if err != nil {
		return err
	}

	if r.code != code {
		return ErrInvalidCode
	}

	r.status = newStatus
	return nil
}

// PickupBy completes the delivery on behalf of the given principal, enforcing
// the operation's precondition order: locker binding, status, authorization,
// then the code check.
func (r *Rent) PickupBy(principal account.Principal, code string) error {
	if r.lockerID == nil {
		return ErrNoLockerAssigned
	}

	newStatus, err := r.status.Pickup()
	if err != nil {
		return err
	}

	if err = r.EnsurePickupBy(principal); err != nil {
		return err
	}

	if r.code != code {
		return ErrInvalidCode
	}

	r.status = newStatus
	return nil
}

// EnsureViewableBy enforces the sender-or-operations rule shared by findById,
// update and dropoff.
func (r *Rent) EnsureViewableBy(principal account.Principal) error {
	if r.senderEmail != principal.Email && !principal.IsOperations() {
		return ErrNotAuthorizedToView
	}
	return nil
}

// EnsurePickupBy enforces the receiver-or-operations rule for pickup.
func (r *Rent) EnsurePickupBy(principal account.Principal) error {
	if r.receiverEmail != principal.Email && !principal.IsOperations() {
		return ErrNotAuthorizedToUpdate
	}
	return nil
}

func (r *Rent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rent) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	r.weight = weight
	return nil
}

func (r *Rent) setSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	r.size = size
	return nil
}

func (r *Rent) setSenderEmail(email string) error {
	if email == "" {
		return ErrSenderEmailIsRequired
	}
	r.senderEmail = email
	return nil
}

func (r *Rent) setReceiverEmail(email string) error {
	if email == "" {
		return ErrReceiverEmailIsRequired
	}
	r.receiverEmail = email
	return nil
}
