package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrUpdateRentCommandIsNotConstructed = errors.New(
		"UpdateRentCommand must be created via NewUpdateRentCommand constructor",
	)
)

// UpdateRentCommand represents a partial update of a rent by its sender or an
// operations user: weight, size and the bound locker can change; lifecycle
// status only moves through the dedicated transition commands.
type UpdateRentCommand struct { //nolint:recvcheck //using for validation
	rentID    kernel.UUID
	principal account.Principal
	weight    *float64
	size      *kernel.Size
	lockerID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateRentCommand creates a partial rent update on behalf of the given
// principal. Nil fields are left untouched by the handler.
func NewUpdateRentCommand(
	rentID kernel.UUID,
	principal account.Principal,
	weight *float64,
	size *kernel.Size,
	lockerID *kernel.UUID,
) (UpdateRentCommand, error) {
	cmd := UpdateRentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := rentID.Validate(); err != nil {
		return UpdateRentCommand{}, err
	}

	if lockerID != nil {
		if err := lockerID.Validate(); err != nil {
			return UpdateRentCommand{}, err
		}
	}

	cmd.rentID = rentID
	cmd.principal = principal
	cmd.weight = weight
	cmd.size = size
	cmd.lockerID = lockerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRentCommandIsNotConstructed)
}

// RentID returns the identifier of the rent to update.
func (c UpdateRentCommand) RentID() kernel.UUID {
	return c.rentID
}

// Principal returns the authenticated actor requesting the update.
func (c UpdateRentCommand) Principal() account.Principal {
	return c.principal
}

// Weight returns the new weight, or nil when the weight is unchanged.
func (c UpdateRentCommand) Weight() *float64 {
	return c.weight
}

// Size returns the new size, or nil when the size is unchanged.
func (c UpdateRentCommand) Size() *kernel.Size {
	return c.size
}

// LockerID returns the locker to rebind the rent to, or nil when the binding
// is unchanged.
func (c UpdateRentCommand) LockerID() *kernel.UUID {
	return c.lockerID
}
