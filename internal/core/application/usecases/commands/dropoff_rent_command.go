package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrDropoffRentCommandIsNotConstructed = errors.New(
		"DropoffRentCommand must be created via NewDropoffRentCommand constructor",
	)
)

// DropoffRentCommand represents the sender depositing the parcel into the
// reserved locker.
type DropoffRentCommand struct { //nolint:recvcheck //using for validation
	rentID    kernel.UUID
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewDropoffRentCommand creates a dropoff request on behalf of the principal.
func NewDropoffRentCommand(rentID kernel.UUID, principal account.Principal) (DropoffRentCommand, error) {
	cmd := DropoffRentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := rentID.Validate(); err != nil {
		return DropoffRentCommand{}, err
	}

	cmd.rentID = rentID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DropoffRentCommand) Validate() error {
	return c.guard.Validate(ErrDropoffRentCommandIsNotConstructed)
}

// RentID returns the identifier of the rent being dropped off.
func (c DropoffRentCommand) RentID() kernel.UUID {
	return c.rentID
}

// Principal returns the authenticated actor performing the dropoff.
func (c DropoffRentCommand) Principal() account.Principal {
	return c.principal
}
