package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrPickupRentCommandIsNotConstructed = errors.New(
		"PickupRentCommand must be created via NewPickupRentCommand constructor",
	)
	ErrCodeIsRequired = errors.New("code is required")
)

// PickupRentCommand represents the receiver collecting the parcel with the
// one-time code.
type PickupRentCommand struct { //nolint:recvcheck //using for validation
	rentID    kernel.UUID
	code      string
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewPickupRentCommand creates a pickup request on behalf of the principal.
func NewPickupRentCommand(
	rentID kernel.UUID,
	code string,
	principal account.Principal,
) (PickupRentCommand, error) {
	cmd := PickupRentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := rentID.Validate(); err != nil {
		return PickupRentCommand{}, err
	}

	if code == "" {
		return PickupRentCommand{}, ErrCodeIsRequired
	}

	cmd.rentID = rentID
	cmd.code = code
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupRentCommand) Validate() error {
	return c.guard.Validate(ErrPickupRentCommandIsNotConstructed)
}

// RentID returns the identifier of the rent being picked up.
func (c PickupRentCommand) RentID() kernel.UUID {
	return c.rentID
}

// Code returns the one-time code supplied by the caller.
func (c PickupRentCommand) Code() string {
	return c.code
}

// Principal returns the authenticated actor performing the pickup.
func (c PickupRentCommand) Principal() account.Principal {
	return c.principal
}
