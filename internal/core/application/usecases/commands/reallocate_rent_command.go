package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrReallocateRentCommandIsNotConstructed = errors.New(
		"ReallocateRentCommand must be created via NewReallocateRentCommand constructor",
	)
)

// ReallocateRentCommand represents a retry of locker allocation for a rent
// that is still in CREATED status. Issued by the re-allocation job and by
// operators.
type ReallocateRentCommand struct { //nolint:recvcheck //using for validation
	rentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReallocateRentCommand creates a command to retry allocation for a rent.
func NewReallocateRentCommand(rentID kernel.UUID) (ReallocateRentCommand, error) {
	cmd := ReallocateRentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := rentID.Validate(); err != nil {
		return ReallocateRentCommand{}, err
	}

	cmd.rentID = rentID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReallocateRentCommand) Validate() error {
	return c.guard.Validate(ErrReallocateRentCommandIsNotConstructed)
}

// RentID returns the identifier of the rent to re-allocate.
func (c ReallocateRentCommand) RentID() kernel.UUID {
	return c.rentID
}
