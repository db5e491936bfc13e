package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrCreateLockerCommandIsNotConstructed = errors.New(
		"CreateLockerCommand must be created via NewCreateLockerCommand constructor",
	)
)

// CreateLockerCommand represents a request to add a compartment to a site.
// New lockers start OPEN and unoccupied.
type CreateLockerCommand struct { //nolint:recvcheck //using for validation
	lockerID kernel.UUID
	bloqID   kernel.UUID
	size     kernel.Size

	guard guard.ConstructorGuard
}

// NewCreateLockerCommand creates a command to add a locker under a site.
func NewCreateLockerCommand(lockerID, bloqID kernel.UUID, size kernel.Size) (CreateLockerCommand, error) {
	cmd := CreateLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLockerID(lockerID),
		cmd.setBloqID(bloqID),
	); err != nil {
		return CreateLockerCommand{}, err
	}

	cmd.size = size
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLockerCommand) Validate() error {
	return c.guard.Validate(ErrCreateLockerCommandIsNotConstructed)
}

// LockerID returns the unique identifier for the new locker.
func (c CreateLockerCommand) LockerID() kernel.UUID {
	return c.lockerID
}

// BloqID returns the identifier of the owning site.
func (c CreateLockerCommand) BloqID() kernel.UUID {
	return c.bloqID
}

// Size returns the compartment size.
func (c CreateLockerCommand) Size() kernel.Size {
	return c.size
}

func (c *CreateLockerCommand) setLockerID(lockerID kernel.UUID) error {
	if err := lockerID.Validate(); err != nil {
		return err
	}

	c.lockerID = lockerID
	return nil
}

func (c *CreateLockerCommand) setBloqID(bloqID kernel.UUID) error {
	if err := bloqID.Validate(); err != nil {
		return err
	}

	c.bloqID = bloqID
	return nil
}
