package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrDeleteLockerCommandIsNotConstructed = errors.New(
		"DeleteLockerCommand must be created via NewDeleteLockerCommand constructor",
	)
)

// DeleteLockerCommand represents a request to remove a locker. Rents that
// referenced the locker keep their weak reference.
type DeleteLockerCommand struct { //nolint:recvcheck //using for validation
	lockerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteLockerCommand creates a command to remove a locker by id.
func NewDeleteLockerCommand(lockerID kernel.UUID) (DeleteLockerCommand, error) {
	cmd := DeleteLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := lockerID.Validate(); err != nil {
		return DeleteLockerCommand{}, err
	}

	cmd.lockerID = lockerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLockerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLockerCommandIsNotConstructed)
}

// LockerID returns the identifier of the locker to delete.
func (c DeleteLockerCommand) LockerID() kernel.UUID {
	return c.lockerID
}
