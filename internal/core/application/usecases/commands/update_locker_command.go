package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrUpdateLockerCommandIsNotConstructed = errors.New(
		"UpdateLockerCommand must be created via NewUpdateLockerCommand constructor",
	)
)

// UpdateLockerCommand represents a partial operator update of a locker: only
// the supplied fields change. The lifecycle engine drives status and
// occupancy during rent transitions; this command exists for administrative
// corrections.
type UpdateLockerCommand struct { //nolint:recvcheck //using for validation
	lockerID   kernel.UUID
	status     *locker.Status
	isOccupied *bool

	guard guard.ConstructorGuard
}

// NewUpdateLockerCommand creates a partial locker update. Nil fields are left
// untouched by the handler.
func NewUpdateLockerCommand(
	lockerID kernel.UUID,
	status *locker.Status,
	isOccupied *bool,
) (UpdateLockerCommand, error) {
	cmd := UpdateLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := lockerID.Validate(); err != nil {
		return UpdateLockerCommand{}, err
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateLockerCommand{}, err
		}
	}

	cmd.lockerID = lockerID
	cmd.status = status
	cmd.isOccupied = isOccupied
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLockerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLockerCommandIsNotConstructed)
}

// LockerID returns the identifier of the locker to update.
func (c UpdateLockerCommand) LockerID() kernel.UUID {
	return c.lockerID
}

// Status returns the new status, or nil when the status is unchanged.
func (c UpdateLockerCommand) Status() *locker.Status {
	return c.status
}

// IsOccupied returns the new occupancy flag, or nil when it is unchanged.
func (c UpdateLockerCommand) IsOccupied() *bool {
	return c.isOccupied
}
