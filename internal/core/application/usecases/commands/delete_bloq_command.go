package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrDeleteBloqCommandIsNotConstructed = errors.New(
		"DeleteBloqCommand must be created via NewDeleteBloqCommand constructor",
	)
)

// DeleteBloqCommand represents a request to remove a site. No cascade applies:
// lockers under the site keep their records.
type DeleteBloqCommand struct { //nolint:recvcheck //using for validation
	bloqID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteBloqCommand creates a command to remove a site by id.
func NewDeleteBloqCommand(bloqID kernel.UUID) (DeleteBloqCommand, error) {
	cmd := DeleteBloqCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := bloqID.Validate(); err != nil {
		return DeleteBloqCommand{}, err
	}

	cmd.bloqID = bloqID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBloqCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBloqCommandIsNotConstructed)
}

// BloqID returns the identifier of the site to delete.
func (c DeleteBloqCommand) BloqID() kernel.UUID {
	return c.bloqID
}
