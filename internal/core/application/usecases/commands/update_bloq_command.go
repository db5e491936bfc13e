package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrUpdateBloqCommandIsNotConstructed = errors.New(
		"UpdateBloqCommand must be created via NewUpdateBloqCommand constructor",
	)
)

// UpdateBloqCommand represents a partial update of a site: only the supplied
// fields change, unsupplied fields keep their prior values. The country of a
// site is immutable and cannot be updated.
type UpdateBloqCommand struct { //nolint:recvcheck //using for validation
	bloqID  kernel.UUID
	title   *string
	address *string

	guard guard.ConstructorGuard
}

// NewUpdateBloqCommand creates a partial site update. Nil fields are left
// untouched by the handler.
func NewUpdateBloqCommand(bloqID kernel.UUID, title, address *string) (UpdateBloqCommand, error) {
	cmd := UpdateBloqCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBloqID(bloqID); err != nil {
		return UpdateBloqCommand{}, err
	}

	cmd.title = title
	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBloqCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBloqCommandIsNotConstructed)
}

// BloqID returns the identifier of the site to update.
func (c UpdateBloqCommand) BloqID() kernel.UUID {
	return c.bloqID
}

// Title returns the new title, or nil when the title is unchanged.
func (c UpdateBloqCommand) Title() *string {
	return c.title
}

// Address returns the new address, or nil when the address is unchanged.
func (c UpdateBloqCommand) Address() *string {
	return c.address
}

func (c *UpdateBloqCommand) setBloqID(bloqID kernel.UUID) error {
	if err := bloqID.Validate(); err != nil {
		return err
	}

	c.bloqID = bloqID
	return nil
}
