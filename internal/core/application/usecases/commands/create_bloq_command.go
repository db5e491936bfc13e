package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrCreateBloqCommandIsNotConstructed = errors.New(
		"CreateBloqCommand must be created via NewCreateBloqCommand constructor",
	)
)

// CreateBloqCommand represents a request to register a new locker site.
//
// Example:
//
//	bloqID := kernel.NewUUID()
//	cmd, err := NewCreateBloqCommand(bloqID, "Luitton Vuis", "Champs-Elysees 101", kernel.France)
//	if err != nil {
//	    return fmt.Errorf("invalid bloq data: %w", err)
//	}
//
//	handler := NewCreateBloqCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create bloq: %w", err)
//	}
type CreateBloqCommand struct { //nolint:recvcheck //using for validation
	bloqID  kernel.UUID
	title   string
	address string
	country kernel.Country

	guard guard.ConstructorGuard
}

// NewCreateBloqCommand creates a command to register a new site.
// Validation of title, address and country is delegated to the Bloq
// aggregate; the command only guards the identifier and construction.
func NewCreateBloqCommand(
	bloqID kernel.UUID,
	title, address string,
	country kernel.Country,
) (CreateBloqCommand, error) {
	cmd := CreateBloqCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBloqID(bloqID); err != nil {
		return CreateBloqCommand{}, err
	}

	cmd.title = title
	cmd.address = address
	cmd.country = country
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBloqCommand) Validate() error {
	return c.guard.Validate(ErrCreateBloqCommandIsNotConstructed)
}

// BloqID returns the unique identifier for the new site.
func (c CreateBloqCommand) BloqID() kernel.UUID {
	return c.bloqID
}

// Title returns the human-readable site name.
func (c CreateBloqCommand) Title() string {
	return c.title
}

// Address returns the street address of the site.
func (c CreateBloqCommand) Address() string {
	return c.address
}

// Country returns the country the site will serve.
func (c CreateBloqCommand) Country() kernel.Country {
	return c.country
}

func (c *CreateBloqCommand) setBloqID(bloqID kernel.UUID) error {
	if err := bloqID.Validate(); err != nil {
		return err
	}

	c.bloqID = bloqID
	return nil
}
