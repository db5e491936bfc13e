package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrCreateRentCommandIsNotConstructed = errors.New(
		"CreateRentCommand must be created via NewCreateRentCommand constructor",
	)
)

// CreateRentCommand represents a request to start a new parcel-delivery
// transaction. The country is taken from the requesting user and decides
// which sites are considered for allocation.
//
// Example:
//
//	rentID := kernel.NewUUID()
//	cmd, err := NewCreateRentCommand(rentID, 7, kernel.SizeMedium,
//	    "s@x.com", "r@x.com", kernel.France)
//	if err != nil {
//	    return fmt.Errorf("invalid rent data: %w", err)
//	}
//
//	handler := NewCreateRentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create rent: %w", err)
//	}
type CreateRentCommand struct { //nolint:recvcheck //using for validation
	rentID        kernel.UUID
	weight        float64
	size          kernel.Size
	senderEmail   string
	receiverEmail string
	country       kernel.Country

	guard guard.ConstructorGuard
}

// NewCreateRentCommand creates a command to start a new rent. Weight, size
// and email validation is delegated to the Rent aggregate; the command guards
// the identifier and the requesting user's country.
func NewCreateRentCommand(
	rentID kernel.UUID,
	weight float64,
	size kernel.Size,
	senderEmail, receiverEmail string,
	country kernel.Country,
) (CreateRentCommand, error) {
	cmd := CreateRentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rentID.Validate(),
		country.Validate(),
	); err != nil {
		return CreateRentCommand{}, err
	}

	cmd.rentID = rentID
	cmd.weight = weight
	cmd.size = size
	cmd.senderEmail = senderEmail
	cmd.receiverEmail = receiverEmail
	cmd.country = country
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRentCommand) Validate() error {
	return c.guard.Validate(ErrCreateRentCommandIsNotConstructed)
}

// RentID returns the unique identifier for the new rent.
func (c CreateRentCommand) RentID() kernel.UUID {
	return c.rentID
}

// Weight returns the parcel weight.
func (c CreateRentCommand) Weight() float64 {
	return c.weight
}

// Size returns the parcel size.
func (c CreateRentCommand) Size() kernel.Size {
	return c.size
}

// SenderEmail returns the email of the user creating the rent.
func (c CreateRentCommand) SenderEmail() string {
	return c.senderEmail
}

// ReceiverEmail returns the email the pickup code will be sent to.
func (c CreateRentCommand) ReceiverEmail() string {
	return c.receiverEmail
}

// Country returns the requesting user's country.
func (c CreateRentCommand) Country() kernel.Country {
	return c.country
}
