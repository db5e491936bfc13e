package commands

import (
	"context"

	"parcellocker/internal/core/domain/model/bloq"
)

// CreateBloqCommandHandler handles the business logic for site creation.
//
// Example:
//
//	handler := NewCreateBloqCommandHandler(uowFactory)
//	cmd, _ := NewCreateBloqCommand(kernel.NewUUID(), "Riod", "Av. Paulista 1000", kernel.Portugal)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("bloq creation failed: %w", err)
//	}
type CreateBloqCommandHandler struct {
	uowFactory BloqUoWFactory
}

// NewCreateBloqCommandHandler creates a handler for site creation operations.
// Requires a BloqUoWFactory for transactional persistence.
func NewCreateBloqCommandHandler(uowFactory BloqUoWFactory) CreateBloqCommandHandler {
	return CreateBloqCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bloq creation command.
// Constructs the aggregate, which validates title, address and country, and
// persists it within a transaction.
func (h *CreateBloqCommandHandler) Handle(ctx context.Context, cmd CreateBloqCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := bloq.NewBloq(cmd.BloqID(), cmd.Title(), cmd.Address(), cmd.Country())
	if err != nil {
		return err
	}

	if err = uow.BloqRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
