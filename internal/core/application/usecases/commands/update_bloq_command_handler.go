package commands

import (
	"context"
)

// UpdateBloqCommandHandler applies partial updates to a site within a
// transaction. Missing sites surface as the repository's not-found error.
type UpdateBloqCommandHandler struct {
	uowFactory BloqUoWFactory
}

// NewUpdateBloqCommandHandler creates a handler for site update operations.
func NewUpdateBloqCommandHandler(uowFactory BloqUoWFactory) UpdateBloqCommandHandler {
	return UpdateBloqCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bloq update command.
// Loads the aggregate, applies the supplied fields through its mutators and
// persists the result.
func (h *UpdateBloqCommandHandler) Handle(ctx context.Context, cmd UpdateBloqCommand) error {
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

	bloqRepo := uow.BloqRepository()
	aggregate, err := bloqRepo.Get(ctx, cmd.BloqID())
	if err != nil {
		return err
	}

	if cmd.Title() != nil {
		if err = aggregate.Rename(*cmd.Title()); err != nil {
			return err
		}
	}

	if cmd.Address() != nil {
		if err = aggregate.Relocate(*cmd.Address()); err != nil {
			return err
		}
	}

	if err = bloqRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
