package commands

import (
	"context"
)

// DeleteBloqCommandHandler removes a site within a transaction. The site must
// exist; a missing one surfaces as the repository's not-found error.
type DeleteBloqCommandHandler struct {
	uowFactory BloqUoWFactory
}

// NewDeleteBloqCommandHandler creates a handler for site deletion operations.
func NewDeleteBloqCommandHandler(uowFactory BloqUoWFactory) DeleteBloqCommandHandler {
	return DeleteBloqCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bloq deletion command.
func (h *DeleteBloqCommandHandler) Handle(ctx context.Context, cmd DeleteBloqCommand) error {
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
	if _, err := bloqRepo.Get(ctx, cmd.BloqID()); err != nil {
		return err
	}

	if err := bloqRepo.Delete(ctx, cmd.BloqID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
