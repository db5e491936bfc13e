package commands

import (
	"context"
)

// DeleteLockerCommandHandler removes a locker within a transaction. The locker
// must exist; a missing one surfaces as the repository's not-found error.
type DeleteLockerCommandHandler struct {
	uowFactory LockerUoWFactory
}

// NewDeleteLockerCommandHandler creates a handler for locker deletion operations.
func NewDeleteLockerCommandHandler(uowFactory LockerUoWFactory) DeleteLockerCommandHandler {
	return DeleteLockerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the locker deletion command.
func (h *DeleteLockerCommandHandler) Handle(ctx context.Context, cmd DeleteLockerCommand) error {
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

	lockerRepo := uow.LockerRepository()
	if _, err := lockerRepo.Get(ctx, cmd.LockerID()); err != nil {
		return err
	}

	if err := lockerRepo.Delete(ctx, cmd.LockerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
