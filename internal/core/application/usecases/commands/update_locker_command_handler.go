package commands

import (
	"context"

	"parcellocker/internal/core/domain/model/locker"
)

// UpdateLockerCommandHandler applies partial operator updates to a locker
// within a transaction.
type UpdateLockerCommandHandler struct {
	uowFactory LockerUoWFactory
}

// NewUpdateLockerCommandHandler creates a handler for locker update operations.
func NewUpdateLockerCommandHandler(uowFactory LockerUoWFactory) UpdateLockerCommandHandler {
	return UpdateLockerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the locker update command.
func (h *UpdateLockerCommandHandler) Handle(ctx context.Context, cmd UpdateLockerCommand) error {
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
	aggregate, err := lockerRepo.Get(ctx, cmd.LockerID())
	if err != nil {
		return err
	}

	if cmd.Status() != nil {
		switch *cmd.Status() {
		case locker.StatusOpen:
			aggregate.Open()
		case locker.StatusClosed:
			aggregate.Close()
		case locker.StatusUnknown:
			// Rejected by the command constructor.
		}
	}

	if cmd.IsOccupied() != nil {
		aggregate.SetOccupied(*cmd.IsOccupied())
	}

	if err = lockerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
