package commands

import (
	"context"
)

// UpdateRentCommandHandler applies partial updates to a rent within a
// transaction. Rebinding the locker requires the target to exist, be OPEN and
// unoccupied; the newly bound locker is reserved the same way allocation
// reserves it.
type UpdateRentCommandHandler struct {
	uowFactory RentUoWFactory
}

// NewUpdateRentCommandHandler creates a handler for rent update operations.
func NewUpdateRentCommandHandler(uowFactory RentUoWFactory) UpdateRentCommandHandler {
	return UpdateRentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rent update command.
// Enforces the sender-or-operations rule, validates any locker rebinding
// preconditions and persists the merged rent.
func (h *UpdateRentCommandHandler) Handle(ctx context.Context, cmd UpdateRentCommand) error {
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

	rentRepo := uow.RentRepository()
	aggregate, err := rentRepo.Get(ctx, cmd.RentID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureViewableBy(cmd.Principal()); err != nil {
		return err
	}

	if cmd.LockerID() != nil {
		lockerRepo := uow.LockerRepository()
		target, lockerErr := lockerRepo.Get(ctx, *cmd.LockerID())
		if lockerErr != nil {
			return lockerErr
		}

		if err = target.Reserve(); err != nil {
			return err
		}

		if err = aggregate.MoveToLocker(target.ID()); err != nil {
			return err
		}

		if err = lockerRepo.Update(ctx, target); err != nil {
			return err
		}
	}

	if cmd.Weight() != nil {
		if err = aggregate.ChangeWeight(*cmd.Weight()); err != nil {
			return err
		}
	}

	if cmd.Size() != nil {
		if err = aggregate.ChangeSize(*cmd.Size()); err != nil {
			return err
		}
	}

	if err = rentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
