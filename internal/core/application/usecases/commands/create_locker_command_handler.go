package commands

import (
	"context"

	"parcellocker/internal/core/domain/model/locker"
)

// CreateLockerCommandHandler handles the business logic for locker creation.
// The owning bloq must exist before a locker can be attached to it.
type CreateLockerCommandHandler struct {
	uowFactory LockerUoWFactory
}

// NewCreateLockerCommandHandler creates a handler for locker creation operations.
// Requires a LockerUoWFactory for transactional persistence.
func NewCreateLockerCommandHandler(uowFactory LockerUoWFactory) CreateLockerCommandHandler {
	return CreateLockerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the locker creation command.
// Verifies the owning bloq exists, constructs the aggregate and persists it
// within a transaction.
func (h *CreateLockerCommandHandler) Handle(ctx context.Context, cmd CreateLockerCommand) error {
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

	if _, err := uow.BloqRepository().Get(ctx, cmd.BloqID()); err != nil {
		return err
	}

	aggregate, err := locker.NewLocker(cmd.LockerID(), cmd.BloqID(), cmd.Size())
	if err != nil {
		return err
	}

	if err = uow.LockerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
