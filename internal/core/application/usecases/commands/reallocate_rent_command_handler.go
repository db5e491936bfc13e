package commands

import (
	"context"
)

// ReallocateRentCommandHandler retries locker allocation for a pending rent.
// The sender's account resolves the country the allocation searches in, the
// same way rent creation does.
//
// Rents that already left CREATED status are rejected by the status machine;
// the caller decides whether that is an error (operator request) or a no-op
// signal (re-allocation job racing a concurrent allocation).
type ReallocateRentCommandHandler struct {
	uowFactory RentUoWFactory
}

// NewReallocateRentCommandHandler creates a handler for allocation retries.
func NewReallocateRentCommandHandler(uowFactory RentUoWFactory) ReallocateRentCommandHandler {
	return ReallocateRentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the re-allocation command.
// Loads the rent, resolves the sender's country and re-runs the allocation
// policy. On a miss the transaction is rolled back: nothing changed.
func (h *ReallocateRentCommandHandler) Handle(ctx context.Context, cmd ReallocateRentCommand) error {
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

	sender, err := uow.AccountRepository().GetByEmail(ctx, aggregate.SenderEmail())
	if err != nil {
		return err
	}

	reserved, err := allocateLocker(ctx, uow, aggregate, sender.Country())
	if err != nil {
		return err
	}

	if err = rentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.LockerRepository().Update(ctx, reserved); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
