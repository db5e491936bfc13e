package commands

import (
	"context"
	"errors"

	"parcellocker/internal/pkg/errs"
)

// ReallocatePendingRentsCommandHandler sweeps the CREATED backlog and retries
// allocation for each rent. Rents that still cannot be placed stay in the
// backlog for the next sweep; successfully placed ones move to
// WAITING_DROPOFF within the same transaction.
type ReallocatePendingRentsCommandHandler struct {
	uowFactory RentUoWFactory
}

// NewReallocatePendingRentsCommandHandler creates a handler for backlog sweeps.
func NewReallocatePendingRentsCommandHandler(
	uowFactory RentUoWFactory,
) ReallocatePendingRentsCommandHandler {
	return ReallocatePendingRentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep. Allocation misses and senders without an
// account skip the rent; any other failure aborts the sweep so nothing
// partial commits.
func (h *ReallocatePendingRentsCommandHandler) Handle(
	ctx context.Context,
	cmd ReallocatePendingRentsCommand,
) error {
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
	pending, err := rentRepo.GetAllInCreatedStatus(ctx)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return ErrNoPendingRents
	}

	for _, aggregate := range pending {
		sender, senderErr := uow.AccountRepository().GetByEmail(ctx, aggregate.SenderEmail())
		if senderErr != nil {
			if errors.Is(senderErr, errs.ErrObjectNotFound) {
				continue
			}
			return senderErr
		}

		reserved, allocErr := allocateLocker(ctx, uow, aggregate, sender.Country())
		if allocErr != nil {
			if errors.Is(allocErr, errs.ErrObjectNotFound) {
				continue
			}
			return allocErr
		}

		if err = rentRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		if err = uow.LockerRepository().Update(ctx, reserved); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
