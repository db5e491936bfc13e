package commands

import (
	"context"

	"parcellocker/internal/core/ports"
)

// PickupRentCommandHandler processes the pickup transition: with a matching
// code the rent becomes DELIVERED, the locker returns to the available pool,
// and the sender is notified.
//
// Like dropoff, the state change commits before the notification is sent.
type PickupRentCommandHandler struct {
	uowFactory RentUoWFactory
	notifier   ports.Notifier
}

// NewPickupRentCommandHandler creates a handler for pickup operations.
func NewPickupRentCommandHandler(uowFactory RentUoWFactory, notifier ports.Notifier) PickupRentCommandHandler {
	return PickupRentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the pickup command.
// Precondition order: locker binding, WAITING_PICKUP status,
// receiver-or-operations authorization, exact code match. Effects: rent
// DELIVERED, locker released (unoccupied and OPEN), sender notified after
// commit.
func (h *PickupRentCommandHandler) Handle(ctx context.Context, cmd PickupRentCommand) error {
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

	if err = aggregate.PickupBy(cmd.Principal(), cmd.Code()); err != nil {
		return err
	}

	lockerRepo := uow.LockerRepository()
	boundLocker, err := lockerRepo.Get(ctx, *aggregate.LockerID())
	if err != nil {
		return err
	}
	boundLocker.Release()

	if err = rentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = lockerRepo.Update(ctx, boundLocker); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The transition is committed; a notification failure must not undo it.
	return h.notifier.NotifyDelivered(ctx, aggregate)
}
