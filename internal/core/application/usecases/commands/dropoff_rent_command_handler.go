package commands

import (
	"context"

	"parcellocker/internal/core/domain/model/rent"
	"parcellocker/internal/core/ports"
)

// DropoffRentCommandHandler processes the dropoff transition: the rent moves
// to WAITING_PICKUP with a fresh one-time code, the bound locker becomes
// occupied, and the receiver is emailed the locker id and code.
//
// The state change and the notification are deliberately decoupled: rent and
// locker updates commit first, then the notification is sent. A failed email
// surfaces as an error but never rolls back the transition.
//
// Example:
//
//	handler := NewDropoffRentCommandHandler(uowFactory, notifier)
//	cmd, _ := NewDropoffRentCommand(rentID, principal)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // Forbidden/BadRequest preconditions, or a notification failure
//	    // after the transition already committed.
//	    return err
//	}
type DropoffRentCommandHandler struct {
	uowFactory RentUoWFactory
	notifier   ports.Notifier
}

// NewDropoffRentCommandHandler creates a handler for dropoff operations.
func NewDropoffRentCommandHandler(uowFactory RentUoWFactory, notifier ports.Notifier) DropoffRentCommandHandler {
	return DropoffRentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the dropoff command.
// Precondition order: sender-or-operations authorization, locker binding,
// WAITING_DROPOFF status. Effects: code generated and stored, locker
// occupied, receiver notified after commit.
func (h *DropoffRentCommandHandler) Handle(ctx context.Context, cmd DropoffRentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code, err := rent.GenerateCode()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.DropoffBy(cmd.Principal(), code); err != nil {
		return err
	}

	lockerRepo := uow.LockerRepository()
	boundLocker, err := lockerRepo.Get(ctx, *aggregate.LockerID())
	if err != nil {
		return err
	}
	boundLocker.Occupy()

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
	return h.notifier.NotifyDropoff(ctx, aggregate)
}
