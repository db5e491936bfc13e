package commands

import (
	"context"
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/domain/model/rent"
	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/pkg/errs"
)

var (
	// ErrNoBloqFound is returned when no site serves the requesting user's
	// country. The rent is still persisted in CREATED status.
	ErrNoBloqFound = errs.NewNotFoundError("No bloqs found for this country")
	// ErrNoLockerAvailable is returned when the selected site has no free
	// locker of the parcel's size. The rent is still persisted in CREATED
	// status and can be retried through re-allocation.
	ErrNoLockerAvailable = errs.NewNotFoundError("No lockers available")
)

// CreateRentCommandHandler orchestrates rent creation and the immediate
// allocation attempt. The rent is persisted first; allocation then picks the
// first site serving the user's country and the first free locker of matching
// size in it, reserves the locker and binds it to the rent.
//
// When allocation fails because no site or no locker matches, the rent is
// committed in CREATED status and the not-found error is returned to the
// caller: the rent stays pending and the re-allocation job retries it later.
//
// Example:
//
//	handler := NewCreateRentCommandHandler(uowFactory)
//	cmd, _ := NewCreateRentCommand(rentID, 7, kernel.SizeMedium,
//	    "s@x.com", "r@x.com", kernel.France)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Rent created, waiting for a free locker")
//	case err != nil:
//	    log.Printf("Rent creation failed: %v", err)
//	default:
//	    log.Println("Rent created and locker reserved")
//	}
type CreateRentCommandHandler struct {
	uowFactory RentUoWFactory
}

// NewCreateRentCommandHandler creates a handler for rent creation operations.
// Requires a RentUoWFactory for coordinating rent and locker updates.
func NewCreateRentCommandHandler(uowFactory RentUoWFactory) CreateRentCommandHandler {
	return CreateRentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rent creation command.
// Persists the rent, attempts allocation and commits rent and locker changes
// in a single transaction. Allocation misses commit the bare rent and return
// ErrNoBloqFound or ErrNoLockerAvailable.
func (h *CreateRentCommandHandler) Handle(ctx context.Context, cmd CreateRentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := rent.NewRent(
		cmd.RentID(), cmd.Weight(), cmd.Size(), cmd.SenderEmail(), cmd.ReceiverEmail())
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
	if err = rentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	reserved, allocErr := allocateLocker(ctx, uow, aggregate, cmd.Country())
	if allocErr != nil {
		if errors.Is(allocErr, errs.ErrObjectNotFound) {
			// The rent stays CREATED and unassigned.
			if err = uow.Commit(ctx); err != nil {
				return err
			}
			return allocErr
		}
		return allocErr
	}

	if err = rentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.LockerRepository().Update(ctx, reserved); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// allocateLocker runs the placeholder allocation policy for a CREATED rent:
// first site serving the country, first free locker of matching size in it.
// The returned locker is reserved and bound to the rent in memory; the caller
// persists both aggregates.
func allocateLocker(
	ctx context.Context,
	uow RentUoW,
	aggregate *rent.Rent,
	country kernel.Country,
) (*locker.Locker, error) {
	bloqs, err := uow.BloqRepository().GetAllByCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	if len(bloqs) == 0 {
		return nil, ErrNoBloqFound
	}

	site := bloqs[0]
	lockers, err := uow.LockerRepository().GetAllAvailable(ctx, site.ID(), aggregate.Size())
	if err != nil {
		return nil, err
	}

	reserved, err := services.NewLockerAllocator().Allocate(aggregate, lockers)
	if errors.Is(err, services.ErrLockerNotFound) {
		return nil, ErrNoLockerAvailable
	}
	if err != nil {
		return nil, err
	}

	return reserved, nil
}
