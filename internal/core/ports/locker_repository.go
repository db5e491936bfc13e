package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
)

// LockerRepository defines the persistence contract for locker aggregates.
// Provides methods for storing, retrieving, and querying compartments with
// their status and occupancy.
type LockerRepository interface {
	// Add persists a new locker aggregate to storage.
	// The locker must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *locker.Locker) error

	// Update persists changes to an existing locker aggregate.
	// The locker must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *locker.Locker) error

	// Delete removes a locker aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a locker aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error)

	// GetAllByBloq retrieves every locker belonging to the given bloq, in
	// storage order.
	GetAllByBloq(ctx context.Context, bloqID kernel.UUID) ([]*locker.Locker, error)

	// GetAllAvailable retrieves the lockers of the given bloq and size that
	// can take a new rent: status OPEN and not occupied, in storage order.
	// Allocation picks the first one.
	GetAllAvailable(ctx context.Context, bloqID kernel.UUID, size kernel.Size) ([]*locker.Locker, error)
}
