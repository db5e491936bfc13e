package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/rent"
)

// RentRepository defines the persistence contract for rent aggregates.
// Provides methods for storing, retrieving, and querying rents across the
// lifecycle, including the stored one-time pickup code.
type RentRepository interface {
	// Add persists a new rent aggregate to storage.
	// The rent must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *rent.Rent) error

	// Update persists changes to an existing rent aggregate.
	// The rent must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *rent.Rent) error

	// Get retrieves a rent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rent.Rent, error)

	// GetAllInCreatedStatus retrieves the rents still waiting for a locker.
	// Used by the re-allocation job to retry allocation when lockers free up.
	GetAllInCreatedStatus(ctx context.Context) ([]*rent.Rent, error)

	// GetAllByLocker retrieves every rent bound to the given locker,
	// past and present.
	GetAllByLocker(ctx context.Context, lockerID kernel.UUID) ([]*rent.Rent, error)
}
