// Package ports defines repository and outbound interfaces for the parcel
// locker domain. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/bloq"
	"parcellocker/internal/core/domain/model/kernel"
)

// BloqRepository defines the persistence contract for bloq aggregates.
// Provides methods for storing, retrieving, and querying locker sites.
type BloqRepository interface {
	// Add persists a new bloq aggregate to storage.
	// The bloq must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *bloq.Bloq) error

	// Update persists changes to an existing bloq aggregate.
	// The bloq must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *bloq.Bloq) error

	// Delete removes a bloq aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a bloq aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bloq.Bloq, error)

	// GetAllByCountry retrieves every bloq serving the given country, in
	// storage order. Allocation picks the first one; an empty result means
	// the country has no sites yet.
	GetAllByCountry(ctx context.Context, country kernel.Country) ([]*bloq.Bloq, error)
}
