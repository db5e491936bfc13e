package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrGetLockersByBloqQueryIsNotConstructed = errors.New(
		"GetLockersByBloqQuery must be created via NewGetLockersByBloqQuery constructor",
	)
)

// GetLockersByBloqQuery retrieves every compartment of one site. The site
// must exist; listing a missing site is a not-found error rather than an
// empty result.
type GetLockersByBloqQuery struct {
	bloqID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLockersByBloqQuery creates a query for a site's compartments.
func NewGetLockersByBloqQuery(bloqID kernel.UUID) (GetLockersByBloqQuery, error) {
	if err := bloqID.Validate(); err != nil {
		return GetLockersByBloqQuery{}, err
	}

	return GetLockersByBloqQuery{
		bloqID: bloqID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLockersByBloqQuery) Validate() error {
	return q.guard.Validate(ErrGetLockersByBloqQueryIsNotConstructed)
}

// BloqID returns the identifier of the site to list.
func (q GetLockersByBloqQuery) BloqID() kernel.UUID {
	return q.bloqID
}
