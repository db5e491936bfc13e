package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrGetBloqQueryIsNotConstructed = errors.New(
		"GetBloqQuery must be created via NewGetBloqQuery constructor",
	)
)

// GetBloqQuery retrieves a single site by identifier.
type GetBloqQuery struct {
	bloqID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBloqQuery creates a query for one site.
func NewGetBloqQuery(bloqID kernel.UUID) (GetBloqQuery, error) {
	if err := bloqID.Validate(); err != nil {
		return GetBloqQuery{}, err
	}

	return GetBloqQuery{
		bloqID: bloqID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBloqQuery) Validate() error {
	return q.guard.Validate(ErrGetBloqQueryIsNotConstructed)
}

// BloqID returns the identifier of the requested site.
func (q GetBloqQuery) BloqID() kernel.UUID {
	return q.bloqID
}
