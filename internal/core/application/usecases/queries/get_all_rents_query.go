package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrGetAllRentsQueryIsNotConstructed = errors.New(
		"GetAllRentsQuery must be created via NewGetAllRentsQuery constructor",
	)
)

// GetAllRentsQuery retrieves the rents visible to the principal: operations
// users see everything, regular users see the rents they send or receive.
type GetAllRentsQuery struct {
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetAllRentsQuery creates a rent listing query for the given principal.
func NewGetAllRentsQuery(principal account.Principal) GetAllRentsQuery {
	return GetAllRentsQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRentsQueryIsNotConstructed)
}

// Principal returns the authenticated actor requesting the listing.
func (q GetAllRentsQuery) Principal() account.Principal {
	return q.principal
}
