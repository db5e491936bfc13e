// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrGetAllBloqsQueryIsNotConstructed = errors.New(
		"GetAllBloqsQuery must be created via NewGetAllBloqsQuery constructor",
	)
)

// GetAllBloqsQuery retrieves every locker site in the system.
//
// Example:
//
//	query := NewGetAllBloqsQuery()
//	handler := NewGetAllBloqsQueryHandler(db)
//
//	bloqs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve bloqs: %w", err)
//	}
type GetAllBloqsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllBloqsQuery creates a parameterless query fetching the complete
// site list.
func NewGetAllBloqsQuery() GetAllBloqsQuery {
	return GetAllBloqsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllBloqsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllBloqsQueryIsNotConstructed)
}

// BloqResponse represents site information in the read model.
type BloqResponse struct {
	ID      kernel.UUID
	Title   string
	Address string
	Country kernel.Country
}
