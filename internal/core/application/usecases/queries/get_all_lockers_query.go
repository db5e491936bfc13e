package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrGetAllLockersQueryIsNotConstructed = errors.New(
		"GetAllLockersQuery must be created via NewGetAllLockersQuery constructor",
	)
)

// GetAllLockersQuery retrieves every compartment in the system.
type GetAllLockersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllLockersQuery creates a parameterless query fetching the complete
// locker list.
func NewGetAllLockersQuery() GetAllLockersQuery {
	return GetAllLockersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllLockersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllLockersQueryIsNotConstructed)
}

// LockerResponse represents compartment information in the read model.
type LockerResponse struct {
	ID         kernel.UUID
	BloqID     kernel.UUID
	Size       kernel.Size
	Status     locker.Status
	IsOccupied bool
}
