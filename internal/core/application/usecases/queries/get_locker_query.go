package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrGetLockerQueryIsNotConstructed = errors.New(
		"GetLockerQuery must be created via NewGetLockerQuery constructor",
	)
)

// GetLockerQuery retrieves a single compartment by identifier.
type GetLockerQuery struct {
	lockerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLockerQuery creates a query for one compartment.
func NewGetLockerQuery(lockerID kernel.UUID) (GetLockerQuery, error) {
	if err := lockerID.Validate(); err != nil {
		return GetLockerQuery{}, err
	}

	return GetLockerQuery{
		lockerID: lockerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLockerQuery) Validate() error {
	return q.guard.Validate(ErrGetLockerQueryIsNotConstructed)
}

// LockerID returns the identifier of the requested compartment.
func (q GetLockerQuery) LockerID() kernel.UUID {
	return q.lockerID
}
