package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrGetRentsByLockerQueryIsNotConstructed = errors.New(
		"GetRentsByLockerQuery must be created via NewGetRentsByLockerQuery constructor",
	)
)

// GetRentsByLockerQuery retrieves every rent bound to one compartment, past
// and present. This is an operations view; the HTTP layer restricts it to
// operations users.
type GetRentsByLockerQuery struct {
	lockerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRentsByLockerQuery creates a per-locker rent history query.
func NewGetRentsByLockerQuery(lockerID kernel.UUID) (GetRentsByLockerQuery, error) {
	if err := lockerID.Validate(); err != nil {
		return GetRentsByLockerQuery{}, err
	}

	return GetRentsByLockerQuery{
		lockerID: lockerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRentsByLockerQuery) Validate() error {
	return q.guard.Validate(ErrGetRentsByLockerQueryIsNotConstructed)
}

// LockerID returns the identifier of the compartment to inspect.
func (q GetRentsByLockerQuery) LockerID() kernel.UUID {
	return q.lockerID
}
