package queries

import (
	"errors"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/rent"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrGetRentQueryIsNotConstructed = errors.New(
		"GetRentQuery must be created via NewGetRentQuery constructor",
	)
)

// GetRentQuery retrieves a single rent on behalf of an authenticated
// principal. Only the sender and operations users may see a rent; the
// one-time pickup code is never part of the read model.
type GetRentQuery struct {
	rentID    kernel.UUID
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetRentQuery creates a query for one rent.
func NewGetRentQuery(rentID kernel.UUID, principal account.Principal) (GetRentQuery, error) {
	if err := rentID.Validate(); err != nil {
		return GetRentQuery{}, err
	}

	return GetRentQuery{
		rentID:    rentID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRentQuery) Validate() error {
	return q.guard.Validate(ErrGetRentQueryIsNotConstructed)
}

// RentID returns the identifier of the requested rent.
func (q GetRentQuery) RentID() kernel.UUID {
	return q.rentID
}

// Principal returns the authenticated actor requesting the rent.
func (q GetRentQuery) Principal() account.Principal {
	return q.principal
}

// RentResponse represents rent information in the read model. The pickup code
// is deliberately absent: it travels to the receiver by notification only.
type RentResponse struct {
	ID            kernel.UUID
	LockerID      *kernel.UUID
	Weight        float64
	Size          kernel.Size
	Status        rent.Status
	SenderEmail   string
	ReceiverEmail string
}
