// Package rentrepo provides data transfer objects and mapping functions for
// rent persistence. It implements the repository pattern for the rent domain
// aggregate, including the nullable locker binding and the stored pickup code.
package rentrepo

import (
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/rent"

	"github.com/google/uuid"
)

// RentDTO represents the database structure for persisting rent aggregates.
// LockerID is null while the rent sits in CREATED; status is indexed for the
// re-allocation job's scan.
type RentDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LockerID      *uuid.UUID `gorm:"type:uuid;index"`
	Weight        float64
	Size          int
	Status        int `gorm:"index"`
	SenderEmail   string
	ReceiverEmail string
	Code          string
	Version       int
}

// TableName specifies the database table name for rent entities.
func (RentDTO) TableName() string {
	return "rents"
}

func fromDomain(aggregate *rent.Rent) RentDTO {
	var lockerID *uuid.UUID
	if id := aggregate.LockerID(); id != nil {
		raw := id.Bytes()
		lockerID = &raw
	}

	return RentDTO{
		ID:            aggregate.ID().Bytes(),
		LockerID:      lockerID,
		Weight:        aggregate.Weight(),
		Size:          int(aggregate.Size()),
		Status:        int(aggregate.Status()),
		SenderEmail:   aggregate.SenderEmail(),
		ReceiverEmail: aggregate.ReceiverEmail(),
		Code:          aggregate.Code(),
		Version:       aggregate.Version(),
	}
}

func toDomain(dto RentDTO) (*rent.Rent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var lockerID *kernel.UUID
	if dto.LockerID != nil {
		lID, lockerErr := kernel.UUIDFromBytes((*dto.LockerID)[:])
		if lockerErr != nil {
			return nil, lockerErr
		}

		lockerID = &lID
	}

	return rent.RestoreRent(
		id,
		lockerID,
		dto.Weight,
		kernel.Size(dto.Size),
		rent.Status(dto.Status),
		dto.SenderEmail,
		dto.ReceiverEmail,
		dto.Code,
		dto.Version,
	)
}
