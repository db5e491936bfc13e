// Package lockerrepo provides data transfer objects and mapping functions for
// locker persistence. It implements the repository pattern for the locker
// domain aggregate.
package lockerrepo

import (
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"

	"github.com/google/uuid"
)

// LockerDTO represents the database structure for persisting locker
// aggregates. The bloq_id index backs the per-site listings; the composite
// availability columns are scanned together during allocation.
type LockerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BloqID     uuid.UUID `gorm:"type:uuid;index"`
	Size       int
	Status     int
	IsOccupied bool
	Version    int
}

// TableName specifies the database table name for locker entities.
func (LockerDTO) TableName() string {
	return "lockers"
}

func fromDomain(aggregate *locker.Locker) LockerDTO {
	return LockerDTO{
		ID:         aggregate.ID().Bytes(),
		BloqID:     aggregate.BloqID().Bytes(),
		Size:       int(aggregate.Size()),
		Status:     int(aggregate.Status()),
		IsOccupied: aggregate.IsOccupied(),
		Version:    aggregate.Version(),
	}
}

func toDomain(dto LockerDTO) (*locker.Locker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bloqID, err := kernel.UUIDFromBytes(dto.BloqID[:])
	if err != nil {
		return nil, err
	}

	return locker.RestoreLocker(
		id, bloqID, kernel.Size(dto.Size), locker.Status(dto.Status), dto.IsOccupied, dto.Version)
}
