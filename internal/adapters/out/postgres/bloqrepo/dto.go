// Package bloqrepo provides data transfer objects and mapping functions for
// bloq persistence. It implements the repository pattern for the bloq domain
// aggregate, handling the conversion between domain entities and database rows.
package bloqrepo

import (
	"parcellocker/internal/core/domain/model/bloq"
	"parcellocker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BloqDTO represents the database structure for persisting bloq aggregates.
// Country is indexed because allocation scans sites by country.
type BloqDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title   string
	Address string
	Country int `gorm:"index"`
}

// TableName specifies the database table name for bloq entities.
func (BloqDTO) TableName() string {
	return "bloqs"
}

func fromDomain(aggregate *bloq.Bloq) BloqDTO {
	return BloqDTO{
		ID:      aggregate.ID().Bytes(),
		Title:   aggregate.Title(),
		Address: aggregate.Address(),
		Country: int(aggregate.Country()),
	}
}

func toDomain(dto BloqDTO) (*bloq.Bloq, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return bloq.RestoreBloq(id, dto.Title, dto.Address, kernel.Country(dto.Country))
}
