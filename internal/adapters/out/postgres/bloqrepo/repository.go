package bloqrepo

import (
	"context"
	"errors"

	"parcellocker/internal/core/domain/model/bloq"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBloqRepository implements BloqRepository using GORM.
type GormBloqRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBloqRepository creates a new GORM bloq repository.
func NewGormBloqRepository(db *gorm.DB, tracker aggregateTracker) *GormBloqRepository {
	return &GormBloqRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bloq to the database.
func (r *GormBloqRepository) Add(ctx context.Context, aggregate *bloq.Bloq) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bloq to the database.
func (r *GormBloqRepository) Update(ctx context.Context, aggregate *bloq.Bloq) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") forces zero-value columns through; Updates skips them by default.
	result := r.db.WithContext(ctx).Model(&BloqDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bloq", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a bloq from the database.
func (r *GormBloqRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BloqDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bloq", id.String())
	}

	return nil
}

// Get retrieves a bloq by ID.
func (r *GormBloqRepository) Get(ctx context.Context, id kernel.UUID) (*bloq.Bloq, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BloqDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bloq", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCountry retrieves every bloq serving the given country, in insertion
// order. Allocation takes the first one.
func (r *GormBloqRepository) GetAllByCountry(
	ctx context.Context,
	country kernel.Country,
) ([]*bloq.Bloq, error) {
	var dtos []BloqDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "country = ?", int(country)).Error
	if err != nil {
		return nil, err
	}

	bloqs := make([]*bloq.Bloq, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bloqs = append(bloqs, b)
	}

	return bloqs, nil
}
