package rentrepo

import (
	"context"
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/rent"
	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRentRepository implements RentRepository using GORM.
type GormRentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRentRepository creates a new GORM rent repository.
func NewGormRentRepository(db *gorm.DB, tracker aggregateTracker) *GormRentRepository {
	return &GormRentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rent to the database.
func (r *GormRentRepository) Add(ctx context.Context, aggregate *rent.Rent) error {
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

// Update saves an existing rent to the database.
func (r *GormRentRepository) Update(ctx context.Context, aggregate *rent.Rent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	// Select("*") forces zero-value columns through; Updates skips them by
	// default. The version predicate rejects writes over a row that changed
	// since this aggregate was read.
	result := r.db.WithContext(ctx).Model(&RentDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&RentDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("rent", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("rent")
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rent by ID.
func (r *GormRentRepository) Get(ctx context.Context, id kernel.UUID) (*rent.Rent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInCreatedStatus retrieves the rents still waiting for a locker.
func (r *GormRentRepository) GetAllInCreatedStatus(ctx context.Context) ([]*rent.Rent, error) {
	var dtos []RentDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "status = ?", int(rent.Created)).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByLocker retrieves every rent bound to the given locker.
func (r *GormRentRepository) GetAllByLocker(
	ctx context.Context,
	lockerID kernel.UUID,
) ([]*rent.Rent, error) {
	if err := lockerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RentDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "locker_id = ?", lockerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []RentDTO) ([]*rent.Rent, error) {
	rents := make([]*rent.Rent, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rents = append(rents, aggregate)
	}
	return rents, nil
}
