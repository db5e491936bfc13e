package lockerrepo

import (
	"context"
	"errors"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLockerRepository implements LockerRepository using GORM.
type GormLockerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLockerRepository creates a new GORM locker repository.
func NewGormLockerRepository(db *gorm.DB, tracker aggregateTracker) *GormLockerRepository {
	return &GormLockerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new locker to the database.
func (r *GormLockerRepository) Add(ctx context.Context, aggregate *locker.Locker) error {
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

// Update saves an existing locker to the database.
func (r *GormLockerRepository) Update(ctx context.Context, aggregate *locker.Locker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	// Select("*") forces zero-value columns through; releasing a locker writes
	// is_occupied=false, which Updates would otherwise skip. The version
	// predicate rejects writes over a row that changed since this aggregate
	// was read.
	result := r.db.WithContext(ctx).Model(&LockerDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&LockerDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("locker", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("locker")
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a locker from the database.
func (r *GormLockerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LockerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("locker", id.String())
	}

	return nil
}

// Get retrieves a locker by ID.
func (r *GormLockerRepository) Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LockerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByBloq retrieves every locker belonging to the given bloq.
func (r *GormLockerRepository) GetAllByBloq(
	ctx context.Context,
	bloqID kernel.UUID,
) ([]*locker.Locker, error) {
	if err := bloqID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LockerDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "bloq_id = ?", bloqID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailable retrieves the lockers of the given bloq and size that can
// take a new rent: status OPEN and not occupied. Allocation picks the first.
func (r *GormLockerRepository) GetAllAvailable(
	ctx context.Context,
	bloqID kernel.UUID,
	size kernel.Size,
) ([]*locker.Locker, error) {
	if err := bloqID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LockerDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos,
			"bloq_id = ? AND size = ? AND status = ? AND is_occupied = ?",
			bloqID.Bytes(), int(size), int(locker.StatusOpen), false,
		).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []LockerDTO) ([]*locker.Locker, error) {
	lockers := make([]*locker.Locker, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lockers = append(lockers, l)
	}
	return lockers, nil
}
