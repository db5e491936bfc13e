package queries

import (
	"context"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllLockersQueryHandler retrieves all compartment information from the
// database.
type GetAllLockersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllLockersQueryHandler creates a handler for locker listing queries.
func NewGetAllLockersQueryHandler(db *gorm.DB) GetAllLockersQueryHandler {
	return GetAllLockersQueryHandler{db: db}
}

// Handle executes the query to retrieve all lockers, sorted by id.
func (h GetAllLockersQueryHandler) Handle(
	ctx context.Context,
	query GetAllLockersQuery,
) ([]LockerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			bloq_id,
			size,
			status,
			is_occupied
		FROM lockers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lockers := make([]LockerResponse, 0)
	for rows.Next() {
		resp, scanErr := scanLockerRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		lockers = append(lockers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lockers, nil
}

// scanLockerRow maps one lockers row into the read model, shared by every
// locker query.
func scanLockerRow(row interface{ Scan(dest ...any) error }) (LockerResponse, error) {
	var resp LockerResponse
	var id, bloqID uuid.UUID
	var size, status int

	if err := row.Scan(&id, &bloqID, &size, &status, &resp.IsOccupied); err != nil {
		return LockerResponse{}, err
	}

	lockerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LockerResponse{}, err
	}
	resp.ID = lockerID

	owner, err := kernel.UUIDFromBytes(bloqID[:])
	if err != nil {
		return LockerResponse{}, err
	}
	resp.BloqID = owner

	resp.Size = kernel.Size(size)
	resp.Status = locker.Status(status)

	return resp, nil
}
