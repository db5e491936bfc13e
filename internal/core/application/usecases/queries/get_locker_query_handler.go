package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLockerQueryHandler retrieves one compartment from the database.
type GetLockerQueryHandler struct {
	db *gorm.DB
}

// NewGetLockerQueryHandler creates a handler for single-locker queries.
func NewGetLockerQueryHandler(db *gorm.DB) GetLockerQueryHandler {
	return GetLockerQueryHandler{db: db}
}

// Handle executes the query. A missing locker surfaces as a not-found error.
func (h GetLockerQueryHandler) Handle(
	ctx context.Context,
	query GetLockerQuery,
) (LockerResponse, error) {
	if err := query.Validate(); err != nil {
		return LockerResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			bloq_id,
			size,
			status,
			is_occupied
		FROM lockers
		WHERE id = ?
	`, query.LockerID().Bytes()).Row()

	resp, err := scanLockerRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LockerResponse{}, errs.NewObjectNotFoundError("locker", query.LockerID().String())
		}
		return LockerResponse{}, err
	}

	return resp, nil
}
