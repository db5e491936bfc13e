package queries

import (
	"context"

	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLockersByBloqQueryHandler retrieves the compartments of one site from
// the database.
type GetLockersByBloqQueryHandler struct {
	db *gorm.DB
}

// NewGetLockersByBloqQueryHandler creates a handler for per-site locker
// listing queries.
func NewGetLockersByBloqQueryHandler(db *gorm.DB) GetLockersByBloqQueryHandler {
	return GetLockersByBloqQueryHandler{db: db}
}

// Handle executes the query. The site existence check runs first so a missing
// site is distinguishable from a site without lockers.
func (h GetLockersByBloqQueryHandler) Handle(
	ctx context.Context,
	query GetLockersByBloqQuery,
) ([]LockerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var bloqCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(1) FROM bloqs WHERE id = ?
	`, query.BloqID().Bytes()).Scan(&bloqCount).Error
	if err != nil {
		return nil, err
	}
	if bloqCount == 0 {
		return nil, errs.NewObjectNotFoundError("bloq", query.BloqID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			bloq_id,
			size,
			status,
			is_occupied
		FROM lockers
		WHERE bloq_id = ?
		ORDER BY id
	`, query.BloqID().Bytes()).Rows()
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
