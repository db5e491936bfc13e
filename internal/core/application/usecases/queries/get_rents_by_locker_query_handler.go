package queries

import (
	"context"

	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRentsByLockerQueryHandler retrieves the rent history of one compartment
// from the database.
type GetRentsByLockerQueryHandler struct {
	db *gorm.DB
}

// NewGetRentsByLockerQueryHandler creates a handler for per-locker rent
// history queries.
func NewGetRentsByLockerQueryHandler(db *gorm.DB) GetRentsByLockerQueryHandler {
	return GetRentsByLockerQueryHandler{db: db}
}

// Handle executes the query. The locker existence check runs first so a
// missing locker is distinguishable from a locker that never held a rent.
func (h GetRentsByLockerQueryHandler) Handle(
	ctx context.Context,
	query GetRentsByLockerQuery,
) ([]RentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var lockerCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(1) FROM lockers WHERE id = ?
	`, query.LockerID().Bytes()).Scan(&lockerCount).Error
	if err != nil {
		return nil, err
	}
	if lockerCount == 0 {
		return nil, errs.NewObjectNotFoundError("locker", query.LockerID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			locker_id,
			weight,
			size,
			status,
			sender_email,
			receiver_email
		FROM rents
		WHERE locker_id = ?
		ORDER BY id
	`, query.LockerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rents := make([]RentResponse, 0)
	for rows.Next() {
		resp, scanErr := scanRentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		rents = append(rents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rents, nil
}
