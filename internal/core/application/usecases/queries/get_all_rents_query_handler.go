package queries

import (
	"context"

	"parcellocker/internal/core/domain/model/account"

	"gorm.io/gorm"
)

// GetAllRentsQueryHandler retrieves rent listings from the database, scoped
// to what the principal may see.
type GetAllRentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRentsQueryHandler creates a handler for rent listing queries.
func NewGetAllRentsQueryHandler(db *gorm.DB) GetAllRentsQueryHandler {
	return GetAllRentsQueryHandler{db: db}
}

// Handle executes the query. Operations users get the full table; regular
// users get the rents where they are sender or receiver.
func (h GetAllRentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllRentsQuery,
) ([]RentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseSelect = `
		SELECT
			id,
			locker_id,
			weight,
			size,
			status,
			sender_email,
			receiver_email
		FROM rents
	`

	tx := h.db.WithContext(ctx)
	principal := query.Principal()

	var rowsQuery *gorm.DB
	if principal.Role == account.OperationsUser {
		rowsQuery = tx.Raw(baseSelect + " ORDER BY id")
	} else {
		rowsQuery = tx.Raw(
			baseSelect+" WHERE sender_email = ? OR receiver_email = ? ORDER BY id",
			principal.Email, principal.Email,
		)
	}

	rows, err := rowsQuery.Rows()
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
