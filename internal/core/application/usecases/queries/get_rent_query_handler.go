package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/rent"
	"parcellocker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRentQueryHandler retrieves one rent from the database, enforcing the
// viewing rule: sender or an operations user.
type GetRentQueryHandler struct {
	db *gorm.DB
}

// NewGetRentQueryHandler creates a handler for single-rent queries.
func NewGetRentQueryHandler(db *gorm.DB) GetRentQueryHandler {
	return GetRentQueryHandler{db: db}
}

// Handle executes the query. A missing rent surfaces as not-found; a rent the
// principal has no business seeing surfaces as a forbidden error.
func (h GetRentQueryHandler) Handle(
	ctx context.Context,
	query GetRentQuery,
) (RentResponse, error) {
	if err := query.Validate(); err != nil {
		return RentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			locker_id,
			weight,
			size,
			status,
			sender_email,
			receiver_email
		FROM rents
		WHERE id = ?
	`, query.RentID().Bytes()).Row()

	resp, err := scanRentRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RentResponse{}, errs.NewObjectNotFoundError("rent", query.RentID().String())
		}
		return RentResponse{}, err
	}

	if !canViewRent(query.Principal(), resp) {
		return RentResponse{}, rent.ErrNotAuthorizedToView
	}

	return resp, nil
}

// canViewRent implements the read-side visibility rule. Only the sender and
// operations users see a rent; the receiver learns about it through the
// pickup-code mail.
func canViewRent(principal account.Principal, resp RentResponse) bool {
	if principal.Role == account.OperationsUser {
		return true
	}
	return principal.Email == resp.SenderEmail
}

// scanRentRow maps one rents row into the read model, shared by every rent
// query.
func scanRentRow(row interface{ Scan(dest ...any) error }) (RentResponse, error) {
	var resp RentResponse
	var id uuid.UUID
	var lockerID *uuid.UUID
	var size, status int

	err := row.Scan(
		&id,
		&lockerID,
		&resp.Weight,
		&size,
		&status,
		&resp.SenderEmail,
		&resp.ReceiverEmail,
	)
	if err != nil {
		return RentResponse{}, err
	}

	rentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RentResponse{}, err
	}
	resp.ID = rentID

	if lockerID != nil {
		lID, lockerErr := kernel.UUIDFromBytes((*lockerID)[:])
		if lockerErr != nil {
			return RentResponse{}, lockerErr
		}
		resp.LockerID = &lID
	}

	resp.Size = kernel.Size(size)
	resp.Status = rent.Status(status)

	return resp, nil
}
