package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetBloqQueryHandler retrieves one site from the database.
type GetBloqQueryHandler struct {
	db *gorm.DB
}

// NewGetBloqQueryHandler creates a handler for single-site queries.
func NewGetBloqQueryHandler(db *gorm.DB) GetBloqQueryHandler {
	return GetBloqQueryHandler{db: db}
}

// Handle executes the query. A missing site surfaces as a not-found error.
func (h GetBloqQueryHandler) Handle(
	ctx context.Context,
	query GetBloqQuery,
) (BloqResponse, error) {
	if err := query.Validate(); err != nil {
		return BloqResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			address,
			country
		FROM bloqs
		WHERE id = ?
	`, query.BloqID().Bytes()).Row()

	bloq, err := scanBloqRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BloqResponse{}, errs.NewObjectNotFoundError("bloq", query.BloqID().String())
		}
		return BloqResponse{}, err
	}

	return bloq, nil
}
