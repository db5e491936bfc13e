package queries

import (
	"context"

	"parcellocker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllBloqsQueryHandler retrieves all site information from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetAllBloqsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllBloqsQueryHandler creates a handler for site listing queries.
func NewGetAllBloqsQueryHandler(db *gorm.DB) GetAllBloqsQueryHandler {
	return GetAllBloqsQueryHandler{db: db}
}

// Handle executes the query to retrieve all bloqs, sorted by title.
func (h GetAllBloqsQueryHandler) Handle(
	ctx context.Context,
	query GetAllBloqsQuery,
) ([]BloqResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bloqs := make([]BloqResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			address,
			country
		FROM bloqs
		ORDER BY title
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		bloq, scanErr := scanBloqRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		bloqs = append(bloqs, bloq)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bloqs, nil
}

// scanBloqRow maps one bloqs row into the read model, shared by the listing
// and single-site queries.
func scanBloqRow(row interface{ Scan(dest ...any) error }) (BloqResponse, error) {
	var bloq BloqResponse
	var id uuid.UUID
	var country int

	if err := row.Scan(&id, &bloq.Title, &bloq.Address, &country); err != nil {
		return BloqResponse{}, err
	}

	bloqID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return BloqResponse{}, err
	}
	bloq.ID = bloqID
	bloq.Country = kernel.Country(country)

	return bloq, nil
}
