package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableCouriersQueryHandler retrieves on-shift couriers from the
// database, best rated first.
type GetAvailableCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableCouriersQueryHandler creates a handler for courier queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableCouriersQueryHandler(db *gorm.DB) GetAvailableCouriersQueryHandler {
	return GetAvailableCouriersQueryHandler{db: db}
}

// Handle executes the query for all available couriers.
// Results are sorted by rating, then by fewest completed deliveries, the
// same order the dispatcher prefers.
func (h GetAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCouriersQuery,
) ([]GetAvailableCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			photo_ref,
			rating,
			deliveries_completed
		FROM couriers
		WHERE available
		ORDER BY rating DESC, deliveries_completed ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]GetAvailableCouriersQueryResponse, 0)
	for rows.Next() {
		var response GetAvailableCouriersQueryResponse
		var id uuid.UUID
		var photoRef sql.NullString

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Phone,
			&photoRef,
			&response.Rating,
			&response.DeliveriesCompleted,
		)
		if err != nil {
			return nil, err
		}

		response.ID = id.String()
		response.PhotoRef = photoRef.String
		couriers = append(couriers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
