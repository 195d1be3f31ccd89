package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// GetCartQueryHandler reads cart snapshots straight from the database.
// Cart lines are stored as a jsonb document and decoded into the read model
// without reconstructing the aggregate.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart snapshot queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query for the owner's cart snapshot.
// An owner without a cart gets an empty snapshot, not an error.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		OwnerID: query.OwnerID(),
		Items:   make([]CartItemResponse, 0),
	}

	var itemsRaw []byte
	var subtotalCents, totalCents int64
	var updatedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			items,
			subtotal_cents,
			total_cents,
			updated_at
		FROM carts
		WHERE owner_id = ?
	`, query.OwnerID()).Row()

	err := row.Scan(&itemsRaw, &subtotalCents, &totalCents, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	if err = json.Unmarshal(itemsRaw, &response.Items); err != nil {
		return GetCartQueryResponse{}, err
	}

	response.SubtotalCents = subtotalCents
	response.TotalCents = totalCents
	response.UpdatedAt = updatedAt
	return response, nil
}
