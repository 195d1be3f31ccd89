package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cafedelivery/internal/core/domain/model/order"
)

// GetOrdersQueryHandler retrieves filtered order lists from the database.
// Builds one SQL statement from the query's filters; the item name filter
// probes the jsonb items document with an EXISTS subquery.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the order list query with the configured filters.
// Results are sorted newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT
			id,
			owner_id,
			items,
			subtotal_cents,
			total_cents,
			street,
			city,
			reference,
			payment_method,
			status,
			created_at,
			estimated_delivery_at,
			notes,
			courier_id,
			courier_name,
			courier_phone,
			courier_assigned_at
		FROM orders
		WHERE 1=1
	`)
	args := make([]any, 0, 6)

	if ownerID := query.OwnerID(); ownerID != "" {
		sb.WriteString(" AND owner_id = ?")
		args = append(args, ownerID)
	}
	if status, ok := query.Status(); ok {
		sb.WriteString(" AND status = ?")
		args = append(args, int(status))
	}
	if from, to := query.CreatedBetween(); !from.IsZero() || !to.IsZero() {
		if !from.IsZero() {
			sb.WriteString(" AND created_at >= ?")
			args = append(args, from)
		}
		if !to.IsZero() {
			sb.WriteString(" AND created_at < ?")
			args = append(args, to)
		}
	}
	if fragment := query.ItemName(); fragment != "" {
		sb.WriteString(` AND EXISTS (
			SELECT 1 FROM jsonb_array_elements(items) AS line
			WHERE line->>'name' ILIKE ? ESCAPE '\'
		)`)
		args = append(args, "%"+escapeLikePattern(fragment)+"%")
	}

	sb.WriteString(" ORDER BY created_at DESC")

	rows, err := h.db.WithContext(ctx).Raw(sb.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		response, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// escapeLikePattern neutralizes LIKE metacharacters in a user-supplied
// fragment so it matches as a literal substring.
func escapeLikePattern(fragment string) string {
	return likeEscaper.Replace(fragment)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanOrderRow(rows *sql.Rows) (GetOrdersQueryResponse, error) {
	var response GetOrdersQueryResponse
	var id uuid.UUID
	var itemsRaw []byte
	var status int
	var courierID *uuid.UUID
	var reference, notes, courierName, courierPhone sql.NullString
	var courierAssignedAt sql.NullTime

	err := rows.Scan(
		&id,
		&response.OwnerID,
		&itemsRaw,
		&response.SubtotalCents,
		&response.TotalCents,
		&response.Street,
		&response.City,
		&reference,
		&response.PaymentMethod,
		&status,
		&response.CreatedAt,
		&response.EstimatedDeliveryAt,
		&notes,
		&courierID,
		&courierName,
		&courierPhone,
		&courierAssignedAt,
	)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	response.ID = id.String()
	response.Status = order.Status(status).String()
	response.Reference = reference.String
	response.Notes = notes.String
	response.CourierName = courierName.String
	response.CourierPhone = courierPhone.String
	if courierID != nil {
		response.CourierID = courierID.String()
	}
	if courierAssignedAt.Valid {
		assignedAt := courierAssignedAt.Time
		response.CourierAssignedAt = &assignedAt
	}

	response.Items = make([]CartItemResponse, 0)
	if err = json.Unmarshal(itemsRaw, &response.Items); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return response, nil
}
