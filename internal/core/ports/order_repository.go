package ports

import (
	"context"

	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its status and courier binding.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInAwaitingCourierStatus retrieves the oldest order waiting
	// for a courier. Used by the dispatch workflow.
	GetFirstInAwaitingCourierStatus(ctx context.Context) (*order.Order, error)
}
