package ports

import (
	"context"

	"cafedelivery/internal/core/domain/model/cart"
)

// CartReader is the read side of cart persistence. It is split out so the
// cart watcher can re-read snapshots without holding a full repository.
type CartReader interface {
	// Get retrieves the cart for the given owner, or an ObjectNotFoundError
	// if the owner has no cart yet.
	Get(ctx context.Context, ownerID string) (*cart.Cart, error)
}

// CartRepository defines the persistence contract for cart aggregates.
// A cart is keyed by its owner; each owner has at most one.
type CartRepository interface {
	CartReader

	// Save upserts the cart. It persists both fresh carts and mutations to
	// existing ones.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Delete removes the owner's cart. Deleting an absent cart is not an
	// error; checkout relies on this when clearing an already empty cart.
	Delete(ctx context.Context, ownerID string) error
}
