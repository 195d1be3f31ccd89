package ports

import (
	"context"

	"cafedelivery/internal/core/domain/model/cart"
)

// CartUpdate is one event on a cart watch stream. Exactly one of Cart and
// Err is set; an Err event is the last one before the stream closes.
type CartUpdate struct {
	Cart *cart.Cart
	Err  error
}

// CartWatcher streams cart snapshots to interested clients. A watch emits
// the current snapshot immediately, then a fresh snapshot after every
// mutation of the owner's cart, from whatever process performed it.
type CartWatcher interface {
	// Watch subscribes to the owner's cart. The returned channel is closed
	// when ctx is cancelled or after an Err update; the caller releases the
	// subscription by cancelling ctx.
	Watch(ctx context.Context, ownerID string) (<-chan CartUpdate, error)
}

// CartChangePublisher signals that an owner's cart changed. Commands call
// it after a successful mutation; watchers react by re-reading the cart.
// Publishing is best effort and must not fail the originating command, so
// implementations log delivery problems instead of returning them.
type CartChangePublisher interface {
	CartChanged(ctx context.Context, ownerID string)
}
