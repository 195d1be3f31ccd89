package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/core/ports"
	"cafedelivery/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// CartWatcher subscribes to cart change signals and streams fresh cart
// snapshots. Implements ports.CartWatcher. The snapshot source of truth is
// the database; Redis only carries the "something changed" signal, so a
// watcher sees the state the mutating command committed.
type CartWatcher struct {
	client *redis.Client
	reader ports.CartReader
	logger *slog.Logger
}

// NewCartWatcher creates a watcher that re-reads snapshots through reader
// whenever a change signal arrives for the watched owner.
func NewCartWatcher(client *redis.Client, reader ports.CartReader, logger *slog.Logger) *CartWatcher {
	return &CartWatcher{
		client: client,
		reader: reader,
		logger: logger.With("component", "cart_watcher"),
	}
}

// Watch subscribes to the owner's cart. The current snapshot is emitted
// first, then one snapshot per change signal. The channel closes when ctx
// is cancelled or after an error update.
func (w *CartWatcher) Watch(ctx context.Context, ownerID string) (<-chan ports.CartUpdate, error) {
	if ownerID == "" {
		return nil, errs.NewValueIsRequiredError("ownerID")
	}

	pubsub := w.client.Subscribe(ctx, cartChannel(ownerID))

	// Force the subscription onto the wire before the initial snapshot, so
	// no change signal can slip between the two.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errs.NewRemoteUnavailableError("subscribe to cart changes")
	}

	updates := make(chan ports.CartUpdate)
	go w.stream(ctx, ownerID, pubsub, updates)
	return updates, nil
}

func (w *CartWatcher) stream(
	ctx context.Context,
	ownerID string,
	pubsub *redis.PubSub,
	updates chan<- ports.CartUpdate,
) {
	defer close(updates)
	defer func() {
		if err := pubsub.Close(); err != nil {
			w.logger.WarnContext(ctx, "Failed to close cart subscription", "ownerID", ownerID, "error", err)
		}
	}()

	if !w.emitSnapshot(ctx, ownerID, updates) {
		return
	}

	signals := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-signals:
			if !ok {
				return
			}
			if !w.emitSnapshot(ctx, ownerID, updates) {
				return
			}
		}
	}
}

// emitSnapshot re-reads the owner's cart and pushes it to the stream.
// Reports false when the stream should stop.
func (w *CartWatcher) emitSnapshot(ctx context.Context, ownerID string, updates chan<- ports.CartUpdate) bool {
	snapshot, err := w.readSnapshot(ctx, ownerID)
	if err != nil {
		w.logger.WarnContext(ctx, "Failed to read cart snapshot", "ownerID", ownerID, "error", err)
		select {
		case updates <- ports.CartUpdate{Err: err}:
		case <-ctx.Done():
		}
		return false
	}

	select {
	case updates <- ports.CartUpdate{Cart: snapshot}:
		return true
	case <-ctx.Done():
		return false
	}
}

// readSnapshot loads the owner's current cart. An owner without a cart row
// watches an empty cart, not an error; clearing a cart looks the same as
// emptying it.
func (w *CartWatcher) readSnapshot(ctx context.Context, ownerID string) (*cart.Cart, error) {
	snapshot, err := w.reader.Get(ctx, ownerID)
	if err == nil {
		return snapshot, nil
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return cart.NewCart(ownerID, time.Now().UTC())
	}
	return nil, err
}
