package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// cartChangedPayload is the message published on a cart change. Watchers
// only care that something changed; they re-read the cart themselves.
const cartChangedPayload = "updated"

// CartNotifier publishes cart change signals over Redis pub/sub.
// Implements ports.CartChangePublisher. Publishing is best effort: a lost
// signal degrades watcher freshness but never fails the command that
// mutated the cart, so failures are logged and swallowed.
type CartNotifier struct {
	client *redis.Client
	logger *slog.Logger
}

// NewCartNotifier creates a publisher for cart change signals.
func NewCartNotifier(client *redis.Client, logger *slog.Logger) *CartNotifier {
	return &CartNotifier{
		client: client,
		logger: logger.With("component", "cart_notifier"),
	}
}

// CartChanged signals that the owner's cart was mutated.
func (n *CartNotifier) CartChanged(ctx context.Context, ownerID string) {
	if err := n.client.Publish(ctx, cartChannel(ownerID), cartChangedPayload).Err(); err != nil {
		n.logger.WarnContext(ctx, "Failed to publish cart change", "ownerID", ownerID, "error", err)
	}
}
