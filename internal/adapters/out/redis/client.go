// Package redis provides the pub/sub fan-out for cart change notifications.
// Commands publish a change signal after commit; watchers subscribe per
// owner and push fresh snapshots to connected clients.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return client, nil
}

// cartChannel is the pub/sub channel carrying change signals for one
// owner's cart.
func cartChannel(ownerID string) string {
	return "cart:" + ownerID
}
