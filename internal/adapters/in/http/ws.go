package http

import (
	"net/http"
	"time"

	"cafedelivery/internal/core/domain/model/cart"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// keepAliveInterval paces WebSocket pings so idle cart watches survive
// proxies with read timeouts.
const keepAliveInterval = 30 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool {
		// Token auth already ran; the origin adds nothing for non-browser
		// clients and mobile apps send none.
		return true
	},
}

// CartSnapshotMessage is one frame on the cart watch stream.
type CartSnapshotMessage struct {
	Type          string            `json:"type"`
	OwnerID       string            `json:"ownerId"`
	Items         []CartLineMessage `json:"items"`
	SubtotalCents int64             `json:"subtotalCents"`
	TotalCents    int64             `json:"totalCents"`
}

// CartLineMessage is one cart line inside a snapshot frame.
type CartLineMessage struct {
	LineID         string `json:"id"`
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	SizeVariant    string `json:"sizeVariant,omitempty"`
	ImageRef       string `json:"imageRef,omitempty"`
}

// WatchCart handles GET /api/v1/cart/watch - upgrades to WebSocket and
// streams the caller's cart: the current snapshot first, then a fresh one
// after every mutation, from whatever device performed it.
func (s *Server) WatchCart(c echo.Context) error {
	identity := identityFrom(c)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := c.Request().Context()
	updates, err := s.watcher.Watch(ctx, identity.UserID)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to start cart watch", "ownerID", identity.UserID, "error", err)
		return nil
	}

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Err != nil {
				s.logger.WarnContext(ctx, "Cart watch failed", "ownerID", identity.UserID, "error", update.Err)
				return nil
			}
			if err = conn.WriteJSON(snapshotMessage(update.Cart)); err != nil {
				return nil
			}
		case <-keepAlive.C:
			if err = conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func snapshotMessage(snapshot *cart.Cart) CartSnapshotMessage {
	items := snapshot.Items()
	lines := make([]CartLineMessage, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLineMessage{
			LineID:         item.ID().String(),
			ProductID:      item.ProductID().String(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
			SizeVariant:    item.SizeVariant(),
			ImageRef:       item.ImageRef(),
		})
	}

	return CartSnapshotMessage{
		Type:          "cart_updated",
		OwnerID:       snapshot.OwnerID(),
		Items:         lines,
		SubtotalCents: snapshot.Subtotal().Cents(),
		TotalCents:    snapshot.Total().Cents(),
	}
}
