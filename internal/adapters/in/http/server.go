// Package http exposes the cafe delivery operations over REST and
// WebSocket. Handlers translate requests into commands and queries; all
// business rules stay behind the application layer.
package http

import (
	"log/slog"
	"net/http"

	"cafedelivery/internal/core/application/usecases/commands"
	"cafedelivery/internal/core/application/usecases/queries"
	"cafedelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	addItemHandler         commands.AddItemCommandHandler
	setQuantityHandler     commands.SetQuantityCommandHandler
	removeItemHandler      commands.RemoveItemCommandHandler
	clearCartHandler       commands.ClearCartCommandHandler
	checkoutHandler        commands.CheckoutCommandHandler
	changeStatusHandler    commands.ChangeOrderStatusCommandHandler
	acceptDeliveryHandler  commands.AcceptDeliveryCommandHandler
	markDeliveredHandler   commands.MarkDeliveredCommandHandler
	createCourierHandler   commands.CreateCourierCommandHandler
	setAvailabilityHandler commands.SetCourierAvailabilityCommandHandler

	// Query handlers
	getCartHandler              queries.GetCartQueryHandler
	getOrdersHandler            queries.GetOrdersQueryHandler
	getOrderStatsHandler        queries.GetOrderStatsQueryHandler
	getAvailableCouriersHandler queries.GetAvailableCouriersQueryHandler

	watcher ports.CartWatcher
	logger  *slog.Logger
}

// ServerConfig carries every dependency the server needs.
type ServerConfig struct {
	AddItemHandler         commands.AddItemCommandHandler
	SetQuantityHandler     commands.SetQuantityCommandHandler
	RemoveItemHandler      commands.RemoveItemCommandHandler
	ClearCartHandler       commands.ClearCartCommandHandler
	CheckoutHandler        commands.CheckoutCommandHandler
	ChangeStatusHandler    commands.ChangeOrderStatusCommandHandler
	AcceptDeliveryHandler  commands.AcceptDeliveryCommandHandler
	MarkDeliveredHandler   commands.MarkDeliveredCommandHandler
	CreateCourierHandler   commands.CreateCourierCommandHandler
	SetAvailabilityHandler commands.SetCourierAvailabilityCommandHandler

	GetCartHandler              queries.GetCartQueryHandler
	GetOrdersHandler            queries.GetOrdersQueryHandler
	GetOrderStatsHandler        queries.GetOrderStatsQueryHandler
	GetAvailableCouriersHandler queries.GetAvailableCouriersQueryHandler

	Watcher ports.CartWatcher
	Logger  *slog.Logger
}

// NewServer creates the HTTP server facade from its dependencies.
func NewServer(cfg ServerConfig) *Server {
	return &Server{
		addItemHandler:         cfg.AddItemHandler,
		setQuantityHandler:     cfg.SetQuantityHandler,
		removeItemHandler:      cfg.RemoveItemHandler,
		clearCartHandler:       cfg.ClearCartHandler,
		checkoutHandler:        cfg.CheckoutHandler,
		changeStatusHandler:    cfg.ChangeStatusHandler,
		acceptDeliveryHandler:  cfg.AcceptDeliveryHandler,
		markDeliveredHandler:   cfg.MarkDeliveredHandler,
		createCourierHandler:   cfg.CreateCourierHandler,
		setAvailabilityHandler: cfg.SetAvailabilityHandler,

		getCartHandler:              cfg.GetCartHandler,
		getOrdersHandler:            cfg.GetOrdersHandler,
		getOrderStatsHandler:        cfg.GetOrderStatsHandler,
		getAvailableCouriersHandler: cfg.GetAvailableCouriersHandler,

		watcher: cfg.Watcher,
		logger:  cfg.Logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts all endpoints on the echo instance. Everything
// under /api/v1 requires authentication; /health does not.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", auth)

	api.GET("/cart", s.GetCart)
	api.GET("/cart/watch", s.WatchCart)
	api.POST("/cart/items", s.AddItem)
	api.PATCH("/cart/items/:lineId", s.SetQuantity)
	api.DELETE("/cart/items/:lineId", s.RemoveItem)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/cart/checkout", s.Checkout)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/stats", s.GetOrderStats)
	api.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderId/accept", s.AcceptDelivery)
	api.POST("/orders/:orderId/delivered", s.MarkDelivered)

	api.POST("/couriers", s.CreateCourier)
	api.PATCH("/couriers/:courierId/availability", s.SetCourierAvailability)
	api.GET("/couriers/available", s.GetAvailableCouriers)
}

// Health reports process liveness for load balancers and orchestration.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
