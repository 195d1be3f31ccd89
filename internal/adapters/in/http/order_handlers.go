package http

import (
	"net/http"
	"time"

	"cafedelivery/internal/core/application/usecases/commands"
	"cafedelivery/internal/core/application/usecases/queries"
	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ChangeOrderStatusRequest is the body of POST /api/v1/orders/:orderId/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderStatsResponse is the body of GET /api/v1/orders/stats: a count per
// lifecycle status plus the overall total.
type OrderStatsResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// GetOrders handles GET /api/v1/orders. Customers see only their own
// orders; staff and couriers see everything. Optional filters: status,
// from/to (RFC 3339, half-open range), and item (substring of a line name).
func (s *Server) GetOrders(c echo.Context) error {
	identity := identityFrom(c)

	query := queries.NewGetOrdersQuery()
	if identity.Role == order.RoleCustomer {
		query = query.WithOwner(identity.UserID)
	}

	if raw := c.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return writeError(c, err)
		}
		query = query.WithStatus(status)
	}

	from, to, err := parseTimeRange(c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return writeError(c, err)
	}
	if !from.IsZero() || !to.IsZero() {
		query = query.WithCreatedBetween(from, to)
	}

	if item := c.QueryParam("item"); item != "" {
		query = query.WithItemName(item)
	}

	orders, err := s.getOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrderStats handles GET /api/v1/orders/stats. Staff only.
func (s *Server) GetOrderStats(c echo.Context) error {
	if identityFrom(c).Role != order.RoleAdmin {
		return writeForbidden(c)
	}

	stats, err := s.getOrderStatsHandler.Handle(c.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := OrderStatsResponse{
		Counts: make(map[string]int, order.StatusCount-1),
		Total:  stats.Total,
	}
	for status := order.Pending; status <= order.Cancelled; status++ {
		response.Counts[status.String()] = stats.CountFor(status)
	}

	return c.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status. The state
// machine decides whether the caller's role may perform the transition;
// courier-only targets are not reachable through this endpoint.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	identity := identityFrom(c)

	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return writeError(c, err)
	}

	var request ChangeOrderStatusRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Malformed request body"))
	}

	target, err := order.ParseStatus(request.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, identity.UserID, identity.Role)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.changeStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AcceptDelivery handles POST /api/v1/orders/:orderId/accept. Courier only;
// the courier is the authenticated caller. Exactly one courier wins an
// order, so a second accept gets a conflict.
func (s *Server) AcceptDelivery(c echo.Context) error {
	identity := identityFrom(c)
	if identity.Role != order.RoleCourier {
		return writeForbidden(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return writeError(c, err)
	}

	courierID, err := kernel.UUIDFromString(identity.UserID)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAcceptDeliveryCommand(orderID, courierID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.acceptDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/:orderId/delivered. Only the
// courier bound to the order can complete it.
func (s *Server) MarkDelivered(c echo.Context) error {
	identity := identityFrom(c)
	if identity.Role != order.RoleCourier {
		return writeForbidden(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return writeError(c, err)
	}

	courierID, err := kernel.UUIDFromString(identity.UserID)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, courierID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.markDeliveredHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseTimeRange(fromRaw, toRaw string) (from, to time.Time, err error) {
	if fromRaw != "" {
		from, err = time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			return time.Time{}, time.Time{}, errs.NewValueIsInvalidErrorWithCause("from", err)
		}
	}
	if toRaw != "" {
		to, err = time.Parse(time.RFC3339, toRaw)
		if err != nil {
			return time.Time{}, time.Time{}, errs.NewValueIsInvalidErrorWithCause("to", err)
		}
	}
	return from, to, nil
}
