package http

import (
	"net/http"

	"cafedelivery/internal/core/application/usecases/commands"
	"cafedelivery/internal/core/application/usecases/queries"
	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// AddItemRequest is the body of POST /api/v1/cart/items.
type AddItemRequest struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	SizeVariant    string `json:"sizeVariant"`
	ImageRef       string `json:"imageRef"`
}

// SetQuantityRequest is the body of PATCH /api/v1/cart/items/:lineId.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest is the body of POST /api/v1/cart/checkout. OrderID is
// optional: clients that retry a failed checkout resend the same id so at
// most one order is placed.
type CheckoutRequest struct {
	OrderID       string `json:"orderId,omitempty"`
	Street        string `json:"street"`
	City          string `json:"city"`
	Reference     string `json:"reference,omitempty"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes,omitempty"`
}

// CheckoutResponse confirms the placed order.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// GetCart handles GET /api/v1/cart - the caller's current cart snapshot.
func (s *Server) GetCart(c echo.Context) error {
	identity := identityFrom(c)

	query, err := queries.NewGetCartQuery(identity.UserID)
	if err != nil {
		return writeError(c, err)
	}

	snapshot, err := s.getCartHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// AddItem handles POST /api/v1/cart/items - adds a product line to the
// caller's cart, merging with an existing line for the same product and
// size variant.
func (s *Server) AddItem(c echo.Context) error {
	identity := identityFrom(c)

	var request AddItemRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Malformed request body"))
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	unitPrice, err := kernel.NewMoneyFromCents(request.UnitPriceCents)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAddItemCommand(
		identity.UserID,
		productID,
		request.Name,
		unitPrice,
		request.Quantity,
		request.SizeVariant,
		request.ImageRef,
	)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.addItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetQuantity handles PATCH /api/v1/cart/items/:lineId - sets a line's
// quantity. Any integer is accepted; the line stays in the cart either way.
func (s *Server) SetQuantity(c echo.Context) error {
	identity := identityFrom(c)

	lineID, err := kernel.UUIDFromString(c.Param("lineId"))
	if err != nil {
		return writeError(c, err)
	}

	var request SetQuantityRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Malformed request body"))
	}

	cmd, err := commands.NewSetQuantityCommand(identity.UserID, lineID, request.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.setQuantityHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/cart/items/:lineId. Removing a line
// that is not in the cart succeeds without effect.
func (s *Server) RemoveItem(c echo.Context) error {
	identity := identityFrom(c)

	lineID, err := kernel.UUIDFromString(c.Param("lineId"))
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewRemoveItemCommand(identity.UserID, lineID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.removeItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart - empties the caller's cart.
func (s *Server) ClearCart(c echo.Context) error {
	identity := identityFrom(c)

	cmd, err := commands.NewClearCartCommand(identity.UserID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.clearCartHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/cart/checkout - turns the caller's cart
// into a pending order and clears the cart in the same transaction.
func (s *Server) Checkout(c echo.Context) error {
	identity := identityFrom(c)

	var request CheckoutRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Malformed request body"))
	}

	orderID := kernel.NewUUID()
	if request.OrderID != "" {
		parsed, err := kernel.UUIDFromString(request.OrderID)
		if err != nil {
			return writeError(c, err)
		}
		orderID = parsed
	}

	address, err := kernel.NewAddress(request.Street, request.City, request.Reference)
	if err != nil {
		return writeError(c, err)
	}

	paymentMethod, err := order.ParsePaymentMethod(request.PaymentMethod)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCheckoutCommand(orderID, identity.UserID, address, paymentMethod, request.Notes)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.checkoutHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}
