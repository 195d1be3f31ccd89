package http

import (
	"net/http"

	"cafedelivery/internal/core/application/usecases/commands"
	"cafedelivery/internal/core/application/usecases/queries"
	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateCourierRequest is the body of POST /api/v1/couriers. ID is
// optional; when absent the server mints one.
type CreateCourierRequest struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	PhotoRef string  `json:"photoRef,omitempty"`
	Rating   float64 `json:"rating"`
}

// CreateCourierResponse confirms the registered courier.
type CreateCourierResponse struct {
	ID string `json:"id"`
}

// SetAvailabilityRequest is the body of PATCH /api/v1/couriers/:courierId/availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// CreateCourier handles POST /api/v1/couriers. Staff only. New couriers
// start off-shift until they flip their availability.
func (s *Server) CreateCourier(c echo.Context) error {
	if identityFrom(c).Role != order.RoleAdmin {
		return writeForbidden(c)
	}

	var request CreateCourierRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Malformed request body"))
	}

	courierID := kernel.NewUUID()
	if request.ID != "" {
		parsed, err := kernel.UUIDFromString(request.ID)
		if err != nil {
			return writeError(c, err)
		}
		courierID = parsed
	}

	cmd, err := commands.NewCreateCourierCommand(courierID, request.Name, request.Phone, request.PhotoRef, request.Rating)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.createCourierHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateCourierResponse{ID: courierID.String()})
}

// SetCourierAvailability handles PATCH /api/v1/couriers/:courierId/availability.
// Staff can flip anyone; a courier can only flip themselves.
func (s *Server) SetCourierAvailability(c echo.Context) error {
	identity := identityFrom(c)

	courierID, err := kernel.UUIDFromString(c.Param("courierId"))
	if err != nil {
		return writeError(c, err)
	}

	switch identity.Role {
	case order.RoleAdmin:
	case order.RoleCourier:
		if identity.UserID != courierID.String() {
			return writeForbidden(c)
		}
	default:
		return writeForbidden(c)
	}

	var request SetAvailabilityRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Malformed request body"))
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(courierID, request.Available)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.setAvailabilityHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAvailableCouriers handles GET /api/v1/couriers/available. Staff only;
// the roster is sorted the same way the dispatcher ranks candidates.
func (s *Server) GetAvailableCouriers(c echo.Context) error {
	if identityFrom(c).Role != order.RoleAdmin {
		return writeForbidden(c)
	}

	couriers, err := s.getAvailableCouriersHandler.Handle(c.Request().Context(), queries.NewGetAvailableCouriersQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, couriers)
}
