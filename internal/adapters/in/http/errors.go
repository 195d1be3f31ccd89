package http

import (
	"errors"
	"net/http"

	"cafedelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorBody(code int, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}

// writeError maps domain errors to HTTP status codes. Validation problems
// are the caller's fault, conflicts are losing races, and anything
// unrecognized stays a 500 without leaking internals.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorBody(http.StatusNotFound, err.Error()))
	case errors.Is(err, errs.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, errorBody(http.StatusConflict, err.Error()))
	case errors.Is(err, errs.ErrTransactionConflict):
		return c.JSON(http.StatusConflict, errorBody(http.StatusConflict, err.Error()))
	case errors.Is(err, errs.ErrRemoteUnavailable):
		return c.JSON(http.StatusServiceUnavailable, errorBody(http.StatusServiceUnavailable, err.Error()))
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, errorBody(http.StatusInternalServerError, "Internal server error"))
	}
}

// writeForbidden is for authenticated callers acting outside their role.
func writeForbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, errorBody(http.StatusForbidden, "Operation not allowed for this role"))
}
