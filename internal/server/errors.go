package server

import (
	"net/http"

	"github.com/artvault/artvault/internal/usecase"

	"github.com/labstack/echo/v4"
)

// errorResponse is the single place an error becomes an HTTP response.
// Handlers return its result directly, so exactly one response is written
// per request.
//
//	validation  -> 422 {"error": ...}
//	not found   -> 404, empty body
//	forbidden   -> 401, empty body
//	anything else -> 500 {"error": ...}
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case usecase.IsValidation(err):
		return ctx.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case usecase.IsNotFound(err):
		return ctx.NoContent(http.StatusNotFound)
	case usecase.IsForbidden(err):
		return ctx.NoContent(http.StatusUnauthorized)
	default:
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
