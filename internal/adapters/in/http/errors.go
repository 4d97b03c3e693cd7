package http

import (
	"errors"
	"net/http"

	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps application errors onto HTTP status codes and writes the
// JSON error body.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusCode(err), Error{
		Code:    statusCode(err),
		Message: err.Error(),
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateValue):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
