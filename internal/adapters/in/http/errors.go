package http

import (
	"errors"
	"net/http"

	"foodorder/internal/auth"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a domain error onto an HTTP status and writes the
// uniform error payload. Unrecognized errors become 500 with a generic
// message so internals never leak to clients.
func respondError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrStaleAggregate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
