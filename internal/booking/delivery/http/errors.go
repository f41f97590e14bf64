package http

import (
	"errors"
	"net/http"

	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/validation"
	pkgErrors "air-cargo-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Validation rejections and route misses are 400s with the rule's own
// message; unknown errors become an opaque 500.
func (h *handler) mapError(err error) error {
	var routeNotFound *booking.RouteNotFoundError

	switch {
	case validation.IsValidationError(err):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &routeNotFound):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrBookingConfirmationRequired),
		errors.Is(err, booking.ErrCancelConfirmationRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrBookingNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
