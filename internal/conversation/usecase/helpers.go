package usecase

import (
	"errors"

	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/validation"
)

// userMessage renders an error for conversational display. Rule
// rejections and business outcomes are shown verbatim; anything else
// (store failures, bugs) is masked behind a generic apology.
func userMessage(err error) string {
	var routeNotFound *booking.RouteNotFoundError

	switch {
	case validation.IsValidationError(err),
		errors.As(err, &routeNotFound),
		errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrAlreadyCancelled),
		errors.Is(err, booking.ErrBookingConfirmationRequired),
		errors.Is(err, booking.ErrCancelConfirmationRequired):
		return err.Error()
	default:
		return MsgGenericFailure
	}
}
