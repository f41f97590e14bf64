package booking

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound  = errors.New("Booking not found")
	ErrAlreadyCancelled = errors.New("Booking is already cancelled")

	ErrBookingConfirmationRequired = errors.New("Booking requires confirmation. Set confirmed=true to proceed.")
	ErrCancelConfirmationRequired  = errors.New("Cancellation requires confirmation. Set confirmed=true to proceed.")
)

// RouteNotFoundError rejects a quote or booking for a lane we don't serve.
// The message is user-facing.
type RouteNotFoundError struct {
	Origin      string
	Destination string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf(
		"No route available from %s to %s. Please check available routes or contact us for custom routing.",
		e.Origin, e.Destination)
}
