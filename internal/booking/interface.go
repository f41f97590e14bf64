package booking

import (
	"context"

	"air-cargo-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Quote prices a shipment. Read-only, never requires confirmation.
	Quote(ctx context.Context, input QuoteInput) (QuoteOutput, error)

	// Create persists a new booking. Requires Confirmed=true.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Cancel soft-deletes a booking. Requires Confirmed=true.
	// Cancelling an already-cancelled booking returns ErrAlreadyCancelled.
	Cancel(ctx context.Context, input CancelInput) (CancelOutput, error)

	// Track looks up a booking by its public reference.
	Track(ctx context.Context, bookingID string) (TrackOutput, error)

	// List returns bookings, newest first, with optional status filter.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Routes returns every lane we serve.
	Routes(ctx context.Context) ([]model.Route, error)
}
