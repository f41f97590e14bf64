package usecase

import (
	"context"

	"air-cargo-assistant/internal/booking"
	repo "air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/internal/validation"
)

// Track looks up a booking by its public reference. Read-only.
func (uc *implUseCase) Track(ctx context.Context, bookingID string) (booking.TrackOutput, error) {
	normalized, err := validation.BookingID(bookingID)
	if err != nil {
		return booking.TrackOutput{}, err
	}

	b, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{BookingID: normalized})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Track GetOneBooking: %v", err)
		return booking.TrackOutput{}, err
	}
	if b.BookingID == "" {
		return booking.TrackOutput{}, booking.ErrBookingNotFound
	}
	return booking.TrackOutput{Booking: b}, nil
}
