package usecase

import (
	"context"
	"fmt"

	"air-cargo-assistant/internal/booking"
	repo "air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/internal/validation"
)

// Cancel soft-deletes a booking: the row stays, status flips to cancelled.
// Cancelling twice is a user-visible error, not a crash — the current
// status is read before writing so the second cancel reports
// ErrAlreadyCancelled instead of mutating again.
func (uc *implUseCase) Cancel(ctx context.Context, input booking.CancelInput) (booking.CancelOutput, error) {
	if !input.Confirmed {
		return booking.CancelOutput{}, booking.ErrCancelConfirmationRequired
	}

	bookingID, err := validation.BookingID(input.BookingID)
	if err != nil {
		return booking.CancelOutput{}, err
	}

	existing, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{BookingID: bookingID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Cancel GetOneBooking: %v", err)
		return booking.CancelOutput{}, err
	}
	if existing.BookingID == "" {
		return booking.CancelOutput{}, booking.ErrBookingNotFound
	}
	if existing.Status == model.BookingStatusCancelled {
		return booking.CancelOutput{}, booking.ErrAlreadyCancelled
	}

	updated, err := uc.repo.UpdateBookingStatus(ctx, repo.UpdateBookingStatusOptions{
		BookingID: bookingID,
		Status:    model.BookingStatusCancelled,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Cancel UpdateBookingStatus: %v", err)
		return booking.CancelOutput{}, err
	}

	return booking.CancelOutput{
		BookingID: updated.BookingID,
		Status:    updated.Status,
		Message:   fmt.Sprintf("Booking %s has been cancelled successfully", updated.BookingID),
	}, nil
}
