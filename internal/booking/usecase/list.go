package usecase

import (
	"context"

	"air-cargo-assistant/internal/booking"
	repo "air-cargo-assistant/internal/booking/repository"
)

const defaultListLimit = 50

// List returns bookings newest first with an optional status filter.
func (uc *implUseCase) List(ctx context.Context, input booking.ListInput) (booking.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	bookings, _, err := uc.repo.ListBookings(ctx, repo.ListBookingsOptions{
		Status: input.Status,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListBookings: %v", err)
		return booking.ListOutput{}, err
	}

	return booking.ListOutput{
		Bookings: bookings,
		Count:    len(bookings),
	}, nil
}
