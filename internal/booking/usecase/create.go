package usecase

import (
	"context"
	"fmt"

	"air-cargo-assistant/internal/booking"
	repo "air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/internal/pricing"
)

// Create persists a new booking. The explicit confirmation flag is
// checked before anything else: an unconfirmed request never validates,
// prices, or writes.
func (uc *implUseCase) Create(ctx context.Context, input booking.CreateInput) (booking.CreateOutput, error) {
	if !input.Confirmed {
		return booking.CreateOutput{}, booking.ErrBookingConfirmationRequired
	}

	sh, route, err := uc.validateShipment(ctx, input.QuoteInput)
	if err != nil {
		return booking.CreateOutput{}, err
	}

	price := pricing.Calculate(pricing.Input{
		BasePricePerKg: route.BasePricePerKg,
		Weight:         sh.Weight,
		CargoType:      sh.CargoType,
		ShippingDate:   sh.ShippingDate,
		Volume:         sh.Volume,
	})

	bookingID, err := generateBookingID()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create generateBookingID: %v", err)
		return booking.CreateOutput{}, err
	}

	created, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		BookingID:     bookingID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Origin:        sh.Origin,
		Destination:   sh.Destination,
		Weight:        sh.Weight,
		Volume:        sh.Volume,
		CargoType:     sh.CargoType,
		ShippingDate:  sh.ShippingDate,
		Price:         price,
		Status:        model.BookingStatusConfirmed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
		return booking.CreateOutput{}, err
	}

	return booking.CreateOutput{
		BookingID: created.BookingID,
		Status:    created.Status,
		Price:     price,
		Message:   fmt.Sprintf("Booking confirmed! Your booking ID is %s", created.BookingID),
	}, nil
}
