package usecase

import (
	"context"

	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/pricing"
)

// Quote validates the shipment, resolves the route, and prices it.
// Read-only: quoting never mutates the store and never needs confirmation.
func (uc *implUseCase) Quote(ctx context.Context, input booking.QuoteInput) (booking.QuoteOutput, error) {
	sh, route, err := uc.validateShipment(ctx, input)
	if err != nil {
		return booking.QuoteOutput{}, err
	}

	priceIn := pricing.Input{
		BasePricePerKg: route.BasePricePerKg,
		Weight:         sh.Weight,
		CargoType:      sh.CargoType,
		ShippingDate:   sh.ShippingDate,
		Volume:         sh.Volume,
	}

	return booking.QuoteOutput{
		Origin:       sh.Origin,
		Destination:  sh.Destination,
		Weight:       sh.Weight,
		CargoType:    sh.CargoType,
		ShippingDate: sh.ShippingDate,
		Price:        pricing.Calculate(priceIn),
		Breakdown:    pricing.GetBreakdown(priceIn),
		TransitDays:  route.TransitDays,
	}, nil
}
