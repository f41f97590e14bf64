package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"air-cargo-assistant/internal/booking"
	repo "air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/internal/validation"
)

// shipment is a fully validated and normalized quote/booking payload.
type shipment struct {
	Origin       string
	Destination  string
	Weight       float64
	Volume       *float64
	CargoType    string
	ShippingDate string
}

// validateShipment runs the full field validation for quote and booking
// requests, then resolves the route. Validation fully precedes any write.
func (uc *implUseCase) validateShipment(ctx context.Context, input booking.QuoteInput) (shipment, model.Route, error) {
	origin, err := validation.Location(input.Origin)
	if err != nil {
		return shipment{}, model.Route{}, err
	}
	destination, err := validation.Location(input.Destination)
	if err != nil {
		return shipment{}, model.Route{}, err
	}
	if err := validation.Weight(input.Weight); err != nil {
		return shipment{}, model.Route{}, err
	}
	if err := validation.Volume(input.Volume); err != nil {
		return shipment{}, model.Route{}, err
	}
	date, err := validation.Date(input.ShippingDate, uc.now())
	if err != nil {
		return shipment{}, model.Route{}, err
	}
	cargoType, err := validation.CargoType(input.CargoType)
	if err != nil {
		return shipment{}, model.Route{}, err
	}
	if err := validation.RoutePair(origin, destination); err != nil {
		return shipment{}, model.Route{}, err
	}

	route, err := uc.repo.GetRoute(ctx, repo.GetRouteOptions{Origin: origin, Destination: destination})
	if err != nil {
		uc.l.Errorf(ctx, "uc.validateShipment GetRoute: %v", err)
		return shipment{}, model.Route{}, err
	}
	if route.ID == 0 {
		return shipment{}, model.Route{}, &booking.RouteNotFoundError{Origin: origin, Destination: destination}
	}

	return shipment{
		Origin:       origin,
		Destination:  destination,
		Weight:       *input.Weight,
		Volume:       input.Volume,
		CargoType:    cargoType,
		ShippingDate: date,
	}, route, nil
}

// generateBookingID returns a fresh public reference: "CRG" plus 8 random
// uppercase hex characters. Random, not sequential, so concurrent creates
// cannot collide in practice and references are not guessable.
func generateBookingID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "CRG" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
