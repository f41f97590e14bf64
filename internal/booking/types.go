package booking

import (
	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/internal/pricing"
)

// --- UseCase Inputs ---

// QuoteInput holds the shipment details to price. Weight and Volume are
// pointers so the validator can distinguish "absent" from zero.
type QuoteInput struct {
	Origin       string
	Destination  string
	Weight       *float64
	Volume       *float64
	CargoType    string
	ShippingDate string
}

// CreateInput holds a full booking request. Confirmed must be true or
// the operation is rejected before any validation or write.
type CreateInput struct {
	QuoteInput
	CustomerName  string
	CustomerEmail string
	Confirmed     bool
}

type CancelInput struct {
	BookingID string
	Confirmed bool
}

type ListInput struct {
	Status string
	Limit  int
}

// --- UseCase Outputs ---

type QuoteOutput struct {
	Origin       string
	Destination  string
	Weight       float64
	CargoType    string
	ShippingDate string
	Price        float64
	Breakdown    pricing.Breakdown
	TransitDays  int
}

type CreateOutput struct {
	BookingID string
	Status    string
	Price     float64
	Message   string
}

type CancelOutput struct {
	BookingID string
	Status    string
	Message   string
}

type TrackOutput struct {
	Booking model.Booking
}

type ListOutput struct {
	Bookings []model.Booking
	Count    int
}
