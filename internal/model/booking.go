package model

import "time"

// Booking statuses. Cancellation is a soft delete: the row stays,
// only the status changes.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Route is a priced origin-destination lane.
type Route struct {
	ID             int64
	Origin         string
	Destination    string
	BasePricePerKg float64
	TransitDays    int
}

// Booking is a stored cargo booking.
type Booking struct {
	ID            int64
	BookingID     string // public reference, e.g. "CRG1A2B3C4D"
	CustomerName  string
	CustomerEmail string
	Origin        string
	Destination   string
	Weight        float64 // tonnes
	Volume        float64 // cubic meters, optional
	CargoType     string
	ShippingDate  string // YYYY-MM-DD
	Price         float64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AuditLog records one handled HTTP request with its latency.
type AuditLog struct {
	ID             int64
	Timestamp      time.Time
	Endpoint       string
	Method         string
	LatencyMs      float64
	RequestData    string
	ResponseStatus int
	UserMessage    string
}
