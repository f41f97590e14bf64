package repository

// GetRouteOptions identifies a lane by its normalized airport codes.
type GetRouteOptions struct {
	Origin      string
	Destination string
}

// CreateBookingOptions holds parameters for inserting a new booking.
// Volume is nil when the customer did not supply one.
type CreateBookingOptions struct {
	BookingID     string
	CustomerName  string
	CustomerEmail string
	Origin        string
	Destination   string
	Weight        float64
	Volume        *float64
	CargoType     string
	ShippingDate  string
	Price         float64
	Status        string
}

// GetOneBookingOptions holds filter parameters for fetching one booking.
type GetOneBookingOptions struct {
	BookingID string
}

// UpdateBookingStatusOptions transitions a booking's status.
type UpdateBookingStatusOptions struct {
	BookingID string
	Status    string
}

// ListBookingsOptions holds filter and cap parameters for listing bookings.
type ListBookingsOptions struct {
	Status string
	Limit  int
}
