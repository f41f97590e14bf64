package repository

import (
	"context"

	"air-cargo-assistant/internal/model"
)

// Repository is the composed interface for the booking domain data store.
type Repository interface {
	RouteRepository
	BookingRepository
}

// RouteRepository reads the priced-lane reference table.
type RouteRepository interface {
	// GetRoute returns the route for an exact (origin, destination) pair.
	// Not found returns a zero-value Route without error.
	GetRoute(ctx context.Context, opt GetRouteOptions) (model.Route, error)

	// ListRoutes returns every lane we serve.
	ListRoutes(ctx context.Context) ([]model.Route, error)
}

// BookingRepository defines all data access methods for bookings.
type BookingRepository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (model.Booking, error)

	// GetOneBooking returns a zero-value Booking (BookingID == "") when
	// not found — do NOT return error for not-found.
	GetOneBooking(ctx context.Context, opt GetOneBookingOptions) (model.Booking, error)

	UpdateBookingStatus(ctx context.Context, opt UpdateBookingStatusOptions) (model.Booking, error)

	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]model.Booking, int, error)
}
