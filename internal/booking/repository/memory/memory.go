// Package memory provides an in-process booking store used when no
// Postgres URL is configured. Handy for local development and tests;
// data does not survive a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	repo "air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/internal/model"
)

type implRepository struct {
	mu       sync.RWMutex
	routes   map[string]model.Route // keyed by origin+"-"+destination
	bookings map[string]model.Booking
	nextID   int64
}

// New creates an empty in-memory Repository.
func New() repo.Repository {
	return &implRepository{
		routes:   make(map[string]model.Route),
		bookings: make(map[string]model.Booking),
		nextID:   1,
	}
}

// NewWithRoutes creates an in-memory Repository pre-loaded with lanes.
func NewWithRoutes(routes []model.Route) repo.Repository {
	r := &implRepository{
		routes:   make(map[string]model.Route, len(routes)),
		bookings: make(map[string]model.Booking),
		nextID:   1,
	}
	for i, route := range routes {
		if route.ID == 0 {
			route.ID = int64(i + 1)
		}
		r.routes[routeKey(route.Origin, route.Destination)] = route
	}
	return r
}

func routeKey(origin, destination string) string {
	return origin + "-" + destination
}

func (r *implRepository) GetRoute(ctx context.Context, opt repo.GetRouteOptions) (model.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.routes[routeKey(opt.Origin, opt.Destination)], nil
}

func (r *implRepository) ListRoutes(ctx context.Context) ([]model.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes := make([]model.Route, 0, len(r.routes))
	for _, route := range r.routes {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Origin != routes[j].Origin {
			return routes[i].Origin < routes[j].Origin
		}
		return routes[i].Destination < routes[j].Destination
	})
	return routes, nil
}

func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	b := model.Booking{
		ID:            r.nextID,
		BookingID:     opt.BookingID,
		CustomerName:  opt.CustomerName,
		CustomerEmail: opt.CustomerEmail,
		Origin:        opt.Origin,
		Destination:   opt.Destination,
		Weight:        opt.Weight,
		CargoType:     opt.CargoType,
		ShippingDate:  opt.ShippingDate,
		Price:         opt.Price,
		Status:        opt.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if opt.Volume != nil {
		b.Volume = *opt.Volume
	}
	r.nextID++
	r.bookings[b.BookingID] = b
	return b, nil
}

func (r *implRepository) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bookings[opt.BookingID], nil
}

func (r *implRepository) UpdateBookingStatus(ctx context.Context, opt repo.UpdateBookingStatusOptions) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[opt.BookingID]
	if !ok {
		return model.Booking{}, nil
	}
	b.Status = opt.Status
	b.UpdatedAt = time.Now().UTC()
	r.bookings[opt.BookingID] = b
	return b, nil
}

func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []model.Booking
	for _, b := range r.bookings {
		if opt.Status != "" && b.Status != opt.Status {
			continue
		}
		matched = append(matched, b)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if opt.Limit > 0 && len(matched) > opt.Limit {
		matched = matched[:opt.Limit]
	}
	return matched, total, nil
}
