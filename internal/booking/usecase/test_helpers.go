package usecase

import (
	"context"
	"time"

	repo "air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/internal/booking/repository/memory"
	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/pkg/log"
)

// fakeRepository overrides selected repository methods for error-path
// tests, delegating everything else to a real in-memory store.
type fakeRepository struct {
	repo.Repository

	getRouteFn      func(ctx context.Context, opt repo.GetRouteOptions) (model.Route, error)
	createBookingFn func(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error)
}

func (f *fakeRepository) GetRoute(ctx context.Context, opt repo.GetRouteOptions) (model.Route, error) {
	if f.getRouteFn != nil {
		return f.getRouteFn(ctx, opt)
	}
	return f.Repository.GetRoute(ctx, opt)
}

func (f *fakeRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	if f.createBookingFn != nil {
		return f.createBookingFn(ctx, opt)
	}
	return f.Repository.CreateBooking(ctx, opt)
}

var testRoutes = []model.Route{
	{ID: 1, Origin: "JFK", Destination: "LHR", BasePricePerKg: 2.50, TransitDays: 2},
	{ID: 2, Origin: "LAX", Destination: "NRT", BasePricePerKg: 3.20, TransitDays: 3},
}

// newTestUseCase builds a usecase over a seeded in-memory store with the
// clock pinned to 2026-02-01.
func newTestUseCase() (*implUseCase, repo.Repository) {
	store := memory.NewWithRoutes(testRoutes)
	uc := New(store, log.NewNop())
	uc.now = func() time.Time {
		return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	}
	return uc, store
}

func f(v float64) *float64 { return &v }
