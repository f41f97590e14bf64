package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"air-cargo-assistant/internal/booking"
	repo "air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/internal/model"
)

func validCreateInput() booking.CreateInput {
	return booking.CreateInput{
		QuoteInput: booking.QuoteInput{
			Origin:       "JFK",
			Destination:  "LHR",
			Weight:       f(5.0),
			CargoType:    "general",
			ShippingDate: "2026-02-15",
		},
		CustomerName: "Ada Lovelace",
		Confirmed:    true,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc, store := newTestUseCase()

		out, err := uc.Create(ctx, validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.BookingID, "CRG") || len(out.BookingID) != 11 {
			t.Errorf("unexpected booking id %q", out.BookingID)
		}
		if out.Status != model.BookingStatusConfirmed {
			t.Errorf("Status = %q, want confirmed", out.Status)
		}
		if out.Price != 12500.00 {
			t.Errorf("Price = %.2f, want 12500.00", out.Price)
		}
		if out.Message != "Booking confirmed! Your booking ID is "+out.BookingID {
			t.Errorf("unexpected message %q", out.Message)
		}

		stored, err := store.GetOneBooking(ctx, repo.GetOneBookingOptions{BookingID: out.BookingID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.BookingID != out.BookingID || stored.CustomerName != "Ada Lovelace" {
			t.Errorf("booking not persisted correctly: %+v", stored)
		}
	})

	t.Run("UnconfirmedNeverWrites", func(t *testing.T) {
		uc, store := newTestUseCase()

		input := validCreateInput()
		input.Confirmed = false
		_, err := uc.Create(ctx, input)
		if !errors.Is(err, booking.ErrBookingConfirmationRequired) {
			t.Fatalf("expected ErrBookingConfirmationRequired, got %v", err)
		}

		bookings, _, err := store.ListBookings(ctx, repo.ListBookingsOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bookings) != 0 {
			t.Errorf("unconfirmed request persisted %d bookings", len(bookings))
		}
	})

	t.Run("ValidationFailureNeverWrites", func(t *testing.T) {
		uc, store := newTestUseCase()

		input := validCreateInput()
		input.CargoType = "furniture"
		if _, err := uc.Create(ctx, input); err == nil {
			t.Fatal("expected validation error")
		}

		bookings, _, _ := store.ListBookings(ctx, repo.ListBookingsOptions{})
		if len(bookings) != 0 {
			t.Errorf("rejected request persisted %d bookings", len(bookings))
		}
	})

	t.Run("StoreFailureSurfaced", func(t *testing.T) {
		uc, store := newTestUseCase()
		storeErr := errors.New("store unavailable")
		uc.repo = &fakeRepository{
			Repository: store,
			createBookingFn: func(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
				return model.Booking{}, storeErr
			},
		}

		_, err := uc.Create(ctx, validCreateInput())
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error surfaced, got %v", err)
		}
	})

	t.Run("UniqueIDsAcrossCreates", func(t *testing.T) {
		uc, _ := newTestUseCase()

		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			out, err := uc.Create(ctx, validCreateInput())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen[out.BookingID] {
				t.Fatalf("duplicate booking id %q", out.BookingID)
			}
			seen[out.BookingID] = true
		}
	})
}
