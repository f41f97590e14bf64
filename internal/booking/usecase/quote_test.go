package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/validation"
)

func TestQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc, _ := newTestUseCase()

		out, err := uc.Quote(ctx, booking.QuoteInput{
			Origin:       "New York",
			Destination:  "London",
			Weight:       f(5.0),
			CargoType:    "general",
			ShippingDate: "2026-02-15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Origin != "JFK" || out.Destination != "LHR" {
			t.Errorf("expected normalized JFK->LHR, got %s->%s", out.Origin, out.Destination)
		}
		if out.Price != 12500.00 {
			t.Errorf("Price = %.2f, want 12500.00", out.Price)
		}
		if out.TransitDays != 2 {
			t.Errorf("TransitDays = %d, want 2", out.TransitDays)
		}
		if out.Breakdown.Total != out.Price {
			t.Errorf("breakdown total %.2f diverges from price %.2f", out.Breakdown.Total, out.Price)
		}
	})

	t.Run("InvalidWeight", func(t *testing.T) {
		uc, _ := newTestUseCase()

		_, err := uc.Quote(ctx, booking.QuoteInput{
			Origin:       "JFK",
			Destination:  "LHR",
			Weight:       f(0.05),
			CargoType:    "general",
			ShippingDate: "2026-02-15",
		})
		if !validation.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if err.Error() != "Minimum weight is 0.1 tonnes (100 kg)" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("SameOriginAndDestination", func(t *testing.T) {
		uc, _ := newTestUseCase()

		_, err := uc.Quote(ctx, booking.QuoteInput{
			Origin:       "JFK",
			Destination:  "jfk",
			Weight:       f(5.0),
			CargoType:    "general",
			ShippingDate: "2026-02-15",
		})
		if err == nil || err.Error() != "Origin and destination cannot be the same" {
			t.Errorf("expected same-route rejection, got %v", err)
		}
	})

	t.Run("RouteNotFound", func(t *testing.T) {
		uc, _ := newTestUseCase()

		_, err := uc.Quote(ctx, booking.QuoteInput{
			Origin:       "SYD",
			Destination:  "DXB",
			Weight:       f(5.0),
			CargoType:    "general",
			ShippingDate: "2026-02-15",
		})
		var notFound *booking.RouteNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected RouteNotFoundError, got %v", err)
		}
		if !strings.Contains(err.Error(), "No route available from SYD to DXB") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})
}
