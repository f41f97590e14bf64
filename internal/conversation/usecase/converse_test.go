package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/conversation"
	"air-cargo-assistant/internal/extractor"
	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/internal/validation"
	"air-cargo-assistant/pkg/log"
)

func TestConverseIntentDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Greeting", func(t *testing.T) {
		uc := New(fixedResult(extractor.Result{Intent: model.IntentGreeting}), &fakeBookingUC{}, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "hi there"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != MsgGreeting {
			t.Errorf("response = %q, want greeting", out.Response)
		}
		if out.Intent != model.IntentGreeting {
			t.Errorf("intent = %q, want greeting", out.Intent)
		}
		if out.NeedsConfirmation {
			t.Error("greeting must not need confirmation")
		}
	})

	t.Run("ClarificationUsesExtractorQuestion", func(t *testing.T) {
		uc := New(fixedResult(extractor.Result{
			Intent:                model.IntentClarification,
			ClarificationQuestion: "Did you mean a quote or a booking?",
		}), &fakeBookingUC{}, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "hmm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "Did you mean a quote or a booking?" {
			t.Errorf("response = %q", out.Response)
		}
	})

	t.Run("UnknownIntentFallsBackToCannedClarification", func(t *testing.T) {
		uc := New(fixedResult(extractor.Result{Intent: model.Intent("unsupported")}), &fakeBookingUC{}, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "???"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != MsgFallbackClarification {
			t.Errorf("response = %q, want canned clarification", out.Response)
		}
		if out.Intent != model.IntentClarification {
			t.Errorf("intent = %q, want clarification", out.Intent)
		}
	})

	t.Run("ExtractorErrorFallsBack", func(t *testing.T) {
		ext := &fakeExtractor{
			extractFn: func(context.Context, string, []model.TurnMessage) (extractor.Result, error) {
				return extractor.Result{}, errors.New("provider down")
			},
		}
		uc := New(ext, &fakeBookingUC{}, log.NewNop())

		prior := model.Slots{Origin: model.StringPtr("JFK")}
		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "ship 5 tonnes", AccumulatedSlots: prior})
		if err != nil {
			t.Fatalf("extraction failure must not fail the turn: %v", err)
		}
		if out.Response != extractor.FallbackQuestion {
			t.Errorf("response = %q, want fallback question", out.Response)
		}
		if model.StringValue(out.AccumulatedSlots.Origin) != "JFK" {
			t.Error("accumulated slots must survive an extraction failure")
		}
	})
}

func TestConverseQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingSlotsAsksForRemainder", func(t *testing.T) {
		bk := &fakeBookingUC{}
		uc := New(fixedResult(extractor.Result{
			Intent: model.IntentQuote,
			Slots:  model.Slots{Weight: model.Float64Ptr(5)},
		}), bk, log.NewNop())

		prior := model.Slots{Origin: model.StringPtr("JFK")}
		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "5 tonnes from new york", AccumulatedSlots: prior})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "I need some more information. Please provide: destination, cargo_type, shipping_date"
		if out.Response != want {
			t.Errorf("response = %q, want %q", out.Response, want)
		}
		if bk.quoteCalls != 0 {
			t.Errorf("quote called %d times on incomplete slots", bk.quoteCalls)
		}
		// Both the prior and the newly extracted slot must be retained.
		if model.StringValue(out.AccumulatedSlots.Origin) != "JFK" {
			t.Error("origin dropped from accumulated slots")
		}
		if model.Float64Value(out.AccumulatedSlots.Weight) != 5 {
			t.Error("weight not merged into accumulated slots")
		}
	})

	t.Run("CompleteSlotsReturnQuote", func(t *testing.T) {
		bk := &fakeBookingUC{
			quoteFn: func(_ context.Context, input booking.QuoteInput) (booking.QuoteOutput, error) {
				if input.Origin != "JFK" || input.Destination != "LHR" {
					t.Errorf("quote input route = %s-%s", input.Origin, input.Destination)
				}
				return booking.QuoteOutput{
					Origin: "JFK", Destination: "LHR", Weight: 5,
					CargoType: "general", ShippingDate: "2026-06-15",
					Price: 12500, TransitDays: 2,
				}, nil
			},
		}
		uc := New(fixedResult(extractor.Result{Intent: model.IntentQuote}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{
			Message:          "how much?",
			AccumulatedSlots: completeShipmentSlots(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Response, "$12500.00") {
			t.Errorf("response = %q, want price mentioned", out.Response)
		}
		if !strings.Contains(out.Response, "2 days transit") {
			t.Errorf("response = %q, want transit mentioned", out.Response)
		}
		if out.Data["price"] != 12500.0 {
			t.Errorf("data price = %v", out.Data["price"])
		}
		if out.NeedsConfirmation {
			t.Error("quote must not need confirmation")
		}
	})

	t.Run("ValidationErrorShownVerbatim", func(t *testing.T) {
		bk := &fakeBookingUC{
			quoteFn: func(context.Context, booking.QuoteInput) (booking.QuoteOutput, error) {
				return booking.QuoteOutput{}, validation.Weight(model.Float64Ptr(-1))
			},
		}
		uc := New(fixedResult(extractor.Result{Intent: model.IntentQuote}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{
			Message:          "quote please",
			AccumulatedSlots: completeShipmentSlots(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "I couldn't generate a quote: Weight must be greater than 0"
		if out.Response != want {
			t.Errorf("response = %q, want %q", out.Response, want)
		}
	})

	t.Run("StoreErrorMasked", func(t *testing.T) {
		bk := &fakeBookingUC{
			quoteFn: func(context.Context, booking.QuoteInput) (booking.QuoteOutput, error) {
				return booking.QuoteOutput{}, errors.New("pq: connection refused")
			},
		}
		uc := New(fixedResult(extractor.Result{Intent: model.IntentQuote}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{
			Message:          "quote please",
			AccumulatedSlots: completeShipmentSlots(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out.Response, "connection refused") {
			t.Errorf("internal error leaked: %q", out.Response)
		}
		if !strings.Contains(out.Response, MsgGenericFailure) {
			t.Errorf("response = %q, want generic failure", out.Response)
		}
	})
}

func TestConverseBook(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingSlotsAsksForRemainder", func(t *testing.T) {
		bk := &fakeBookingUC{}
		uc := New(fixedResult(extractor.Result{Intent: model.IntentBook}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{
			Message:          "book it",
			AccumulatedSlots: model.Slots{Origin: model.StringPtr("JFK"), Destination: model.StringPtr("LHR")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "To create a booking, I need: weight, cargo_type, shipping_date"
		if out.Response != want {
			t.Errorf("response = %q, want %q", out.Response, want)
		}
		if bk.createCalls != 0 {
			t.Error("create must not run on incomplete slots")
		}
	})

	t.Run("CompleteSlotsAskForConfirmation", func(t *testing.T) {
		bk := &fakeBookingUC{
			quoteFn: func(context.Context, booking.QuoteInput) (booking.QuoteOutput, error) {
				return booking.QuoteOutput{Price: 12500}, nil
			},
		}
		uc := New(fixedResult(extractor.Result{Intent: model.IntentBook}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{
			Message:          "book it",
			AccumulatedSlots: completeShipmentSlots(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.NeedsConfirmation {
			t.Fatal("booking must ask for confirmation")
		}
		if out.ConfirmationData == nil || out.ConfirmationData.Type != model.ConfirmationBook {
			t.Fatalf("confirmation data = %+v", out.ConfirmationData)
		}
		if out.ConfirmationData.Data == nil || model.StringValue(out.ConfirmationData.Data.Origin) != "JFK" {
			t.Error("confirmation draft must carry the accumulated slots")
		}
		if !strings.Contains(out.Response, "$12500.00") {
			t.Errorf("response = %q, want price in confirmation prompt", out.Response)
		}
		if bk.createCalls != 0 {
			t.Error("create must never run before an affirmative confirmation")
		}
	})
}

func TestConverseCancelAndTrack(t *testing.T) {
	ctx := context.Background()

	t.Run("CancelWithoutIDAsksForIt", func(t *testing.T) {
		uc := New(fixedResult(extractor.Result{Intent: model.IntentCancel}), &fakeBookingUC{}, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "cancel my booking"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != MsgAskBookingID {
			t.Errorf("response = %q", out.Response)
		}
		if out.NeedsConfirmation {
			t.Error("no confirmation without a booking id")
		}
	})

	t.Run("CancelWithIDAsksForConfirmation", func(t *testing.T) {
		bk := &fakeBookingUC{}
		uc := New(fixedResult(extractor.Result{
			Intent: model.IntentCancel,
			Slots:  model.Slots{BookingID: model.StringPtr("CRGA1B2C3D4")},
		}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "cancel CRGA1B2C3D4"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Are you sure you want to cancel booking CRGA1B2C3D4? Please confirm."
		if out.Response != want {
			t.Errorf("response = %q, want %q", out.Response, want)
		}
		if out.ConfirmationData == nil || out.ConfirmationData.Type != model.ConfirmationCancel {
			t.Fatalf("confirmation data = %+v", out.ConfirmationData)
		}
		if out.ConfirmationData.BookingID != "CRGA1B2C3D4" {
			t.Errorf("confirmation booking id = %q", out.ConfirmationData.BookingID)
		}
		if bk.cancelCalls != 0 {
			t.Error("cancel must never run before an affirmative confirmation")
		}
	})

	t.Run("TrackFound", func(t *testing.T) {
		bk := &fakeBookingUC{
			trackFn: func(_ context.Context, bookingID string) (booking.TrackOutput, error) {
				if bookingID != "CRGA1B2C3D4" {
					t.Errorf("track id = %q", bookingID)
				}
				return booking.TrackOutput{Booking: model.Booking{
					BookingID: "CRGA1B2C3D4", Status: model.BookingStatusConfirmed,
					Origin: "JFK", Destination: "LHR", Weight: 5,
					CargoType: "general", ShippingDate: "2026-06-15", Price: 12500,
				}}, nil
			},
		}
		uc := New(fixedResult(extractor.Result{
			Intent: model.IntentTrack,
			Slots:  model.Slots{BookingID: model.StringPtr("CRGA1B2C3D4")},
		}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "where is CRGA1B2C3D4"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Response, "Status is 'confirmed'") {
			t.Errorf("response = %q", out.Response)
		}
		if out.Data["status"] != model.BookingStatusConfirmed {
			t.Errorf("data status = %v", out.Data["status"])
		}
	})

	t.Run("TrackNotFoundShownVerbatim", func(t *testing.T) {
		bk := &fakeBookingUC{
			trackFn: func(context.Context, string) (booking.TrackOutput, error) {
				return booking.TrackOutput{}, booking.ErrBookingNotFound
			},
		}
		uc := New(fixedResult(extractor.Result{
			Intent: model.IntentTrack,
			Slots:  model.Slots{BookingID: model.StringPtr("CRGDEADBEEF")},
		}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "track CRGDEADBEEF"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Error tracking booking: Booking not found"
		if out.Response != want {
			t.Errorf("response = %q, want %q", out.Response, want)
		}
	})
}

func TestConverseConfirmationResolution(t *testing.T) {
	ctx := context.Background()

	pendingBook := func() *model.PendingConfirmation {
		slots := completeShipmentSlots()
		return &model.PendingConfirmation{Type: model.ConfirmationBook, Data: &slots}
	}

	t.Run("AffirmativeExecutesBooking", func(t *testing.T) {
		bk := &fakeBookingUC{
			createFn: func(_ context.Context, input booking.CreateInput) (booking.CreateOutput, error) {
				if !input.Confirmed {
					t.Error("resolved booking must carry Confirmed=true")
				}
				if input.Origin != "JFK" || model.Float64Value(input.Weight) != 5 {
					t.Errorf("draft not carried through: %+v", input.QuoteInput)
				}
				return booking.CreateOutput{
					BookingID: "CRGA1B2C3D4", Status: model.BookingStatusConfirmed,
					Price:   12500,
					Message: "Booking confirmed! Your booking ID is CRGA1B2C3D4",
				}, nil
			},
		}
		uc := New(fixedResult(extractor.Result{Intent: model.IntentClarification}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{
			Message:             "yes please",
			PendingConfirmation: pendingBook(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bk.createCalls != 1 {
			t.Fatalf("create calls = %d, want 1", bk.createCalls)
		}
		if out.Response != "Booking confirmed! Your booking ID is CRGA1B2C3D4" {
			t.Errorf("response = %q", out.Response)
		}
		if out.Data["booking_id"] != "CRGA1B2C3D4" {
			t.Errorf("data booking_id = %v", out.Data["booking_id"])
		}
	})

	t.Run("NegativeDiscardsAction", func(t *testing.T) {
		bk := &fakeBookingUC{}
		uc := New(fixedResult(extractor.Result{Intent: model.IntentClarification}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{
			Message:             "no, don't",
			PendingConfirmation: pendingBook(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != MsgActionCancelled {
			t.Errorf("response = %q", out.Response)
		}
		if bk.createCalls != 0 {
			t.Error("declined confirmation must not write")
		}
	})

	t.Run("MixedTokensCountAsAffirmative", func(t *testing.T) {
		bk := &fakeBookingUC{
			cancelFn: func(_ context.Context, input booking.CancelInput) (booking.CancelOutput, error) {
				return booking.CancelOutput{
					BookingID: input.BookingID, Status: model.BookingStatusCancelled,
					Message: "Booking CRGA1B2C3D4 has been cancelled successfully",
				}, nil
			},
		}
		uc := New(fixedResult(extractor.Result{Intent: model.IntentClarification}), bk, log.NewNop())

		// "yes, cancel it" hits both token sets; affirmation wins.
		out, err := uc.Converse(ctx, conversation.ConverseInput{
			Message: "yes, cancel it",
			PendingConfirmation: &model.PendingConfirmation{
				Type:      model.ConfirmationCancel,
				BookingID: "CRGA1B2C3D4",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bk.cancelCalls != 1 {
			t.Fatalf("cancel calls = %d, want 1", bk.cancelCalls)
		}
		if out.Response != "Booking CRGA1B2C3D4 has been cancelled successfully" {
			t.Errorf("response = %q", out.Response)
		}
	})

	t.Run("AmbiguousFallsThroughToDispatch", func(t *testing.T) {
		bk := &fakeBookingUC{}
		uc := New(fixedResult(extractor.Result{Intent: model.IntentGreeting}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{
			Message:             "actually, hello first",
			PendingConfirmation: pendingBook(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != MsgGreeting {
			t.Errorf("response = %q, want greeting via normal dispatch", out.Response)
		}
		if bk.createCalls != 0 {
			t.Error("ambiguous confirmation must not write")
		}
	})

	t.Run("AffirmedBookingFailureKeepsTurnAlive", func(t *testing.T) {
		bk := &fakeBookingUC{
			createFn: func(context.Context, booking.CreateInput) (booking.CreateOutput, error) {
				return booking.CreateOutput{}, &booking.RouteNotFoundError{Origin: "JFK", Destination: "XXX"}
			},
		}
		uc := New(fixedResult(extractor.Result{Intent: model.IntentClarification}), bk, log.NewNop())

		out, err := uc.Converse(ctx, conversation.ConverseInput{
			Message:             "yes",
			PendingConfirmation: pendingBook(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.Response, "Error creating booking: No route available") {
			t.Errorf("response = %q", out.Response)
		}
	})
}

func TestSlotAccumulation(t *testing.T) {
	ctx := context.Background()

	t.Run("MergeNeverUnsets", func(t *testing.T) {
		uc := New(fixedResult(extractor.Result{
			Intent: model.IntentQuote,
			Slots:  model.Slots{Destination: model.StringPtr("LHR")},
		}), &fakeBookingUC{}, log.NewNop())

		prior := model.Slots{
			Origin: model.StringPtr("JFK"),
			Weight: model.Float64Ptr(5),
		}
		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "to london", AccumulatedSlots: prior})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := out.AccumulatedSlots
		if model.StringValue(got.Origin) != "JFK" || model.Float64Value(got.Weight) != 5 {
			t.Error("earlier slots lost after merge")
		}
		if model.StringValue(got.Destination) != "LHR" {
			t.Error("new slot not merged")
		}
	})

	t.Run("NewValueOverwritesOld", func(t *testing.T) {
		uc := New(fixedResult(extractor.Result{
			Intent: model.IntentQuote,
			Slots:  model.Slots{Weight: model.Float64Ptr(7)},
		}), &fakeBookingUC{}, log.NewNop())

		prior := model.Slots{Weight: model.Float64Ptr(5)}
		out, err := uc.Converse(ctx, conversation.ConverseInput{Message: "make it 7 tonnes", AccumulatedSlots: prior})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if model.Float64Value(out.AccumulatedSlots.Weight) != 7 {
			t.Errorf("weight = %v, want 7", model.Float64Value(out.AccumulatedSlots.Weight))
		}
	})
}
