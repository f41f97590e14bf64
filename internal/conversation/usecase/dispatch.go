package usecase

import (
	"context"
	"fmt"
	"strings"

	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/conversation"
	"air-cargo-assistant/internal/extractor"
	"air-cargo-assistant/internal/model"
)

// dispatch routes a turn by intent once no pending confirmation applies.
func (uc *implUseCase) dispatch(ctx context.Context, result extractor.Result, accumulated model.Slots) conversation.ConverseOutput {
	switch result.Intent {
	case model.IntentGreeting:
		return conversation.ConverseOutput{
			Response:         MsgGreeting,
			Intent:           model.IntentGreeting,
			AccumulatedSlots: accumulated,
		}
	case model.IntentQuote:
		return uc.dispatchQuote(ctx, result, accumulated)
	case model.IntentBook:
		return uc.dispatchBook(ctx, result, accumulated)
	case model.IntentCancel:
		return uc.dispatchCancel(accumulated)
	case model.IntentTrack:
		return uc.dispatchTrack(ctx, accumulated)
	default:
		response := result.ClarificationQuestion
		if response == "" {
			response = MsgFallbackClarification
		}
		return conversation.ConverseOutput{
			Response:         response,
			Intent:           model.IntentClarification,
			AccumulatedSlots: accumulated,
		}
	}
}

// dispatchQuote prices the shipment once every required slot is present.
// Quoting is read-only, so it never asks for confirmation.
func (uc *implUseCase) dispatchQuote(ctx context.Context, result extractor.Result, accumulated model.Slots) conversation.ConverseOutput {
	if missing := missingShipmentSlots(accumulated); len(missing) > 0 {
		question := result.ClarificationQuestion
		if question == "" {
			question = fmt.Sprintf("I need some more information. Please provide: %s", strings.Join(missing, ", "))
		}
		return conversation.ConverseOutput{
			Response:         question,
			Intent:           model.IntentQuote,
			AccumulatedSlots: accumulated,
		}
	}

	out, err := uc.bookingUC.Quote(ctx, toQuoteInput(accumulated))
	if err != nil {
		uc.l.Warnf(ctx, "uc.dispatchQuote Quote: %v", err)
		return conversation.ConverseOutput{
			Response:         fmt.Sprintf("I couldn't generate a quote: %s", userMessage(err)),
			Intent:           model.IntentQuote,
			AccumulatedSlots: accumulated,
		}
	}

	response := fmt.Sprintf(
		"Your quote from %s to %s for %v tonnes of %s cargo on %s is $%.2f (estimated %d days transit). Would you like to book this shipment?",
		out.Origin, out.Destination, out.Weight, out.CargoType, out.ShippingDate, out.Price, out.TransitDays)

	return conversation.ConverseOutput{
		Response: response,
		Intent:   model.IntentQuote,
		Data: map[string]any{
			"price": out.Price,
			"quote": out,
		},
		AccumulatedSlots: accumulated,
	}
}

// dispatchBook prepares the draft and asks for confirmation. The store
// write happens only when the confirmation resolves affirmatively on a
// later turn, never here.
func (uc *implUseCase) dispatchBook(ctx context.Context, result extractor.Result, accumulated model.Slots) conversation.ConverseOutput {
	if missing := missingShipmentSlots(accumulated); len(missing) > 0 {
		question := result.ClarificationQuestion
		if question == "" {
			question = fmt.Sprintf("To create a booking, I need: %s", strings.Join(missing, ", "))
		}
		return conversation.ConverseOutput{
			Response:         question,
			Intent:           model.IntentBook,
			AccumulatedSlots: accumulated,
		}
	}

	// Price the draft so the confirmation message can show the total.
	out, err := uc.bookingUC.Quote(ctx, toQuoteInput(accumulated))
	if err != nil {
		uc.l.Warnf(ctx, "uc.dispatchBook Quote: %v", err)
		return conversation.ConverseOutput{
			Response:         fmt.Sprintf("Error preparing booking: %s", userMessage(err)),
			Intent:           model.IntentBook,
			AccumulatedSlots: accumulated,
		}
	}

	draft := accumulated
	response := fmt.Sprintf(
		"I'll create a booking from %s to %s for %v tonnes of %s cargo on %s. The total price is $%.2f. Please confirm to proceed.",
		model.StringValue(accumulated.Origin), model.StringValue(accumulated.Destination),
		model.Float64Value(accumulated.Weight), model.StringValue(accumulated.CargoType),
		model.StringValue(accumulated.ShippingDate), out.Price)

	return conversation.ConverseOutput{
		Response:          response,
		Intent:            model.IntentBook,
		NeedsConfirmation: true,
		ConfirmationData: &model.PendingConfirmation{
			Type: model.ConfirmationBook,
			Data: &draft,
		},
		AccumulatedSlots: accumulated,
	}
}

// dispatchCancel asks for the booking id, then for confirmation. The
// status change happens only on a later affirmative turn.
func (uc *implUseCase) dispatchCancel(accumulated model.Slots) conversation.ConverseOutput {
	bookingID := model.StringValue(accumulated.BookingID)
	if bookingID == "" {
		return conversation.ConverseOutput{
			Response:         MsgAskBookingID,
			Intent:           model.IntentCancel,
			AccumulatedSlots: accumulated,
		}
	}

	return conversation.ConverseOutput{
		Response:          fmt.Sprintf("Are you sure you want to cancel booking %s? Please confirm.", bookingID),
		Intent:            model.IntentCancel,
		NeedsConfirmation: true,
		ConfirmationData: &model.PendingConfirmation{
			Type:      model.ConfirmationCancel,
			BookingID: bookingID,
		},
		AccumulatedSlots: accumulated,
	}
}

// dispatchTrack is a read-only lookup, no confirmation involved.
func (uc *implUseCase) dispatchTrack(ctx context.Context, accumulated model.Slots) conversation.ConverseOutput {
	bookingID := model.StringValue(accumulated.BookingID)
	if bookingID == "" {
		return conversation.ConverseOutput{
			Response:         MsgAskBookingID,
			Intent:           model.IntentTrack,
			AccumulatedSlots: accumulated,
		}
	}

	out, err := uc.bookingUC.Track(ctx, bookingID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.dispatchTrack Track: %v", err)
		return conversation.ConverseOutput{
			Response:         fmt.Sprintf("Error tracking booking: %s", userMessage(err)),
			Intent:           model.IntentTrack,
			AccumulatedSlots: accumulated,
		}
	}

	b := out.Booking
	response := fmt.Sprintf(
		"Booking %s: Status is '%s'. Route: %s to %s, %v tonnes of %s, shipping on %s. Price: $%.2f",
		b.BookingID, b.Status, b.Origin, b.Destination, b.Weight, b.CargoType, b.ShippingDate, b.Price)

	return conversation.ConverseOutput{
		Response: response,
		Intent:   model.IntentTrack,
		Data: map[string]any{
			"booking_id":    b.BookingID,
			"status":        b.Status,
			"origin":        b.Origin,
			"destination":   b.Destination,
			"weight":        b.Weight,
			"cargo_type":    b.CargoType,
			"shipping_date": b.ShippingDate,
			"price":         b.Price,
		},
		AccumulatedSlots: accumulated,
	}
}

func toQuoteInput(s model.Slots) booking.QuoteInput {
	return booking.QuoteInput{
		Origin:       model.StringValue(s.Origin),
		Destination:  model.StringValue(s.Destination),
		Weight:       s.Weight,
		Volume:       s.Volume,
		CargoType:    model.StringValue(s.CargoType),
		ShippingDate: model.StringValue(s.ShippingDate),
	}
}
