package usecase

import (
	"context"
	"fmt"
	"strings"

	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/conversation"
	"air-cargo-assistant/internal/model"
)

// resolveConfirmation classifies the message against the pending action.
// Affirmative runs the stored mutation, negative discards it, anything
// else reports resolved=false so normal dispatch takes over.
// The affirmation check runs first, so a message containing tokens from
// both sets counts as affirmative.
func (uc *implUseCase) resolveConfirmation(
	ctx context.Context,
	message string,
	pending model.PendingConfirmation,
	accumulated model.Slots,
) (conversation.ConverseOutput, bool) {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, affirmationTokens):
		switch pending.Type {
		case model.ConfirmationBook:
			return uc.executeBook(ctx, pending, accumulated), true
		case model.ConfirmationCancel:
			return uc.executeCancel(ctx, pending, accumulated), true
		}
		uc.l.Warnf(ctx, "uc.resolveConfirmation: unknown pending type %q", pending.Type)
		return conversation.ConverseOutput{}, false

	case containsAny(lower, negationTokens):
		return conversation.ConverseOutput{
			Response:         MsgActionCancelled,
			Intent:           model.IntentClarification,
			AccumulatedSlots: accumulated,
		}, true

	default:
		return conversation.ConverseOutput{}, false
	}
}

// executeBook runs the persisted draft through the booking operation
// with the confirmation flag set.
func (uc *implUseCase) executeBook(ctx context.Context, pending model.PendingConfirmation, accumulated model.Slots) conversation.ConverseOutput {
	draft := model.Slots{}
	if pending.Data != nil {
		draft = *pending.Data
	}

	out, err := uc.bookingUC.Create(ctx, booking.CreateInput{
		QuoteInput:    toQuoteInput(draft),
		CustomerName:  model.StringValue(draft.CustomerName),
		CustomerEmail: model.StringValue(draft.CustomerEmail),
		Confirmed:     true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.executeBook Create: %v", err)
		return conversation.ConverseOutput{
			Response:         fmt.Sprintf("Error creating booking: %s", userMessage(err)),
			Intent:           model.IntentBook,
			AccumulatedSlots: accumulated,
		}
	}

	return conversation.ConverseOutput{
		Response: out.Message,
		Intent:   model.IntentBook,
		Data: map[string]any{
			"booking_id": out.BookingID,
			"price":      out.Price,
		},
		AccumulatedSlots: accumulated,
	}
}

// executeCancel runs the stored cancellation with the confirmation flag set.
func (uc *implUseCase) executeCancel(ctx context.Context, pending model.PendingConfirmation, accumulated model.Slots) conversation.ConverseOutput {
	out, err := uc.bookingUC.Cancel(ctx, booking.CancelInput{
		BookingID: pending.BookingID,
		Confirmed: true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.executeCancel Cancel: %v", err)
		return conversation.ConverseOutput{
			Response:         fmt.Sprintf("Error cancelling booking: %s", userMessage(err)),
			Intent:           model.IntentCancel,
			AccumulatedSlots: accumulated,
		}
	}

	return conversation.ConverseOutput{
		Response:         out.Message,
		Intent:           model.IntentCancel,
		AccumulatedSlots: accumulated,
	}
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
