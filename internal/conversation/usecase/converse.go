package usecase

import (
	"context"

	"air-cargo-assistant/internal/conversation"
	"air-cargo-assistant/internal/extractor"
	"air-cargo-assistant/internal/model"
)

// Converse handles one turn of the conversation.
//
// The extractor is advisory only: its slot guesses are merged into the
// accumulated state (non-empty values win, nothing is ever un-set), but
// which slots are still missing is always recomputed here against the
// accumulated state, and mutating actions only ever run through the
// confirmation gate.
func (uc *implUseCase) Converse(ctx context.Context, input conversation.ConverseInput) (conversation.ConverseOutput, error) {
	result, err := uc.extractor.Extract(ctx, input.Message, input.History)
	if err != nil {
		// Extraction is never allowed to block the turn.
		uc.l.Warnf(ctx, "uc.Converse Extract: %v", err)
		result = extractor.Fallback()
	}

	accumulated := input.AccumulatedSlots.Merge(result.Slots)

	if input.PendingConfirmation != nil {
		if out, resolved := uc.resolveConfirmation(ctx, input.Message, *input.PendingConfirmation, accumulated); resolved {
			return out, nil
		}
		// Ambiguous answer: fall through to normal dispatch rather than
		// blocking the conversation on the pending action.
	}

	return uc.dispatch(ctx, result, accumulated), nil
}

// slotFilled reports whether the named required slot is set.
func slotFilled(s model.Slots, name string) bool {
	switch name {
	case "origin":
		return model.StringValue(s.Origin) != ""
	case "destination":
		return model.StringValue(s.Destination) != ""
	case "weight":
		return s.Weight != nil
	case "cargo_type":
		return model.StringValue(s.CargoType) != ""
	case "shipping_date":
		return model.StringValue(s.ShippingDate) != ""
	default:
		return false
	}
}

// missingShipmentSlots recomputes what is still needed from accumulated
// state, ignoring the extractor's own missing list.
func missingShipmentSlots(s model.Slots) []string {
	var missing []string
	for _, name := range requiredShipmentSlots {
		if !slotFilled(s, name) {
			missing = append(missing, name)
		}
	}
	return missing
}
