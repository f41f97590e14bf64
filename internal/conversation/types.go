package conversation

import "air-cargo-assistant/internal/model"

// ConverseInput is one turn of the conversation. All turn-to-turn state
// (accumulated slots, pending confirmation) is carried by the caller and
// echoed back here; the server keeps no session.
type ConverseInput struct {
	Message             string
	History             []model.TurnMessage
	PendingConfirmation *model.PendingConfirmation
	AccumulatedSlots    model.Slots
}

// ConverseOutput is the engine's reply for one turn. AccumulatedSlots
// must be echoed back on the next turn; ConfirmationData is only set
// when NeedsConfirmation is true.
type ConverseOutput struct {
	Response          string
	Intent            model.Intent
	NeedsConfirmation bool
	ConfirmationData  *model.PendingConfirmation
	Data              map[string]any
	AccumulatedSlots  model.Slots
}
