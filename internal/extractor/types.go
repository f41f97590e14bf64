package extractor

import "air-cargo-assistant/internal/model"

// Result is the structured best guess extracted from one user message.
// It is advisory: the conversation engine re-derives missing slots from
// its own accumulated state and only uses MissingSlots and
// ClarificationQuestion for phrasing.
type Result struct {
	Intent                model.Intent
	Confidence            float64
	NeedsConfirmation     bool
	Slots                 model.Slots
	MissingSlots          []string
	ClarificationQuestion string
	ResponseText          string
}

// Fallback returns the degraded result used when the model is
// unreachable or its output cannot be parsed.
func Fallback() Result {
	return Result{
		Intent:                model.IntentClarification,
		Confidence:            FallbackConfidence,
		ClarificationQuestion: FallbackQuestion,
	}
}
