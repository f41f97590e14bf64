package extractor

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"air-cargo-assistant/internal/model"
)

// flexFloat tolerates models emitting numbers as strings ("5" or "5.0").
// Anything unparseable decodes as absent rather than failing the whole
// result.
type flexFloat struct {
	value *float64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.value = &v
	return nil
}

// Wire shapes matching the JSON schema in the system prompt.
type wireIntent struct {
	Type              string    `json:"type"`
	Confidence        flexFloat `json:"confidence"`
	NeedsConfirmation bool      `json:"needs_confirmation"`
}

type wireSlots struct {
	Origin        *string   `json:"origin"`
	Destination   *string   `json:"destination"`
	Weight        flexFloat `json:"weight"`
	Volume        flexFloat `json:"volume"`
	CargoType     *string   `json:"cargo_type"`
	ShippingDate  *string   `json:"shipping_date"`
	BookingID     *string   `json:"booking_id"`
	CustomerName  *string   `json:"customer_name"`
	CustomerEmail *string   `json:"customer_email"`
}

type wireResult struct {
	Intent                wireIntent `json:"intent"`
	Slots                 wireSlots  `json:"slots"`
	MissingSlots          []string   `json:"missing_slots"`
	ClarificationQuestion *string    `json:"clarification_question"`
	ResponseText          *string    `json:"response_text"`
}

// parseResult decodes the model output, stripping markdown fences and
// surrounding prose when the model ignores the JSON-only instruction.
func parseResult(raw string) (Result, error) {
	cleaned := stripMarkdownFences(raw)
	cleaned = extractJSONObject(cleaned)
	if cleaned == "" {
		return Result{}, errors.New("no JSON object in output")
	}

	var wire wireResult
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return Result{}, err
	}

	result := Result{
		Intent:            normalizeIntent(wire.Intent.Type),
		Confidence:        0.8,
		NeedsConfirmation: wire.Intent.NeedsConfirmation,
		Slots: model.Slots{
			Origin:        wire.Slots.Origin,
			Destination:   wire.Slots.Destination,
			Weight:        wire.Slots.Weight.value,
			Volume:        wire.Slots.Volume.value,
			CargoType:     wire.Slots.CargoType,
			ShippingDate:  wire.Slots.ShippingDate,
			BookingID:     wire.Slots.BookingID,
			CustomerName:  wire.Slots.CustomerName,
			CustomerEmail: wire.Slots.CustomerEmail,
		},
		MissingSlots: wire.MissingSlots,
	}
	if wire.Intent.Confidence.value != nil {
		result.Confidence = *wire.Intent.Confidence.value
	}
	if wire.ClarificationQuestion != nil {
		result.ClarificationQuestion = *wire.ClarificationQuestion
	}
	if wire.ResponseText != nil {
		result.ResponseText = *wire.ResponseText
	}
	return result, nil
}

// normalizeIntent maps unknown or absent intent labels to clarification.
func normalizeIntent(s string) model.Intent {
	intent := model.Intent(strings.ToLower(strings.TrimSpace(s)))
	if !intent.Valid() {
		return model.IntentClarification
	}
	return intent
}

// stripMarkdownFences removes ```json ... ``` wrappers if present.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	return s
}

// extractJSONObject returns the outermost {...} span, or "" when none.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}
