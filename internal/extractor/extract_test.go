package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/pkg/llmprovider"
	"air-cargo-assistant/pkg/log"
)

type fakeGenerator struct {
	generate func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	lastReq  *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.lastReq = req
	return f.generate(ctx, req)
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: text}},
		},
	}
}

const wellFormedOutput = `{
	"intent": {"type": "quote", "confidence": 0.95, "needs_confirmation": false},
	"slots": {
		"origin": "New York",
		"destination": "London",
		"weight": 5,
		"volume": null,
		"cargo_type": "general",
		"shipping_date": "2026-02-15",
		"booking_id": null,
		"customer_name": null,
		"customer_email": null
	},
	"missing_slots": [],
	"clarification_question": null,
	"response_text": null
}`

func TestExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("WellFormedOutput", func(t *testing.T) {
		gen := &fakeGenerator{
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse(wellFormedOutput), nil
			},
		}
		e := New(gen, log.NewNop())

		result, err := e.Extract(ctx, "quote 5 tonnes NYC to London", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Intent != model.IntentQuote {
			t.Errorf("Intent = %q, want quote", result.Intent)
		}
		if result.Confidence != 0.95 {
			t.Errorf("Confidence = %.2f, want 0.95", result.Confidence)
		}
		if model.StringValue(result.Slots.Origin) != "New York" {
			t.Errorf("Origin = %v", result.Slots.Origin)
		}
		if model.Float64Value(result.Slots.Weight) != 5 {
			t.Errorf("Weight = %v", result.Slots.Weight)
		}
		if result.Slots.Volume != nil {
			t.Errorf("Volume should be nil, got %v", *result.Slots.Volume)
		}
	})

	t.Run("MarkdownFencedOutput", func(t *testing.T) {
		gen := &fakeGenerator{
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse("```json\n" + wellFormedOutput + "\n```"), nil
			},
		}
		e := New(gen, log.NewNop())

		result, err := e.Extract(ctx, "quote please", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Intent != model.IntentQuote {
			t.Errorf("Intent = %q, want quote", result.Intent)
		}
	})

	t.Run("ProseWrappedOutput", func(t *testing.T) {
		gen := &fakeGenerator{
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse("Here is the extraction:\n" + wellFormedOutput + "\nHope that helps!"), nil
			},
		}
		e := New(gen, log.NewNop())

		result, err := e.Extract(ctx, "quote please", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Intent != model.IntentQuote {
			t.Errorf("Intent = %q, want quote", result.Intent)
		}
	})

	t.Run("ProviderErrorFallsBack", func(t *testing.T) {
		gen := &fakeGenerator{
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return nil, errors.New("connection refused")
			},
		}
		e := New(gen, log.NewNop())

		result, err := e.Extract(ctx, "anything", nil)
		if err != nil {
			t.Fatalf("fallback should not error: %v", err)
		}
		if result.Intent != model.IntentClarification {
			t.Errorf("Intent = %q, want clarification", result.Intent)
		}
		if result.ClarificationQuestion != FallbackQuestion {
			t.Errorf("unexpected question %q", result.ClarificationQuestion)
		}
	})

	t.Run("GarbageOutputFallsBack", func(t *testing.T) {
		gen := &fakeGenerator{
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse("I cannot help with that."), nil
			},
		}
		e := New(gen, log.NewNop())

		result, err := e.Extract(ctx, "anything", nil)
		if err != nil {
			t.Fatalf("fallback should not error: %v", err)
		}
		if result.Intent != model.IntentClarification {
			t.Errorf("Intent = %q, want clarification", result.Intent)
		}
	})

	t.Run("UnknownIntentBecomesClarification", func(t *testing.T) {
		gen := &fakeGenerator{
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse(`{"intent": {"type": "dance"}, "slots": {}, "missing_slots": []}`), nil
			},
		}
		e := New(gen, log.NewNop())

		result, _ := e.Extract(ctx, "anything", nil)
		if result.Intent != model.IntentClarification {
			t.Errorf("Intent = %q, want clarification", result.Intent)
		}
	})

	t.Run("NumericStringsTolerated", func(t *testing.T) {
		gen := &fakeGenerator{
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse(`{
					"intent": {"type": "quote", "confidence": "0.9"},
					"slots": {"weight": "5.5", "volume": "not a number"},
					"missing_slots": []
				}`), nil
			},
		}
		e := New(gen, log.NewNop())

		result, _ := e.Extract(ctx, "anything", nil)
		if model.Float64Value(result.Slots.Weight) != 5.5 {
			t.Errorf("Weight = %v, want 5.5", result.Slots.Weight)
		}
		if result.Slots.Volume != nil {
			t.Errorf("unparseable volume should be absent, got %v", *result.Slots.Volume)
		}
		if result.Confidence != 0.9 {
			t.Errorf("Confidence = %.2f, want 0.9", result.Confidence)
		}
	})

	t.Run("HistoryWindowLimited", func(t *testing.T) {
		gen := &fakeGenerator{
			generate: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse(wellFormedOutput), nil
			},
		}
		e := New(gen, log.NewNop())

		history := make([]model.TurnMessage, 10)
		for i := range history {
			history[i] = model.TurnMessage{Role: "user", Content: "turn"}
		}
		if _, err := e.Extract(ctx, "current", history); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		prompt := gen.lastReq.Messages[0].Parts[0].Text
		count := strings.Count(prompt, "user: turn\n")
		if count != HistoryWindow {
			t.Errorf("expected %d history lines in prompt, got %d", HistoryWindow, count)
		}
		if gen.lastReq.SystemInstruction == nil {
			t.Error("system instruction missing")
		}
		if !gen.lastReq.ForceJSON {
			t.Error("expected ForceJSON")
		}
	})
}
