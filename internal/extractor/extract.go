package extractor

import (
	"context"
	"fmt"
	"strings"

	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/pkg/llmprovider"
)

// Extract asks the model for intent and slots from one user message.
// The error return is always nil today; failures of any kind produce the
// Fallback result so a dead model never blocks the conversation.
func (e *LLMExtractor) Extract(ctx context.Context, message string, history []model.TurnMessage) (Result, error) {
	prompt := buildPrompt(message, history)

	resp, err := e.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: PromptExtractSystem}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Temperature: ExtractTemperature,
		ForceJSON:   true,
	})
	if err != nil {
		e.l.Warnf(ctx, "%s: LLM call failed, using fallback: %v", LogPrefixExtract, err)
		return Fallback(), nil
	}

	raw := responseText(resp)
	if raw == "" {
		e.l.Warnf(ctx, "%s: empty LLM response, using fallback", LogPrefixExtract)
		return Fallback(), nil
	}

	result, err := parseResult(raw)
	if err != nil {
		e.l.Warnf(ctx, "%s: failed to parse LLM output, using fallback: %v", LogPrefixExtract, err)
		return Fallback(), nil
	}

	e.l.Infof(ctx, "%s: intent=%s confidence=%.2f", LogPrefixExtract, result.Intent, result.Confidence)
	return result, nil
}

// buildPrompt prepends the trailing history window as a transcript so the
// model can carry slot values forward across turns.
func buildPrompt(message string, history []model.TurnMessage) string {
	var b strings.Builder

	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}
	for _, turn := range history {
		role := turn.Role
		if role == "" {
			role = "user"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, turn.Content)
	}

	fmt.Fprintf(&b, "\nUser: %s", message)
	return b.String()
}

func responseText(resp *llmprovider.Response) string {
	if resp == nil || len(resp.Content.Parts) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Content.Parts[0].Text)
}
