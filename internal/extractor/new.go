package extractor

import (
	"context"

	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/pkg/llmprovider"
	"air-cargo-assistant/pkg/log"
)

// Extractor is the interface for intent and slot extraction.
// Implementations must degrade gracefully: a broken or unreachable model
// yields the Fallback result, never a hard failure.
type Extractor interface {
	Extract(ctx context.Context, message string, history []model.TurnMessage) (Result, error)
}

// generator is the slice of the LLM provider manager this package needs.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLMExtractor extracts intent and slots using the provider manager.
type LLMExtractor struct {
	llm generator
	l   log.Logger
}

var _ Extractor = (*LLMExtractor)(nil)

// New creates a new LLMExtractor.
func New(llm generator, l log.Logger) *LLMExtractor {
	return &LLMExtractor{
		llm: llm,
		l:   l,
	}
}
