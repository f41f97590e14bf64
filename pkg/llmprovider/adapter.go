package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"air-cargo-assistant/pkg/gemini"
	"air-cargo-assistant/pkg/ollama"
)

// OllamaAdapter adapts pkg/ollama to the llmprovider.Provider interface.
// Ollama exposes a flat prompt API, so the structured request is folded
// into a single prompt string with the system instruction passed separately.
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ollamaReq := &ollama.Request{
		Prompt: flattenMessages(req.Messages),
		Stream: false,
	}
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		ollamaReq.System = req.SystemInstruction.Parts[0].Text
	}
	if req.ForceJSON {
		ollamaReq.Format = "json"
	}

	resp, err := a.client.Generate(ctx, ollamaReq)
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}

	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: resp.Response}},
		},
		ProviderName: "ollama",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

// flattenMessages renders a message list as a plain conversation transcript.
func flattenMessages(msgs []Message) string {
	var b strings.Builder
	for _, msg := range msgs {
		for _, p := range msg.Parts {
			if p.Text == "" {
				continue
			}
			if msg.Role != "" && len(msgs) > 1 {
				b.WriteString(msg.Role)
				b.WriteString(": ")
			}
			b.WriteString(p.Text)
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: toGeminiMessage(req.SystemInstruction),
		Messages:          toGeminiMessages(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      fromGeminiMessage(resp.Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiMessage(msg *Message) *gemini.Message {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Message{Role: msg.Role, Parts: parts}
}

func toGeminiMessages(msgs []Message) []gemini.Message {
	out := make([]gemini.Message, len(msgs))
	for i := range msgs {
		out[i] = *toGeminiMessage(&msgs[i])
	}
	return out
}

func fromGeminiMessage(content gemini.Message) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}
