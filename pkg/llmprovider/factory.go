package llmprovider

import (
	"fmt"
	"sort"

	"air-cargo-assistant/pkg/gemini"
	"air-cargo-assistant/pkg/ollama"
)

// ProviderSpec describes one provider entry from configuration
type ProviderSpec struct {
	Name     string
	Model    string
	APIKey   string
	BaseURL  string
	Enabled  bool
	Priority int
}

// InitializeProviders builds the enabled providers in priority order
// (lower priority value is tried first).
func InitializeProviders(specs []ProviderSpec) ([]Provider, error) {
	enabled := make([]ProviderSpec, 0, len(specs))
	for _, spec := range specs {
		if spec.Enabled {
			enabled = append(enabled, spec)
		}
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	providers := make([]Provider, 0, len(enabled))
	for _, spec := range enabled {
		provider, err := buildProvider(spec)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	return providers, nil
}

func buildProvider(spec ProviderSpec) (Provider, error) {
	switch spec.Name {
	case "ollama":
		client, err := ollama.New(ollama.Config{
			BaseURL: spec.BaseURL,
			Model:   spec.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize ollama provider: %w", err)
		}
		return NewOllamaAdapter(client), nil
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: spec.APIKey,
			Model:  spec.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini provider: %w", err)
		}
		return NewGeminiAdapter(client), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", spec.Name)
	}
}
