package ollama

import "time"

const (
	// DefaultBaseURL is the default Ollama server endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default model to use
	DefaultModel = "mistral:7b"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
