package ollama

import "net/http"

// Config holds the Ollama client configuration.
type Config struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Validate applies defaults; Ollama is a local server so no key is required.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Request is the body for POST /api/generate.
type Request struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`

	// Format constrains output; "json" forces valid JSON responses.
	Format string `json:"format,omitempty"`
}

// Response is the non-streaming body returned by /api/generate.
type Response struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

// ErrorResponse is the error body returned by the Ollama server.
type ErrorResponse struct {
	Error string `json:"error"`
}
