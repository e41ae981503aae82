package oracle

import "context"

// ProviderType identifies an LLM backend.
type ProviderType string

const (
	// ProviderGemini uses the Google Gemini API
	ProviderGemini ProviderType = "gemini"
	// ProviderClaude uses the Anthropic Claude API
	ProviderClaude ProviderType = "claude"
	// ProviderOpenAI uses the OpenAI chat completions API
	ProviderOpenAI ProviderType = "openai"
	// ProviderOllama uses a local Ollama server over localhost HTTP
	ProviderOllama ProviderType = "ollama"
)

// Provider is the single-operation capability every LLM backend implements:
// given a prompt, return the model's raw text output. Response parsing and
// error folding live in the Service so providers stay thin.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Type() ProviderType
	Close() error
}
