package oracle

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/common"
	"github.com/auspexlabs/auspex/internal/interfaces"
)

// NewProvider creates the LLM provider selected by configuration. API keys
// resolve KV-storage-first with a config fallback; a missing key for the
// selected provider is a configuration error and fatal for the run.
func NewProvider(ctx context.Context, cfg *common.Config, kvStorage interfaces.KeyValueStorage, logger arbor.ILogger) (Provider, error) {
	switch ProviderType(cfg.LLM.Provider) {
	case ProviderGemini:
		apiKey, err := common.ResolveAPIKey(ctx, kvStorage, "gemini_api_key", cfg.Gemini.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve Gemini API key: %w", err)
		}
		return NewGeminiProvider(ctx, apiKey, &cfg.Gemini, logger)

	case ProviderClaude:
		apiKey, err := common.ResolveAPIKey(ctx, kvStorage, "anthropic_api_key", cfg.Claude.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve Anthropic API key: %w", err)
		}
		return NewClaudeProvider(apiKey, &cfg.Claude, logger), nil

	case ProviderOpenAI:
		apiKey, err := common.ResolveAPIKey(ctx, kvStorage, "openai_api_key", cfg.OpenAI.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve OpenAI API key: %w", err)
		}
		return NewOpenAIProvider(apiKey, &cfg.OpenAI, logger), nil

	case ProviderOllama:
		return NewOllamaProvider(&cfg.Ollama, logger), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLM.Provider)
	}
}
