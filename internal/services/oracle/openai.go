package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/common"
)

// OpenAIProvider generates analyses with the OpenAI chat completions API.
// The shared prompt already constrains the model to raw JSON output.
type OpenAIProvider struct {
	client openai.Client
	model  string
	logger arbor.ILogger
}

// NewOpenAIProvider creates an OpenAI-backed provider.
func NewOpenAIProvider(apiKey string, cfg *common.OpenAIConfig, logger arbor.ILogger) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIProvider{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}
}

// Generate sends the prompt and returns the model's raw text output.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI API")
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty text in OpenAI response")
	}

	return text, nil
}

// Type returns the provider type.
func (p *OpenAIProvider) Type() ProviderType {
	return ProviderOpenAI
}

// Close releases the client.
func (p *OpenAIProvider) Close() error {
	p.client = openai.Client{}
	return nil
}
