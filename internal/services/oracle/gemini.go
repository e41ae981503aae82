package oracle

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/auspexlabs/auspex/internal/common"
)

// GeminiProvider generates analyses with the Google Gemini API using
// structured JSON output: the response schema mirrors the analysis contract
// so the model cannot omit required keys.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      arbor.ILogger
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(ctx context.Context, apiKey string, cfg *common.GeminiConfig, logger arbor.ILogger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      logger,
	}, nil
}

// analysisSchema describes the expected JSON analysis object. With a schema
// set, Gemini enforces JSON output matching it.
func analysisSchema() *genai.Schema {
	minScore := float64(1)
	maxScore := float64(5)
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"sentiment": {
				Type: genai.TypeString,
				Enum: []string{"Positive", "Negative", "Neutral"},
			},
			"affected_entities": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"event_summary":    {Type: genai.TypeString},
			"potential_impact": {Type: genai.TypeString},
			"confidence_score": {
				Type:    genai.TypeInteger,
				Minimum: &minScore,
				Maximum: &maxScore,
			},
		},
		Required: []string{"sentiment", "affected_entities", "event_summary", "potential_impact", "confidence_score"},
	}
}

// Generate sends the prompt and returns the model's raw text output.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(p.temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema(),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty text in Gemini response")
	}

	return text, nil
}

// Type returns the provider type.
func (p *GeminiProvider) Type() ProviderType {
	return ProviderGemini
}

// Close releases the client.
func (p *GeminiProvider) Close() error {
	p.client = nil
	return nil
}
