package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/common"
)

// OllamaProvider generates analyses with a local Ollama server over
// localhost HTTP. No API key is required; the server is fully local.
type OllamaProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     arbor.ILogger
}

// ollamaChatRequest is the request body for the Ollama chat endpoint.
type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Format   string          `json:"format,omitempty"`
	Stream   bool            `json:"stream"`
}

// ollamaMessage is a single message in an Ollama chat request.
type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ollamaChatResponse is the non-streaming response body.
type ollamaChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// NewOllamaProvider creates an Ollama-backed provider.
func NewOllamaProvider(cfg *common.OllamaConfig, logger arbor.ILogger) *OllamaProvider {
	return &OllamaProvider{
		baseURL: cfg.URL,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute, // local inference can be slow on CPU
		},
		logger: logger,
	}
}

// Generate sends the prompt and returns the model's raw text output.
// Format "json" makes the server constrain output to a JSON object.
func (p *OllamaProvider) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := ollamaChatRequest{
		Model: p.model,
		Messages: []ollamaMessage{
			{Role: "user", Content: prompt},
		},
		Format: "json",
		Stream: false,
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/chat", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Ollama API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Ollama API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode Ollama response: %w", err)
	}

	if chatResp.Message.Content == "" {
		return "", fmt.Errorf("empty response from Ollama API")
	}

	return chatResp.Message.Content, nil
}

// Type returns the provider type.
func (p *OllamaProvider) Type() ProviderType {
	return ProviderOllama
}

// Close releases resources.
func (p *OllamaProvider) Close() error {
	p.httpClient.CloseIdleConnections()
	return nil
}
