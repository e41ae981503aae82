package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auspexlabs/auspex/internal/models"
)

const validPayload = `{
	"sentiment": "Positive",
	"affected_entities": ["AAPL"],
	"event_summary": "Strong earnings",
	"potential_impact": "Shares up",
	"confidence_score": 4
}`

func TestTrimCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"uppercase json tag", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, trimCodeFence(tt.input))
		})
	}
}

func TestParseAnalysis_Valid(t *testing.T) {
	analysis, err := parseAnalysis(validPayload)

	require.NoError(t, err)
	assert.Equal(t, models.SentimentPositive, analysis.Sentiment)
	assert.Equal(t, []string{"AAPL"}, analysis.AffectedEntities)
	assert.Equal(t, 4, analysis.ConfidenceScore)
}

func TestParseAnalysis_FencedValid(t *testing.T) {
	analysis, err := parseAnalysis("```json\n" + validPayload + "\n```")

	require.NoError(t, err)
	assert.Equal(t, models.SentimentPositive, analysis.Sentiment)
}

func TestParseAnalysis_MalformedJSON(t *testing.T) {
	_, err := parseAnalysis("the market looks bullish to me")
	assert.Error(t, err)
}

func TestParseAnalysis_RejectsUnknownSentiment(t *testing.T) {
	_, err := parseAnalysis(`{"sentiment": "Bullish", "confidence_score": 3}`)
	assert.Error(t, err)
}

func TestParseAnalysis_RejectsConfidenceOutOfRange(t *testing.T) {
	_, err := parseAnalysis(`{"sentiment": "Neutral", "confidence_score": 9}`)
	assert.Error(t, err)
}

func TestParseAnalysis_RejectsErrorPayload(t *testing.T) {
	_, err := parseAnalysis(`{"error": "I cannot analyze this"}`)
	assert.Error(t, err)
}
