package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysis_MarshalSuccess(t *testing.T) {
	analysis := Analysis{
		Sentiment:        SentimentPositive,
		AffectedEntities: []string{"AAPL", "Apple Inc."},
		EventSummary:     "Record quarterly earnings",
		PotentialImpact:  "Shares likely to rise",
		ConfidenceScore:  4,
	}

	data, err := json.Marshal(analysis)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "Positive", got["sentiment"])
	assert.Equal(t, "Record quarterly earnings", got["event_summary"])
	assert.Equal(t, "Shares likely to rise", got["potential_impact"])
	assert.Equal(t, float64(4), got["confidence_score"])
	assert.NotContains(t, got, "error")
}

func TestAnalysis_MarshalFailure(t *testing.T) {
	analysis := FailedAnalysis("model timed out")

	data, err := json.Marshal(analysis)
	require.NoError(t, err)

	assert.JSONEq(t, `{"error": "model timed out"}`, string(data))
}

func TestAnalysis_MarshalNilEntities(t *testing.T) {
	analysis := Analysis{
		Sentiment:       SentimentNeutral,
		ConfidenceScore: 2,
	}

	data, err := json.Marshal(analysis)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []interface{}{}, got["affected_entities"])
}

func TestAnalysis_UnmarshalSuccess(t *testing.T) {
	payload := `{
		"sentiment": "Negative",
		"affected_entities": ["TSLA"],
		"event_summary": "Recall announced",
		"potential_impact": "Negative for deliveries",
		"confidence_score": 5
	}`

	var analysis Analysis
	require.NoError(t, json.Unmarshal([]byte(payload), &analysis))

	assert.False(t, analysis.Failed())
	assert.Equal(t, SentimentNegative, analysis.Sentiment)
	assert.Equal(t, []string{"TSLA"}, analysis.AffectedEntities)
	assert.Equal(t, 5, analysis.ConfidenceScore)
}

func TestAnalysis_UnmarshalFailure(t *testing.T) {
	var analysis Analysis
	require.NoError(t, json.Unmarshal([]byte(`{"error": "rate limited"}`), &analysis))

	assert.True(t, analysis.Failed())
	assert.Equal(t, "rate limited", analysis.Err)
}

func TestAnalysis_RoundTrip(t *testing.T) {
	original := Analysis{
		Sentiment:        SentimentPositive,
		AffectedEntities: []string{"MSFT"},
		EventSummary:     "Cloud growth",
		PotentialImpact:  "Positive",
		ConfidenceScore:  3,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Analysis
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestAnalysis_ValidateRejectsBadSentiment(t *testing.T) {
	analysis := Analysis{Sentiment: "Bullish", ConfidenceScore: 3}
	assert.Error(t, analysis.Validate())
}

func TestAnalysis_ValidateRejectsConfidenceOutOfRange(t *testing.T) {
	for _, score := range []int{0, 6, -1} {
		analysis := Analysis{Sentiment: SentimentNeutral, ConfidenceScore: score}
		assert.Error(t, analysis.Validate(), "confidence_score %d should be rejected", score)
	}
}

func TestAnalysis_ValidateAcceptsFailureVariant(t *testing.T) {
	assert.NoError(t, FailedAnalysis("anything").Validate())
}

func TestSentiment_Directional(t *testing.T) {
	assert.True(t, SentimentPositive.Directional())
	assert.True(t, SentimentNegative.Directional())
	assert.False(t, SentimentNeutral.Directional())
	assert.False(t, Sentiment("Mixed").Directional())
}
