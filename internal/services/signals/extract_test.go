package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/models"
)

// stubRegistry is a fixed symbol set for tests.
type stubRegistry map[string]struct{}

func (r stubRegistry) Contains(symbol string) bool {
	_, ok := r[symbol]
	return ok
}

func (r stubRegistry) Size() int { return len(r) }

func newStubRegistry(symbols ...string) stubRegistry {
	r := make(stubRegistry, len(symbols))
	for _, s := range symbols {
		r[s] = struct{}{}
	}
	return r
}

func analyzedArticle(sentiment models.Sentiment, confidence int, entities ...string) models.Article {
	return models.Article{
		URL: "https://example.com/article",
		Analysis: &models.Analysis{
			Sentiment:        sentiment,
			AffectedEntities: entities,
			ConfidenceScore:  confidence,
		},
	}
}

func TestExtract_ValidatedTickerYieldsSignal(t *testing.T) {
	extractor := NewExtractor(newStubRegistry("AAPL"), 3, arbor.NewLogger())

	articles := []models.Article{
		analyzedArticle(models.SentimentPositive, 4, "AAPL", "Apple Inc."),
	}

	sigs := extractor.Extract(articles)

	require.Len(t, sigs, 1)
	assert.Equal(t, "AAPL", sigs[0].Ticker)
	assert.Equal(t, models.SentimentPositive, sigs[0].Sentiment)
}

func TestExtract_SkipsFailedAnalysis(t *testing.T) {
	extractor := NewExtractor(newStubRegistry("AAPL"), 1, arbor.NewLogger())

	failed := models.FailedAnalysis("model unavailable")
	articles := []models.Article{
		{URL: "https://example.com/a", Analysis: &failed},
		{URL: "https://example.com/b"}, // never analyzed
	}

	assert.Empty(t, extractor.Extract(articles))
}

func TestExtract_SkipsLowConfidence(t *testing.T) {
	extractor := NewExtractor(newStubRegistry("AAPL"), 4, arbor.NewLogger())

	articles := []models.Article{
		analyzedArticle(models.SentimentPositive, 3, "AAPL"),
	}

	assert.Empty(t, extractor.Extract(articles))
}

func TestExtract_ConfidenceAtThresholdKept(t *testing.T) {
	extractor := NewExtractor(newStubRegistry("AAPL"), 4, arbor.NewLogger())

	articles := []models.Article{
		analyzedArticle(models.SentimentPositive, 4, "AAPL"),
	}

	assert.Len(t, extractor.Extract(articles), 1)
}

func TestExtract_SkipsNeutralSentiment(t *testing.T) {
	extractor := NewExtractor(newStubRegistry("AAPL"), 1, arbor.NewLogger())

	articles := []models.Article{
		analyzedArticle(models.SentimentNeutral, 5, "AAPL"),
	}

	assert.Empty(t, extractor.Extract(articles))
}

func TestExtract_UnlistedCandidateRejected(t *testing.T) {
	extractor := NewExtractor(newStubRegistry("AAPL"), 1, arbor.NewLogger())

	articles := []models.Article{
		analyzedArticle(models.SentimentNegative, 5, "XYZQQ Corporation"),
	}

	assert.Empty(t, extractor.Extract(articles))
}

func TestExtract_CandidatesInsideEntityText(t *testing.T) {
	extractor := NewExtractor(newStubRegistry("MSFT", "GOOG"), 1, arbor.NewLogger())

	articles := []models.Article{
		analyzedArticle(models.SentimentPositive, 5, "Microsoft (MSFT) and GOOG both rallied"),
	}

	sigs := extractor.Extract(articles)

	require.Len(t, sigs, 2)
	assert.Equal(t, "MSFT", sigs[0].Ticker)
	assert.Equal(t, "GOOG", sigs[1].Ticker)
}

func TestExtract_LongUppercaseRunNotACandidate(t *testing.T) {
	// Six or more capitals never match the candidate pattern.
	extractor := NewExtractor(newStubRegistry("NVIDIA"), 1, arbor.NewLogger())

	articles := []models.Article{
		analyzedArticle(models.SentimentPositive, 5, "NVIDIA"),
	}

	assert.Empty(t, extractor.Extract(articles))
}
