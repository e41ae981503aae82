package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auspexlabs/auspex/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), "preprocessed_articles.json", "analyzed_articles.json")
}

func sampleArticles() []models.Article {
	return []models.Article{
		{
			Source:         "Reuters",
			Title:          "Fed holds rates",
			URL:            "https://example.com/fed",
			PublishedAt:    time.Date(2025, 8, 22, 14, 30, 0, 0, time.UTC),
			Content:        "The Federal Reserve held rates... [+500 chars]",
			CleanedContent: "The Federal Reserve held rates...",
		},
	}
}

func TestStore_CleanedRoundTrip(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.SaveCleaned(sampleArticles()))

	loaded, err := store.LoadCleaned()
	require.NoError(t, err)
	assert.Equal(t, sampleArticles(), loaded)
}

func TestStore_AnalyzedRoundTrip(t *testing.T) {
	store := testStore(t)

	articles := sampleArticles()
	articles[0].Analysis = &models.Analysis{
		Sentiment:        models.SentimentNeutral,
		AffectedEntities: []string{},
		EventSummary:     "Rates unchanged",
		PotentialImpact:  "Little market impact",
		ConfidenceScore:  3,
	}

	require.NoError(t, store.SaveAnalyzed(articles))

	loaded, err := store.LoadAnalyzed()
	require.NoError(t, err)
	assert.Equal(t, articles, loaded)
}

func TestStore_PersistedFieldNames(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.SaveCleaned(sampleArticles()))

	data, err := os.ReadFile(store.CleanedPath())
	require.NoError(t, err)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)

	for _, key := range []string{"title", "source", "url", "published_at", "content", "cleaned_content"} {
		assert.Contains(t, raw[0], key)
	}
}

func TestStore_WritesIndentedJSON(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.SaveCleaned(sampleArticles()))

	data, err := os.ReadFile(store.CleanedPath())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n    \"title\""), "document should be indented with four spaces")
}

func TestStore_LoadMissingDocument(t *testing.T) {
	store := testStore(t)

	_, err := store.LoadCleaned()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run fetch first")
}

func TestStore_SaveReplacesPrevious(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.SaveCleaned(sampleArticles()))
	require.NoError(t, store.SaveCleaned([]models.Article{}))

	loaded, err := store.LoadCleaned()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "cleaned.json", "analyzed.json")
	require.NoError(t, store.SaveCleaned(sampleArticles()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cleaned.json", filepath.Base(entries[0].Name()))
}

func TestModTime(t *testing.T) {
	store := testStore(t)

	assert.True(t, ModTime(store.CleanedPath()).IsZero())

	require.NoError(t, store.SaveCleaned(sampleArticles()))
	assert.False(t, ModTime(store.CleanedPath()).IsZero())
}
