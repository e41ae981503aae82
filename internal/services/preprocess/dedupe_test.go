package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/auspexlabs/auspex/internal/models"
)

func TestDedupeByURL_KeepsFirstOccurrence(t *testing.T) {
	articles := []models.Article{
		{Title: "first", URL: "https://example.com/a"},
		{Title: "second", URL: "https://example.com/b"},
		{Title: "duplicate of first", URL: "https://example.com/a"},
	}

	unique := DedupeByURL(articles)

	assert.Len(t, unique, 2)
	assert.Equal(t, "first", unique[0].Title)
	assert.Equal(t, "second", unique[1].Title)
}

func TestDedupeByURL_PreservesOrder(t *testing.T) {
	articles := []models.Article{
		{URL: "https://example.com/c"},
		{URL: "https://example.com/a"},
		{URL: "https://example.com/b"},
		{URL: "https://example.com/a"},
		{URL: "https://example.com/c"},
	}

	unique := DedupeByURL(articles)

	urls := make([]string, len(unique))
	for i, a := range unique {
		urls[i] = a.URL
	}
	assert.Equal(t, []string{
		"https://example.com/c",
		"https://example.com/a",
		"https://example.com/b",
	}, urls)
}

func TestDedupeByURL_Empty(t *testing.T) {
	assert.Empty(t, DedupeByURL(nil))
}
