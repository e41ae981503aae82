package preprocess

import "github.com/auspexlabs/auspex/internal/models"

// DedupeByURL removes articles sharing a URL, keeping the first occurrence
// and preserving first-seen order. The URL is the identity key within a
// fetch batch.
func DedupeByURL(articles []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(articles))
	unique := make([]models.Article, 0, len(articles))
	for _, article := range articles {
		if _, ok := seen[article.URL]; ok {
			continue
		}
		seen[article.URL] = struct{}{}
		unique = append(unique, article)
	}
	return unique
}
