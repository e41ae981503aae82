package preprocess

import (
	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/models"
)

// Service applies content cleaning and data-quality filtering to a batch of
// raw articles.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new preprocessing service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Preprocess cleans each article's content and drops articles that have no
// content or whose content normalizes to an empty string. Exclusions are
// data-quality filtering, not failures, and are not reported as errors.
func (s *Service) Preprocess(articles []models.Article) []models.Article {
	processed := make([]models.Article, 0, len(articles))
	for _, article := range articles {
		if article.Content == "" {
			continue
		}

		cleaned := CleanContent(article.Content)
		if cleaned == "" {
			continue
		}

		// CleanedContent is added alongside the original content for
		// traceability in the persisted document
		article.CleanedContent = cleaned
		processed = append(processed, article)
	}

	s.logger.Debug().
		Int("in", len(articles)).
		Int("out", len(processed)).
		Msg("Preprocessing filtered articles with valid content")

	return processed
}
