package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/common"
	"github.com/auspexlabs/auspex/internal/interfaces"
	"github.com/auspexlabs/auspex/internal/models"
	"github.com/auspexlabs/auspex/internal/services/preprocess"
)

// Service runs the two pipeline stages. The fetch stage gathers headlines,
// cleans and dedupes them, and persists the cleaned batch. The analysis
// stage loads the cleaned batch, runs every article through the sentiment
// oracle, and persists the analyzed batch.
type Service struct {
	cfg        *common.Config
	store      *Store
	preprocess *preprocess.Service
	logger     arbor.ILogger
}

// NewService creates the pipeline service.
func NewService(cfg *common.Config, store *Store, preprocessSvc *preprocess.Service, logger arbor.ILogger) *Service {
	return &Service{
		cfg:        cfg,
		store:      store,
		preprocess: preprocessSvc,
		logger:     logger,
	}
}

// RunFetch executes the fetch stage against the given source. Each
// configured query degrades independently: a failed query is logged and
// skipped, and the run only fails when no query produced any articles.
func (s *Service) RunFetch(ctx context.Context, source interfaces.ArticleSource) (int, error) {
	runID := uuid.New().String()
	log := s.logger.WithCorrelationId(runID)

	queries := s.queries()
	var raw []models.Article
	failed := 0

	for _, query := range queries {
		articles, err := source.TopHeadlines(ctx, query)
		if err != nil {
			failed++
			log.Warn().
				Str("country", query.Country).
				Str("category", query.Category).
				Str("query", query.Query).
				Err(err).
				Msg("Headline query failed")
			continue
		}
		raw = append(raw, articles...)
	}

	if len(raw) == 0 {
		return 0, fmt.Errorf("fetch produced no articles (%d of %d queries failed)", failed, len(queries))
	}

	deduped := preprocess.DedupeByURL(raw)
	cleaned := s.preprocess.Preprocess(deduped)

	if len(cleaned) == 0 {
		return 0, fmt.Errorf("fetch produced no usable articles after preprocessing (%d raw)", len(raw))
	}

	if err := s.store.SaveCleaned(cleaned); err != nil {
		return 0, err
	}

	log.Info().
		Int("raw", len(raw)).
		Int("deduped", len(deduped)).
		Int("cleaned", len(cleaned)).
		Msg("Fetch stage complete")

	return len(cleaned), nil
}

// RunAnalysis executes the analysis stage with the given oracle. Articles
// are analyzed sequentially; a failed analysis is recorded on the article
// and never aborts the batch. A missing cleaned document is a run error.
func (s *Service) RunAnalysis(ctx context.Context, oracle interfaces.SentimentOracle) (int, error) {
	runID := uuid.New().String()
	log := s.logger.WithCorrelationId(runID)

	articles, err := s.store.LoadCleaned()
	if err != nil {
		return 0, err
	}

	failures := 0
	for i := range articles {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("analysis interrupted after %d of %d articles: %w", i, len(articles), err)
		}

		analysis := oracle.Analyze(ctx, articles[i].CleanedContent)
		articles[i].Analysis = &analysis
		if analysis.Failed() {
			failures++
			log.Debug().
				Str("url", articles[i].URL).
				Str("error", analysis.Err).
				Msg("Article analysis failed")
		}
	}

	if err := s.store.SaveAnalyzed(articles); err != nil {
		return 0, err
	}

	log.Info().
		Int("articles", len(articles)).
		Int("failures", failures).
		Msg("Analysis stage complete")

	return len(articles), nil
}

// queries builds the run's headline queries: the default country/category
// query first, then any extra configured keyword queries.
func (s *Service) queries() []interfaces.HeadlineQuery {
	cfg := s.cfg.NewsAPI
	out := []interfaces.HeadlineQuery{
		{
			Country:  cfg.Country,
			Category: cfg.Category,
			PageSize: cfg.PageSize,
		},
	}

	for _, q := range cfg.Queries {
		pageSize := q.PageSize
		if pageSize == 0 {
			pageSize = cfg.PageSize
		}
		out = append(out, interfaces.HeadlineQuery{
			Country:  q.Country,
			Query:    q.Query,
			PageSize: pageSize,
		})
	}

	return out
}
