package interfaces

import (
	"context"

	"github.com/auspexlabs/auspex/internal/models"
)

// HeadlineQuery describes a single top-headlines request to a news provider.
type HeadlineQuery struct {
	// Country is a 2-letter ISO country code (e.g. "us")
	Country string
	// Category filters headlines by section (e.g. "business"); optional
	Category string
	// Query is a free-text keyword filter; optional
	Query string
	// PageSize caps the number of returned articles
	PageSize int
}

// ArticleSource fetches raw articles from an external news provider.
// Implementations convert transport and HTTP failures into errors; callers
// degrade to an empty batch rather than aborting the run.
type ArticleSource interface {
	TopHeadlines(ctx context.Context, query HeadlineQuery) ([]models.Article, error)
}

// SentimentOracle produces a structured sentiment analysis for cleaned
// article text. Analyze never fails past this boundary: transport and parse
// errors are folded into a Failure-variant analysis.
type SentimentOracle interface {
	Analyze(ctx context.Context, cleanedText string) models.Analysis

	// Close releases provider resources
	Close() error
}

// TickerRegistry answers whether a candidate symbol is a real, listed ticker.
// The backing snapshot must be loaded before signal extraction runs.
type TickerRegistry interface {
	Contains(symbol string) bool

	// Size returns the number of symbols in the loaded snapshot
	Size() int
}
