package signals

import (
	"regexp"

	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/interfaces"
	"github.com/auspexlabs/auspex/internal/models"
)

// tickerPattern matches candidate ticker symbols: runs of one to five
// capital letters on word boundaries. Candidates are only suggestions until
// the registry confirms them.
var tickerPattern = regexp.MustCompile(`\b[A-Z]{1,5}\b`)

// Extractor derives validated ticker signals from analyzed articles.
type Extractor struct {
	registry  interfaces.TickerRegistry
	threshold int
	logger    arbor.ILogger
}

// NewExtractor creates an extractor. threshold is the minimum confidence
// score an analysis must carry; analyses strictly below it are skipped.
func NewExtractor(registry interfaces.TickerRegistry, threshold int, logger arbor.ILogger) *Extractor {
	return &Extractor{
		registry:  registry,
		threshold: threshold,
		logger:    logger,
	}
}

// Extract walks the analyzed articles and emits one signal per validated
// ticker mention. Articles are skipped, in order, when the analysis failed,
// when confidence is below threshold, or when sentiment is not directional.
// Candidate symbols come from the affected-entities text; only symbols the
// registry confirms become signals.
func (e *Extractor) Extract(articles []models.Article) []Signal {
	var out []Signal
	skipped := 0

	for _, article := range articles {
		analysis := article.Analysis
		if analysis == nil || analysis.Failed() {
			skipped++
			continue
		}
		if analysis.ConfidenceScore < e.threshold {
			skipped++
			continue
		}
		if !analysis.Sentiment.Directional() {
			skipped++
			continue
		}

		for _, ticker := range e.validatedTickers(analysis.AffectedEntities) {
			out = append(out, Signal{Ticker: ticker, Sentiment: analysis.Sentiment})
		}
	}

	e.logger.Debug().
		Int("articles", len(articles)).
		Int("skipped", skipped).
		Int("signals", len(out)).
		Msg("Signal extraction complete")

	return out
}

// validatedTickers scans the entity strings for candidate symbols and keeps
// the ones the registry lists. Duplicates within one article are kept:
// repeated mentions count separately when scoring.
func (e *Extractor) validatedTickers(entities []string) []string {
	var tickers []string
	for _, entity := range entities {
		for _, candidate := range tickerPattern.FindAllString(entity, -1) {
			if e.registry.Contains(candidate) {
				tickers = append(tickers, candidate)
			}
		}
	}
	return tickers
}
