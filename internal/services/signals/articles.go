package signals

import "github.com/auspexlabs/auspex/internal/models"

// ArticlesFor returns the analyzed articles whose affected entities mention
// ticker. Used for the per-ticker drill-down behind a ranked view entry.
func ArticlesFor(ticker string, articles []models.Article) []models.Article {
	var matched []models.Article
	for _, article := range articles {
		if article.Analysis == nil || article.Analysis.Failed() {
			continue
		}
		for _, entity := range article.Analysis.AffectedEntities {
			if containsSymbol(entity, ticker) {
				matched = append(matched, article)
				break
			}
		}
	}
	return matched
}

// containsSymbol reports whether entity mentions symbol as a standalone
// candidate, not as a substring of a longer symbol.
func containsSymbol(entity, symbol string) bool {
	for _, candidate := range tickerPattern.FindAllString(entity, -1) {
		if candidate == symbol {
			return true
		}
	}
	return false
}
