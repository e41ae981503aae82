// Package signals turns per-article sentiment analyses into ticker-level
// trading signals: extraction of validated ticker mentions, aggregation into
// net scores, and ranked bullish/bearish views.
package signals

import "github.com/auspexlabs/auspex/internal/models"

// Signal is one validated ticker mention carrying the sentiment of the
// article it came from. An article that mentions N validated tickers yields
// N signals with the same sentiment.
type Signal struct {
	Ticker    string           `json:"ticker"`
	Sentiment models.Sentiment `json:"sentiment"`
}

// ScoredTicker is the aggregate sentiment position for one ticker.
type ScoredTicker struct {
	Ticker   string `json:"ticker"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	NetScore int    `json:"net_score"`
}

// RankedView is the presentation-ready output: tickers with net-positive
// sentiment ordered strongest first, and net-negative ordered most negative
// first.
type RankedView struct {
	Bullish []ScoredTicker `json:"bullish"`
	Bearish []ScoredTicker `json:"bearish"`
}
