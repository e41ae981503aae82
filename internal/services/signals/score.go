package signals

import "github.com/auspexlabs/auspex/internal/models"

// Score aggregates signals per ticker into positive/negative counts and a
// net score. Tickers whose positive and negative mentions cancel exactly
// are dropped: a net-zero position carries no directional information.
func Score(sigs []Signal) map[string]ScoredTicker {
	type counts struct {
		positive int
		negative int
	}

	tally := make(map[string]counts)
	for _, sig := range sigs {
		c := tally[sig.Ticker]
		switch sig.Sentiment {
		case models.SentimentPositive:
			c.positive++
		case models.SentimentNegative:
			c.negative++
		}
		tally[sig.Ticker] = c
	}

	scored := make(map[string]ScoredTicker, len(tally))
	for ticker, c := range tally {
		net := c.positive - c.negative
		if net == 0 {
			continue
		}
		scored[ticker] = ScoredTicker{
			Ticker:   ticker,
			Positive: c.positive,
			Negative: c.negative,
			NetScore: net,
		}
	}

	return scored
}
