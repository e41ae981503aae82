package signals

import "sort"

// Rank splits scored tickers into bullish and bearish views. Bullish is
// ordered by net score descending, bearish by net score ascending, so the
// strongest conviction in each direction comes first. Equal net scores
// order by ticker symbol ascending to keep output deterministic.
func Rank(scored map[string]ScoredTicker) RankedView {
	var view RankedView
	for _, st := range scored {
		if st.NetScore > 0 {
			view.Bullish = append(view.Bullish, st)
		} else {
			view.Bearish = append(view.Bearish, st)
		}
	}

	sort.Slice(view.Bullish, func(i, j int) bool {
		a, b := view.Bullish[i], view.Bullish[j]
		if a.NetScore != b.NetScore {
			return a.NetScore > b.NetScore
		}
		return a.Ticker < b.Ticker
	})

	sort.Slice(view.Bearish, func(i, j int) bool {
		a, b := view.Bearish[i], view.Bearish[j]
		if a.NetScore != b.NetScore {
			return a.NetScore < b.NetScore
		}
		return a.Ticker < b.Ticker
	})

	return view
}
