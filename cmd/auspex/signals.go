package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/auspexlabs/auspex/internal/app"
	"github.com/auspexlabs/auspex/internal/services/signals"
)

// runSignals loads the analyzed batch, extracts validated ticker signals,
// and prints the ranked bullish and bearish tables.
func runSignals(application *app.App) error {
	ctx := context.Background()

	articles, err := application.Store.LoadAnalyzed()
	if err != nil {
		return err
	}

	registry, err := application.NewRegistry(ctx)
	if err != nil {
		return err
	}

	thresh := application.Config.Signals.ConfidenceThreshold
	extractor := signals.NewExtractor(registry, thresh, application.Logger)
	view := signals.Rank(signals.Score(extractor.Extract(articles)))

	fmt.Printf("Analyzed articles: %d  confidence threshold: %d\n\n", len(articles), thresh)

	if len(view.Bullish) == 0 && len(view.Bearish) == 0 {
		fmt.Println("No significant ticker signals found with the current settings.")
		return nil
	}

	printTable("Bullish", view.Bullish)
	printTable("Bearish", view.Bearish)
	return nil
}

func printTable(title string, rows []signals.ScoredTicker) {
	if len(rows) == 0 {
		return
	}

	fmt.Printf("%s signals:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TICKER\tPOSITIVE\tNEGATIVE\tNET")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%+d\n", row.Ticker, row.Positive, row.Negative, row.NetScore)
	}
	w.Flush()
	fmt.Println()
}
