package main

import (
	"context"
	"fmt"

	"github.com/auspexlabs/auspex/internal/app"
)

// runAnalyze executes the analysis stage over the persisted cleaned batch.
func runAnalyze(application *app.App) error {
	ctx := context.Background()

	oracle, err := application.NewOracle(ctx)
	if err != nil {
		return err
	}
	defer oracle.Close()

	count, err := application.Pipeline.RunAnalysis(ctx, oracle)
	if err != nil {
		return err
	}

	fmt.Printf("Analyzed %d articles -> %s\n", count, application.Store.AnalyzedPath())
	return nil
}
