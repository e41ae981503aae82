package main

import (
	"context"
	"fmt"

	"github.com/auspexlabs/auspex/internal/app"
)

// runFetch executes the fetch stage once and reports the persisted batch size.
func runFetch(application *app.App) error {
	ctx := context.Background()

	source, err := application.NewArticleSource(ctx)
	if err != nil {
		return err
	}

	count, err := application.Pipeline.RunFetch(ctx, source)
	if err != nil {
		return err
	}

	fmt.Printf("Fetched and cleaned %d articles -> %s\n", count, application.Store.CleanedPath())
	return nil
}
