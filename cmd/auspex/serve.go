package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/auspexlabs/auspex/internal/app"
	"github.com/auspexlabs/auspex/internal/server"
)

// runServe hosts the HTTP API and, when a cron schedule is configured, runs
// the fetch stage on that schedule until interrupted.
func runServe(application *app.App) error {
	srv := server.New(application)

	scheduler, err := startScheduledFetch(application)
	if err != nil {
		return err
	}

	go func() {
		if err := srv.Start(); err != nil {
			application.Logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	application.Logger.Info().
		Str("url", fmt.Sprintf("http://%s:%d", application.Config.Server.Host, application.Config.Server.Port)).
		Msg("Server ready - Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	application.Logger.Info().Msg("Interrupt signal received")

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// startScheduledFetch registers the scheduled fetch job when a schedule is
// configured. Each run builds its own news source so credential problems
// surface per run instead of keeping the server from starting.
func startScheduledFetch(application *app.App) (*cron.Cron, error) {
	schedule := application.Config.Pipeline.Schedule
	if schedule == "" {
		return nil, nil
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(schedule, func() {
		ctx := context.Background()

		source, err := application.NewArticleSource(ctx)
		if err != nil {
			application.Logger.Error().Err(err).Msg("Scheduled fetch skipped")
			return
		}

		count, err := application.Pipeline.RunFetch(ctx, source)
		if err != nil {
			application.Logger.Error().Err(err).Msg("Scheduled fetch failed")
			return
		}
		application.Logger.Info().Int("articles", count).Msg("Scheduled fetch complete")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid fetch schedule %q: %w", schedule, err)
	}

	scheduler.Start()
	application.Logger.Info().Str("schedule", schedule).Msg("Scheduled fetch enabled")
	return scheduler, nil
}
