// Package app wires configuration, storage, and services into a runnable
// application.
package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/common"
	"github.com/auspexlabs/auspex/internal/interfaces"
	"github.com/auspexlabs/auspex/internal/newsapi"
	"github.com/auspexlabs/auspex/internal/services/oracle"
	"github.com/auspexlabs/auspex/internal/services/pipeline"
	"github.com/auspexlabs/auspex/internal/services/preprocess"
	"github.com/auspexlabs/auspex/internal/services/registry"
	"github.com/auspexlabs/auspex/internal/storage/badger"
)

// App holds all application components and dependencies.
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	DB        *badger.BadgerDB
	KVStorage interfaces.KeyValueStorage

	Store    *pipeline.Store
	Pipeline *pipeline.Service
}

// New initializes the application with all dependencies that every command
// needs. Components specific to one command (news source, oracle, ticker
// registry) are built on demand so their configuration errors surface only
// for the runs that use them.
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	db, err := badger.NewBadgerDB(logger, &cfg.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.DB = db
	a.KVStorage = badger.NewKVStorage(db, logger)

	a.Store = pipeline.NewStore(cfg.Pipeline.DataDir, cfg.Pipeline.CleanedFile, cfg.Pipeline.AnalyzedFile)
	a.Pipeline = pipeline.NewService(cfg, a.Store, preprocess.NewService(logger), logger)

	logger.Debug().
		Str("storage", "badger").
		Str("path", cfg.Storage.Badger.Path).
		Str("data_dir", cfg.Pipeline.DataDir).
		Msg("Application initialized")

	return a, nil
}

// NewArticleSource builds the configured news provider. The API key resolves
// KV-storage-first with the config value as fallback; a missing key is a
// configuration error for this run only.
func (a *App) NewArticleSource(ctx context.Context) (interfaces.ArticleSource, error) {
	apiKey, err := common.ResolveAPIKey(ctx, a.KVStorage, "news_api_key", a.Config.NewsAPI.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve news API key: %w", err)
	}

	return newsapi.NewClient(apiKey,
		newsapi.WithBaseURL(a.Config.NewsAPI.BaseURL),
		newsapi.WithLogger(a.Logger),
	), nil
}

// NewOracle builds the configured sentiment oracle.
func (a *App) NewOracle(ctx context.Context) (interfaces.SentimentOracle, error) {
	provider, err := oracle.NewProvider(ctx, a.Config, a.KVStorage, a.Logger)
	if err != nil {
		return nil, err
	}
	return oracle.NewService(provider, a.Config.LLM.RequestTimeout, a.Logger), nil
}

// NewRegistry builds and loads the listed-ticker registry.
func (a *App) NewRegistry(ctx context.Context) (interfaces.TickerRegistry, error) {
	svc := registry.NewService(a.Config.Registry.Sources, a.KVStorage, a.Logger,
		registry.WithCacheTTL(a.Config.Registry.CacheTTL))
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Close releases application resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
