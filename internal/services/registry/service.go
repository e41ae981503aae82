// Package registry provides the listed-ticker registry with caching.
// It downloads official exchange symbol directories and caches the snapshot
// locally so repeated runs do not re-fetch.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/auspexlabs/auspex/internal/common"
	"github.com/auspexlabs/auspex/internal/interfaces"
)

const (
	// DefaultCacheTTL is the default time-to-live for the cached snapshot.
	DefaultCacheTTL = 24 * time.Hour

	// SnapshotKey is the KV storage key for the symbol snapshot.
	SnapshotKey = "registry:symbols"

	// DefaultTimeout is the HTTP timeout for symbol downloads.
	DefaultTimeout = 30 * time.Second
)

// snapshot is the cached form of a loaded symbol set.
type snapshot struct {
	Symbols   []string  `json:"symbols"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Service downloads, caches, and answers membership queries against the set
// of listed exchange symbols. Load must complete before Contains is used;
// the lifecycle is load-once per run, with the snapshot explicitly owned by
// the service instance rather than shared module state.
type Service struct {
	sources    []common.RegistrySource
	kvSvc      interfaces.KeyValueStorage
	httpClient *http.Client
	logger     arbor.ILogger
	cacheTTL   time.Duration
	limiter    *rate.Limiter

	symbols map[string]struct{}
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ServiceOption {
	return func(s *Service) {
		s.httpClient = httpClient
	}
}

// WithCacheTTL sets a custom snapshot TTL.
func WithCacheTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		s.cacheTTL = ttl
	}
}

// NewService creates a new ticker registry service.
func NewService(sources []common.RegistrySource, kvStorage interfaces.KeyValueStorage, logger arbor.ILogger, opts ...ServiceOption) *Service {
	s := &Service{
		sources: sources,
		kvSvc:   kvStorage,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger:   logger,
		cacheTTL: DefaultCacheTTL,
		limiter:  rate.NewLimiter(rate.Limit(2), 2),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load populates the in-memory symbol set, using the cached snapshot when
// fresh. A stale or missing cache triggers a download; if the download
// yields nothing and a stale snapshot exists, the stale snapshot is used as
// a fallback.
func (s *Service) Load(ctx context.Context) error {
	cached, err := s.getFromCache(ctx)
	if err == nil && cached != nil && s.isCacheFresh(cached) {
		s.logger.Debug().
			Int("symbols", len(cached.Symbols)).
			Str("fetched_at", cached.FetchedAt.Format(time.RFC3339)).
			Msg("Using cached ticker snapshot")
		s.setSymbols(cached.Symbols)
		return nil
	}

	symbols := s.download(ctx)
	if len(symbols) == 0 {
		if cached != nil && len(cached.Symbols) > 0 {
			s.logger.Warn().
				Str("fetched_at", cached.FetchedAt.Format(time.RFC3339)).
				Msg("Symbol download failed, falling back to stale snapshot")
			s.setSymbols(cached.Symbols)
			return nil
		}
		return fmt.Errorf("no ticker symbols available: all sources failed and no cached snapshot exists")
	}

	sort.Strings(symbols)
	s.setSymbols(symbols)

	if err := s.storeInCache(ctx, symbols); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to cache ticker snapshot")
	}

	s.logger.Info().Int("symbols", len(symbols)).Msg("Ticker registry loaded")
	return nil
}

// Contains reports whether symbol is a listed ticker. Pure lookup against
// the loaded snapshot.
func (s *Service) Contains(symbol string) bool {
	_, ok := s.symbols[symbol]
	return ok
}

// Size returns the number of symbols in the loaded snapshot.
func (s *Service) Size() int {
	return len(s.symbols)
}

// download fetches every configured source, merging their symbols. A failed
// source is logged and skipped so the other sources still contribute.
func (s *Service) download(ctx context.Context) []string {
	seen := make(map[string]struct{})
	for _, source := range s.sources {
		symbols, err := s.fetchSource(ctx, source)
		if err != nil {
			s.logger.Warn().
				Str("source", source.Name).
				Err(err).
				Msg("Failed to download symbol directory")
			continue
		}
		for _, symbol := range symbols {
			seen[symbol] = struct{}{}
		}
		s.logger.Debug().
			Str("source", source.Name).
			Int("symbols", len(symbols)).
			Msg("Symbol directory processed")
	}

	merged := make([]string, 0, len(seen))
	for symbol := range seen {
		merged = append(merged, symbol)
	}
	return merged
}

// fetchSource downloads and parses one pipe-delimited symbol directory.
func (s *Service) fetchSource(ctx context.Context, source common.RegistrySource) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, source.URL)
	}

	return parseSymbolFile(resp.Body)
}

func (s *Service) setSymbols(symbols []string) {
	set := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		set[symbol] = struct{}{}
	}
	s.symbols = set
}

// getFromCache retrieves the snapshot from KV storage.
func (s *Service) getFromCache(ctx context.Context) (*snapshot, error) {
	value, err := s.kvSvc.Get(ctx, SnapshotKey)
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached snapshot: %w", err)
	}

	return &snap, nil
}

// storeInCache stores the snapshot in KV storage.
func (s *Service) storeInCache(ctx context.Context, symbols []string) error {
	snap := snapshot{
		Symbols:   symbols,
		FetchedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	description := fmt.Sprintf("Ticker symbol snapshot, %d symbols fetched at %s",
		len(symbols), snap.FetchedAt.Format(time.RFC3339))

	return s.kvSvc.Set(ctx, SnapshotKey, string(data), description)
}

// isCacheFresh checks whether the cached snapshot is within TTL.
func (s *Service) isCacheFresh(snap *snapshot) bool {
	if snap == nil || len(snap.Symbols) == 0 {
		return false
	}
	return time.Since(snap.FetchedAt) < s.cacheTTL
}
