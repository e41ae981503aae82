package oracle

import (
	"context"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/models"
)

// Service wraps a Provider behind the SentimentOracle contract: Analyze
// always returns a well-formed analysis value, folding transport and parse
// failures into the failure variant so a bad provider response never aborts
// a batch.
type Service struct {
	provider Provider
	timeout  time.Duration
	logger   arbor.ILogger
}

// NewService creates a new oracle service around a provider. A non-zero
// timeout bounds each provider call.
func NewService(provider Provider, timeout time.Duration, logger arbor.ILogger) *Service {
	return &Service{
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
}

// Analyze produces a structured sentiment analysis for one article's
// cleaned content.
func (s *Service) Analyze(ctx context.Context, cleanedText string) models.Analysis {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.provider.Generate(ctx, buildPrompt(cleanedText))
	if err != nil {
		s.logger.Warn().
			Str("provider", string(s.provider.Type())).
			Err(err).
			Msg("Provider call failed, recording failure analysis")
		return models.FailedAnalysis(err.Error())
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		s.logger.Warn().
			Str("provider", string(s.provider.Type())).
			Err(err).
			Msg("Provider response rejected, recording failure analysis")
		return models.FailedAnalysis(err.Error())
	}

	return analysis
}

// Close releases the underlying provider.
func (s *Service) Close() error {
	return s.provider.Close()
}
