package oracle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/models"
)

// stubProvider returns a fixed response or error.
type stubProvider struct {
	response string
	err      error
	blocks   bool
}

func (p *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.blocks {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *stubProvider) Type() ProviderType { return "stub" }
func (p *stubProvider) Close() error       { return nil }

func TestAnalyze_Success(t *testing.T) {
	svc := NewService(&stubProvider{response: validPayload}, time.Minute, arbor.NewLogger())

	analysis := svc.Analyze(context.Background(), "Apple beats earnings")

	assert.False(t, analysis.Failed())
	assert.Equal(t, models.SentimentPositive, analysis.Sentiment)
}

func TestAnalyze_FencedResponse(t *testing.T) {
	svc := NewService(&stubProvider{response: "```json\n" + validPayload + "\n```"}, time.Minute, arbor.NewLogger())

	analysis := svc.Analyze(context.Background(), "text")
	assert.False(t, analysis.Failed())
}

func TestAnalyze_ProviderErrorBecomesFailure(t *testing.T) {
	svc := NewService(&stubProvider{err: errors.New("connection refused")}, time.Minute, arbor.NewLogger())

	analysis := svc.Analyze(context.Background(), "text")

	assert.True(t, analysis.Failed())
	assert.Contains(t, analysis.Err, "connection refused")
}

func TestAnalyze_MalformedResponseBecomesFailure(t *testing.T) {
	svc := NewService(&stubProvider{response: "not json at all"}, time.Minute, arbor.NewLogger())

	analysis := svc.Analyze(context.Background(), "text")
	assert.True(t, analysis.Failed())
}

func TestAnalyze_TimeoutBecomesFailure(t *testing.T) {
	svc := NewService(&stubProvider{blocks: true}, 20*time.Millisecond, arbor.NewLogger())

	analysis := svc.Analyze(context.Background(), "text")
	assert.True(t, analysis.Failed())
}
