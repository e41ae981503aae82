package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/app"
	"github.com/auspexlabs/auspex/internal/services/pipeline"
	"github.com/auspexlabs/auspex/internal/services/registry"
	"github.com/auspexlabs/auspex/internal/services/signals"
)

// SignalsHandler serves the ranked signal view and application status.
type SignalsHandler struct {
	app    *app.App
	logger arbor.ILogger
}

// NewSignalsHandler creates a new signals handler.
func NewSignalsHandler(application *app.App, logger arbor.ILogger) *SignalsHandler {
	return &SignalsHandler{
		app:    application,
		logger: logger,
	}
}

// SignalsHandler handles GET /api/signals?threshold=N&ticker=SYM.
// threshold defaults to the configured value and must stay in 1..5. With a
// ticker parameter the response is the drill-down article list instead of
// the ranked view.
func (h *SignalsHandler) SignalsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	threshold := h.app.Config.Signals.ConfidenceThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 5 {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid threshold %q: must be an integer in 1..5", raw))
			return
		}
		threshold = parsed
	}

	articles, err := h.app.Store.LoadAnalyzed()
	if err != nil {
		WriteError(w, http.StatusConflict, err.Error())
		return
	}

	if ticker := r.URL.Query().Get("ticker"); ticker != "" {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"ticker":   ticker,
			"articles": signals.ArticlesFor(ticker, articles),
		})
		return
	}

	reg, err := h.app.NewRegistry(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load ticker registry")
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	extractor := signals.NewExtractor(reg, threshold, h.logger)
	view := signals.Rank(signals.Score(extractor.Extract(articles)))

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"threshold":      threshold,
		"total_articles": len(articles),
		"bullish":        view.Bullish,
		"bearish":        view.Bearish,
	})
}

// StatusHandler handles GET /api/status - reports when each persisted
// document was last written and how many symbols the registry snapshot has.
func (h *SignalsHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	status := map[string]interface{}{
		"cleaned_updated_at":  formatModTime(pipeline.ModTime(h.app.Store.CleanedPath())),
		"analyzed_updated_at": formatModTime(pipeline.ModTime(h.app.Store.AnalyzedPath())),
	}

	if size, fetchedAt, err := registry.CachedSnapshot(r.Context(), h.app.KVStorage); err == nil {
		status["registry_symbols"] = size
		status["registry_fetched_at"] = formatModTime(fetchedAt)
	} else {
		status["registry_symbols"] = 0
		status["registry_fetched_at"] = "never"
	}

	WriteJSON(w, http.StatusOK, status)
}

func formatModTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format(time.RFC3339)
}
