// Package handlers contains the HTTP handlers for the API surface.
package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/auspexlabs/auspex/internal/app"
)

// PipelineHandler exposes the fetch and analysis stages over HTTP.
type PipelineHandler struct {
	app    *app.App
	logger arbor.ILogger
}

// NewPipelineHandler creates a new pipeline handler.
func NewPipelineHandler(application *app.App, logger arbor.ILogger) *PipelineHandler {
	return &PipelineHandler{
		app:    application,
		logger: logger,
	}
}

// FetchHandler handles POST /api/fetch - runs the fetch stage synchronously.
func (h *PipelineHandler) FetchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	source, err := h.app.NewArticleSource(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to build news source")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	count, err := h.app.Pipeline.RunFetch(r.Context(), source)
	if err != nil {
		h.logger.Error().Err(err).Msg("Fetch stage failed")
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"articles": count,
	})
}

// AnalyzeHandler handles POST /api/analyze - runs the analysis stage
// synchronously over the persisted cleaned batch.
func (h *PipelineHandler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	oracle, err := h.app.NewOracle(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to build sentiment oracle")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer oracle.Close()

	count, err := h.app.Pipeline.RunAnalysis(r.Context(), oracle)
	if err != nil {
		h.logger.Error().Err(err).Msg("Analysis stage failed")
		WriteError(w, http.StatusConflict, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"articles": count,
	})
}
