package server

import (
	"net/http"

	"github.com/auspexlabs/auspex/internal/handlers"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	apiHandler := handlers.NewAPIHandler(s.app.Logger)
	pipelineHandler := handlers.NewPipelineHandler(s.app, s.app.Logger)
	signalsHandler := handlers.NewSignalsHandler(s.app, s.app.Logger)

	// Pipeline stages
	mux.HandleFunc("/api/fetch", pipelineHandler.FetchHandler)     // POST
	mux.HandleFunc("/api/analyze", pipelineHandler.AnalyzeHandler) // POST

	// Signal views and status
	mux.HandleFunc("/api/signals", signalsHandler.SignalsHandler) // GET ?threshold=N&ticker=SYM
	mux.HandleFunc("/api/status", signalsHandler.StatusHandler)   // GET

	// System
	mux.HandleFunc("/api/version", apiHandler.VersionHandler)
	mux.HandleFunc("/api/health", apiHandler.HealthHandler)

	return mux
}
