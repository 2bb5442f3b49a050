// Package api declares HTTP contracts and route registration helpers for
// the serve mode.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/pbp/internal/domain/pipeline"
)

// Dependencies required by HTTP handlers. An interface bundle keeps the
// handler layer loosely coupled to the app service.
type Dependencies interface {
	// Scrape runs the full normalization pipeline for one game.
	Scrape(ctx context.Context, gameID int) (*pipeline.Projection, error)
}

// Server wires HTTP routes for the scraper API.
type Server struct {
	healthHandler *HealthHandler
	gameHandler   *GameHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		gameHandler:   NewGameHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/games/", MetricsMiddleware(s.gameHandler.HandleGetGame, "games"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
