package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/pbp/internal/adapters/export"
	"github.com/okian/pbp/internal/adapters/feed"
)

// GameHandler serves normalized play-by-play tables.
type GameHandler struct {
	deps Dependencies
}

// NewGameHandler creates a new game handler.
func NewGameHandler(deps Dependencies) *GameHandler {
	return &GameHandler{deps: deps}
}

// HandleGetGame handles GET /games/{id}/events requests. The table is
// returned as JSON by default, or CSV with ?format=csv.
func (h *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_game"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	gameID, err := gameIDFromPath(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
		return
	}

	table, err := h.deps.Scrape(r.Context(), gameID)
	if err != nil {
		switch {
		case errors.Is(err, feed.ErrGameNotFound):
			writeError(w, http.StatusNotFound, "game_not_found", err)
		case errors.Is(err, feed.ErrFeedDecode), errors.Is(err, feed.ErrMetadataFetch):
			writeError(w, http.StatusBadGateway, "upstream_error", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal", fmt.Errorf("%s: %w: %w", op, ErrScrape, err))
		}
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = export.WriteCSV(w, table)
		return
	}
	writeJSON(w, http.StatusOK, table.Maps())
}

// gameIDFromPath extracts the id from /games/{id}/events.
func gameIDFromPath(path string) (int, error) {
	rest := strings.TrimPrefix(path, "/games/")
	rest = strings.TrimSuffix(rest, "/events")
	rest = strings.Trim(rest, "/")
	id, err := strconv.Atoi(rest)
	if err != nil || id <= 0 {
		return 0, errors.New("game id must be a positive integer")
	}
	return id, nil
}
