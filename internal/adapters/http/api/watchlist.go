package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// WatchlistHandler handles watch list requests.
type WatchlistHandler struct {
	deps Dependencies
}

// NewWatchlistHandler creates a new watchlist handler.
func NewWatchlistHandler(deps Dependencies) *WatchlistHandler {
	return &WatchlistHandler{deps: deps}
}

// watchRequest mirrors the request schema for POST /watchlist.
type watchRequest struct {
	CandidateIDs []string `json:"candidate_ids"`
}

type watchResponse struct {
	Watching []string `json:"watching"`
}

// HandleWatchlist routes GET and POST /watchlist.
func (h *WatchlistHandler) HandleWatchlist(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, watchResponse{Watching: h.deps.Watchlist()})
	case http.MethodPost:
		var req watchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if len(req.CandidateIDs) == 0 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrMissingIDs)
			return
		}
		if err := h.deps.Watch(r.Context(), req.CandidateIDs...); err != nil {
			if isNotFound(err) {
				writeError(w, http.StatusNotFound, "not_found", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusOK, watchResponse{Watching: h.deps.Watchlist()})
	default:
		http.NotFound(w, r)
	}
}

// HandleUnwatch handles DELETE /watchlist/{id}.
func (h *WatchlistHandler) HandleUnwatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/watchlist/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	h.deps.Unwatch(r.Context(), id)
	writeJSON(w, http.StatusOK, watchResponse{Watching: h.deps.Watchlist()})
}
