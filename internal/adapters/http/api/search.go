package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// SearchHandler handles search requests.
type SearchHandler struct {
	deps Dependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps Dependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// searchRequest mirrors the request schema for POST /search.
type searchRequest struct {
	Query        string   `json:"query"`
	CandidateIDs []string `json:"candidate_ids,omitempty"`
}

// HandleSearch handles POST /search requests.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if strings.TrimSpace(req.Query) == "" && len(req.CandidateIDs) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingQuery)
		return
	}

	result, err := h.deps.Search(r.Context(), req.Query, req.CandidateIDs)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
