package api

import (
	"net/http"
	"strconv"
	"strings"
)

// defaultTopLimit applies when GET /talent/top omits ?limit.
const defaultTopLimit = 10

// TalentHandler handles talent index requests.
type TalentHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewTalentHandler creates a new talent handler.
func NewTalentHandler(deps Dependencies) *TalentHandler {
	return &TalentHandler{deps: deps, maxLimit: 100}
}

// SetMaxLimit caps the ?limit parameter.
func (h *TalentHandler) SetMaxLimit(n int) {
	if n > 0 {
		h.maxLimit = n
	}
}

type topResponse struct {
	Entries []Entry `json:"entries"`
}

// HandleTop handles GET /talent/top?limit= requests.
func (h *TalentHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		limit = n
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	entries, err := h.deps.TopTalent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	writeJSON(w, http.StatusOK, topResponse{Entries: entries})
}

// HandleRank handles GET /talent/rank/{candidate_id} requests.
func (h *TalentHandler) HandleRank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/talent/rank/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	entry, err := h.deps.CandidateRank(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
