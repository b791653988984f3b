package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/pkg/logger"
)

// CandidatesHandler manages roster entries.
type CandidatesHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewCandidatesHandler creates a new candidates handler.
func NewCandidatesHandler(deps Dependencies) *CandidatesHandler {
	return &CandidatesHandler{
		deps:   deps,
		logger: logger.Get().Named("api.candidates"),
	}
}

// HandleCandidates handles POST /candidates.
func (h *CandidatesHandler) HandleCandidates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var cand model.Candidate
	if err := json.NewDecoder(r.Body).Decode(&cand); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err)
		return
	}
	if cand.ID == "" || cand.Name == "" {
		writeError(w, http.StatusBadRequest, "invalid_candidate", errors.New("id and name are required"))
		return
	}

	if err := h.deps.AddCandidate(r.Context(), &cand); err != nil {
		if isDuplicate(err) {
			writeError(w, http.StatusConflict, "duplicate_candidate", err)
			return
		}
		h.logger.Error(r.Context(), "failed to add candidate",
			logger.String("candidate_id", cand.ID),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": cand.ID})
}

// HandleCandidate handles GET /candidates/{id}.
func (h *CandidatesHandler) HandleCandidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/candidates/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "invalid_path", ErrBadRequest)
		return
	}

	cand, err := h.deps.GetCandidate(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "candidate_not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, cand)
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate")
}
