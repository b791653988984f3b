package api

import (
	"net/http"
	"strings"
)

// SnapshotHandler handles snapshot requests.
type SnapshotHandler struct {
	deps Dependencies
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(deps Dependencies) *SnapshotHandler {
	return &SnapshotHandler{deps: deps}
}

// HandleSnapshot routes GET /snapshots/{id} and POST /snapshots/{id}/refresh.
func (h *SnapshotHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/snapshots/")

	switch {
	case r.Method == http.MethodGet && path != "" && !strings.Contains(path, "/"):
		h.get(w, r, path)
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/refresh"):
		id := strings.TrimSuffix(path, "/refresh")
		if id == "" || strings.Contains(id, "/") {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		h.refresh(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *SnapshotHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	snap, err := h.deps.GetSnapshot(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *SnapshotHandler) refresh(w http.ResponseWriter, r *http.Request, id string) {
	snap, err := h.deps.RefreshSnapshot(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
