// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/talentscan/talentscan/internal/adapters/repository"
	"github.com/talentscan/talentscan/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Search(ctx context.Context, queryText string, candidateIDs []string) (*model.RankedResult, error)
	GetSnapshot(ctx context.Context, candidateID string) (*model.Snapshot, error)
	RefreshSnapshot(ctx context.Context, candidateID string) (*model.Snapshot, error)
	Watch(ctx context.Context, candidateIDs ...string) error
	Unwatch(ctx context.Context, candidateID string)
	Watchlist() []string
	SubscribeAlerts(name string, buffer int) (<-chan model.RiskAlert, func())
	TopTalent(ctx context.Context, n int) ([]Entry, error)
	CandidateRank(ctx context.Context, candidateID string) (Entry, error)
	AddCandidate(ctx context.Context, cand *model.Candidate) error
	GetCandidate(ctx context.Context, candidateID string) (*model.Candidate, error)
}

// StatsFunc supplies the stats payload without coupling to its shape.
type StatsFunc func(ctx context.Context) any

// Entry mirrors the read shape returned by talent index queries.
type Entry = repository.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	searchHandler     *SearchHandler
	snapshotHandler   *SnapshotHandler
	watchlistHandler  *WatchlistHandler
	candidatesHandler *CandidatesHandler
	alertsHandler     *AlertsHandler
	talentHandler     *TalentHandler
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, stats StatsFunc) *Server {
	return &Server{
		searchHandler:     NewSearchHandler(deps),
		snapshotHandler:   NewSnapshotHandler(deps),
		watchlistHandler:  NewWatchlistHandler(deps),
		candidatesHandler: NewCandidatesHandler(deps),
		alertsHandler:     NewAlertsHandler(deps),
		talentHandler:     NewTalentHandler(deps),
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(stats),
	}
}

// SetMaxTopLimit caps the ?limit parameter on the top-talent route.
func (s *Server) SetMaxTopLimit(n int) {
	s.talentHandler.SetMaxLimit(n)
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/snapshots/", MetricsMiddleware(s.snapshotHandler.HandleSnapshot, "snapshots"))
	mux.HandleFunc("/watchlist", MetricsMiddleware(s.watchlistHandler.HandleWatchlist, "watchlist"))
	mux.HandleFunc("/watchlist/", MetricsMiddleware(s.watchlistHandler.HandleUnwatch, "watchlist"))
	mux.HandleFunc("/candidates", MetricsMiddleware(s.candidatesHandler.HandleCandidates, "candidates"))
	mux.HandleFunc("/candidates/", MetricsMiddleware(s.candidatesHandler.HandleCandidate, "candidates"))
	mux.HandleFunc("/alerts/ws", s.alertsHandler.HandleAlertStream)
	mux.HandleFunc("/talent/top", MetricsMiddleware(s.talentHandler.HandleTop, "talent_top"))
	mux.HandleFunc("/talent/rank/", MetricsMiddleware(s.talentHandler.HandleRank, "talent_rank"))
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
