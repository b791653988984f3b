package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/talentscan/talentscan/internal/adapters/http/api"
	"github.com/talentscan/talentscan/internal/adapters/http/swagger"
	service "github.com/talentscan/talentscan/internal/app"
	"github.com/talentscan/talentscan/internal/config"
	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/domain/scoring"
	"github.com/talentscan/talentscan/internal/storage"
	"github.com/talentscan/talentscan/internal/storage/memory"
	"github.com/talentscan/talentscan/internal/storage/postgres"
	"github.com/talentscan/talentscan/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Drop the default Go collectors; the service exposes its own metrics.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	roster, scores, alerts, closeStores, err := buildStores(ctx, cfg)
	if err != nil {
		log.Error(ctx, "failed to initialize storage", logger.Error(err))
		return
	}
	defer closeStores()

	opts := []service.Option{
		service.WithLogger(log),
		service.WithScoreStore(scores),
		service.WithAlertStore(alerts),
		service.WithSnapshotTTL(cfg.SnapshotTTL),
		service.WithMonitorInterval(cfg.MonitorInterval),
		service.WithFetchTimeout(cfg.FetchTimeout),
		service.WithAggregationConcurrency(cfg.AggregationConcurrency),
		service.WithAlertBuffer(cfg.AlertBuffer),
		service.WithIndexShards(cfg.IndexShards),
		service.WithDedupeSize(cfg.DedupeSize),
		service.WithChangeThresholds(cfg.SubScoreDelta, cfg.ActivityDelta),
	}
	if len(cfg.Weights) > 0 {
		opts = append(opts, service.WithWeightTable(weightTable(cfg.Weights)))
	}

	svc := service.New(roster, opts...)
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start service", logger.Error(err))
		return
	}
	defer func() {
		if err := svc.Stop(context.Background()); err != nil {
			log.Error(ctx, "service stop failed", logger.Error(err))
		}
	}()

	mux := http.NewServeMux()
	swagger.Register(ctx, mux)

	apiServer := api.NewServer(svc, func(ctx context.Context) any { return svc.Stats(ctx) })
	apiServer.SetMaxTopLimit(cfg.MaxTopLimit)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// buildStores selects pgx-backed stores when a DSN is configured and the
// in-memory ones otherwise. The returned closer is a no-op for memory.
func buildStores(ctx context.Context, cfg *config.Config) (storage.CandidateStore, storage.ScoreStore, storage.AlertStore, func(), error) {
	if cfg.PostgresDSN == "" {
		return memory.NewCandidateStore(), memory.NewScoreStore(), memory.NewAlertStore(), func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if err := pool.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, nil, err
	}
	return postgres.NewCandidateStore(pool),
		postgres.NewScoreStore(pool),
		postgres.NewAlertStore(pool),
		pool.Close,
		nil
}

// weightTable converts the string-keyed config override into the scoring
// weight table.
func weightTable(raw map[string]map[string]float64) scoring.WeightTable {
	table := make(scoring.WeightTable, len(raw))
	for dim, row := range raw {
		providers := make(map[model.Provider]float64, len(row))
		for p, w := range row {
			providers[model.Provider(p)] = w
		}
		table[scoring.Dimension(dim)] = providers
	}
	return table
}
