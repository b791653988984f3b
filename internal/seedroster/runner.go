package seedroster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/pkg/logger"
)

const directoryPermission = 0750

// Run executes a complete seeding pass: generate, optionally persist the
// roster, load it into a running instance, then exercise search and the
// talent index.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting roster seeding",
		logger.String("baseURL", config.BaseURL),
		logger.Int("candidates", config.NumCandidates),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("query", config.SearchQuery),
		logger.Any("dryRun", config.DryRun))

	roster := generateRoster(ctx, config, stats)

	if config.OutputFile != "" || config.DryRun {
		if err := saveRosterToFile(ctx, config, roster); err != nil {
			if config.DryRun {
				return fmt.Errorf("roster save failed: %w", err)
			}
			log.Warn(ctx, "failed to save roster to file", logger.Error(err))
		}
	}
	if config.DryRun {
		log.Info(ctx, "dry run complete; nothing submitted")
		return nil
	}

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	if err := submitRoster(ctx, config, roster, stats); err != nil {
		return fmt.Errorf("roster submission failed: %w", err)
	}

	result, err := runSearch(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	top, err := fetchTopTalent(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("talent index retrieval failed: %w", err)
	}

	if err := verifyResults(ctx, config, result, top); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	log.Info(ctx, "seeding completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	log := logger.Get()
	log.Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	resp, err := client.get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer drainAndClose(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	log.Info(ctx, "service is healthy")
	return nil
}

// saveRosterToFile writes the generated roster as a JSON array.
func saveRosterToFile(ctx context.Context, config *Config, roster []*model.Candidate) error {
	if len(roster) == 0 {
		return fmt.Errorf("no candidates to save")
	}

	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_roster_" + timestamp + ".json"
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(roster); err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	logger.Get().Info(ctx, "roster saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final seeding statistics.
func displayFinalStats(stats *Stats) {
	var successRate, candidatesPerSecond float64

	if stats.CandidatesSubmitted > 0 {
		successRate = float64(stats.CandidatesCreated) / float64(stats.CandidatesSubmitted) * 100
	}
	if stats.Duration > 0 {
		candidatesPerSecond = float64(stats.CandidatesSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("candidatesGenerated", stats.CandidatesGenerated),
		logger.Int("candidatesSubmitted", stats.CandidatesSubmitted),
		logger.Int("candidatesCreated", stats.CandidatesCreated),
		logger.Int("candidatesDuplicate", stats.CandidatesDuplicate),
		logger.Int("candidatesFailed", stats.CandidatesFailed),
		logger.Int("searchResults", stats.SearchResults),
		logger.Int("indexEntries", stats.IndexEntries),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("candidatesPerSecond", candidatesPerSecond))
}
