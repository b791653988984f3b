package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/talentscan/talentscan/internal/seedroster"
	"github.com/talentscan/talentscan/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumCandidates = 200
	defaultTopN          = 25
	defaultWorkers       = 2 // multiplier for runtime.NumCPU()
	defaultTimeout       = 30 * time.Second
	defaultRunTimeout    = 10 * time.Minute
	defaultQuery         = "senior go developer"
)

func main() {
	var (
		baseURL       = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numCandidates = flag.Int("candidates", defaultNumCandidates, "Number of candidates to generate and submit")
		query         = flag.String("query", defaultQuery, "Search query to run after seeding")
		topN          = flag.Int("top", defaultTopN, "Number of talent index entries to fetch")
		workers       = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout       = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed          = flag.Int64("seed", 0, "RNG seed for a reproducible roster (0 = time-based)")
		outputFile    = flag.String("output", "", "Write the generated roster to this JSON file")
		dryRun        = flag.Bool("dry-run", false, "Generate and write the roster without submitting it")
		verbose       = flag.Bool("verbose", false, "Enable verbose logging")
		help          = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seedroster.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seedroster.Config{
		BaseURL:       *baseURL,
		NumCandidates: *numCandidates,
		SearchQuery:   *query,
		TopN:          *topN,
		Workers:       *workers,
		Timeout:       *timeout,
		Seed:          *seed,
		OutputFile:    *outputFile,
		DryRun:        *dryRun,
		Verbose:       *verbose,
	}

	if err := seedroster.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seeding failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
