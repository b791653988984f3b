package seedroster

import "os"

// ShowHelp prints usage information for the seed-roster tool.
func ShowHelp() {
	os.Stdout.WriteString(`TalentScan Roster Seeder
========================

Generates a synthetic candidate roster and loads it into a running
TalentScan instance, then exercises search and the talent index.

Usage:
  go run cmd/seed-roster/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -candidates int
        Number of candidates to generate and submit (default 200)
  -query string
        Search query to run after seeding (default "senior go developer")
  -top int
        Number of talent index entries to fetch (default 25)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -seed int
        RNG seed for a reproducible roster (default: time-based)
  -output string
        Write the generated roster to this JSON file
  -dry-run
        Generate and write the roster without submitting it
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Seed 200 candidates into a local instance
  go run cmd/seed-roster/main.go

  # Reproducible large roster against a remote instance
  go run cmd/seed-roster/main.go -candidates 5000 -seed 42 -url http://talentscan:9080

  # Just write a roster file for later use
  go run cmd/seed-roster/main.go -candidates 1000 -dry-run -output roster.json
`)
}
