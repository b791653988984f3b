package seedroster

import (
	"context"
	"fmt"

	"github.com/talentscan/talentscan/pkg/logger"
)

// verifyResults sanity-checks the search result and the talent index head
// after a seeding pass.
func verifyResults(ctx context.Context, config *Config, result *searchResponse, top []indexEntry) error {
	log := logger.Get()
	log.Info(ctx, "verifying results")

	if len(result.Candidates) == 0 {
		return fmt.Errorf("search returned no candidates")
	}

	// Search results must be rank-ordered by descending match score.
	for i := 1; i < len(result.Candidates); i++ {
		prev, cur := result.Candidates[i-1], result.Candidates[i]
		if cur.MatchScore > prev.MatchScore {
			return fmt.Errorf("search results out of order: rank %d scores above rank %d", cur.Rank, prev.Rank)
		}
	}

	if err := verifyIndexConsistency(top); err != nil {
		return err
	}

	displayTopTalent(ctx, result, top, config.Verbose)

	log.Info(ctx, "result verification completed")
	return nil
}

// verifyIndexConsistency checks ordering and rank numbering of the index head.
func verifyIndexConsistency(top []indexEntry) error {
	if len(top) == 0 {
		return fmt.Errorf("empty talent index")
	}

	for i, entry := range top {
		if entry.Rank != i+1 {
			return fmt.Errorf("index entry %d carries rank %d", i, entry.Rank)
		}
		if i > 0 && entry.Overall > top[i-1].Overall {
			return fmt.Errorf("talent index not sorted: entry %d scores above entry %d", i, i-1)
		}
	}
	return nil
}

// displayTopTalent shows the head of both views after a seeding pass.
func displayTopTalent(ctx context.Context, result *searchResponse, top []indexEntry, verbose bool) {
	log := logger.Get()

	n := 10
	if len(result.Candidates) < n {
		n = len(result.Candidates)
	}
	for i := 0; i < n; i++ {
		c := result.Candidates[i]
		log.Info(ctx, "search result",
			logger.Int("rank", c.Rank),
			logger.String("candidate", c.Name),
			logger.Float64("matchScore", c.MatchScore))
	}

	m := n
	if len(top) < m {
		m = len(top)
	}
	for i := 0; i < m; i++ {
		e := top[i]
		log.Info(ctx, "talent index entry",
			logger.Int("rank", e.Rank),
			logger.String("candidate", e.Name),
			logger.Float64("overall", e.Overall))
	}

	if verbose && len(top) > 0 {
		sum := 0.0
		for _, e := range top {
			sum += e.Overall
		}
		log.Info(ctx, "index score statistics",
			logger.Float64("average", sum/float64(len(top))),
			logger.Float64("maximum", top[0].Overall),
			logger.Float64("minimum", top[len(top)-1].Overall))
	}
}
