package seedroster

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/pkg/logger"
)

// Pools for synthetic roster generation.
var (
	firstNames = []string{
		"Ada", "Grace", "Alan", "Linus", "Margaret", "Dennis", "Barbara",
		"Ken", "Radia", "Donald", "Frances", "Edsger", "Katherine", "John",
		"Hedy", "Claude", "Annie", "Tim", "Mary", "Vint",
	}
	lastNames = []string{
		"Hoffman", "Okafor", "Nakamura", "Silva", "Novak", "Fischer",
		"Iyer", "Larsen", "Moreau", "Petrov", "Osei", "Lindqvist",
		"Castillo", "Nguyen", "Haddad", "Kovacs",
	}
	skillPool = []string{
		"go", "python", "rust", "typescript", "react", "kubernetes",
		"postgres", "kafka", "terraform", "machine learning", "graphql",
		"java", "c++", "aws", "data engineering",
	}
	locationPool = []string{
		"london", "berlin", "amsterdam", "lisbon", "new york",
		"san francisco", "toronto", "singapore", "remote",
	}
	industryPool = []string{
		"fintech", "healthcare", "developer tools", "e-commerce",
		"gaming", "logistics",
	}
	traitPool = []string{
		"mentorship", "open source", "remote-first", "startup",
		"pair programming",
	}
)

// Per-candidate generation bounds.
const (
	maxExperienceYears = 20.0
	minTenureYears     = 0.5
	maxTenureYears     = 6.0
	minSkills          = 1
	maxSkills          = 6
	identityChance     = 0.6 // per-provider odds of having a handle
)

// generateRoster creates the configured number of synthetic candidates.
// The same seed always produces the same roster.
func generateRoster(ctx context.Context, config *Config, stats *Stats) []*model.Candidate {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger.Get().Info(ctx, "generating synthetic roster",
		logger.Int("candidates", config.NumCandidates),
		logger.Int("seed", int(seed)))

	roster := make([]*model.Candidate, config.NumCandidates)
	for i := range roster {
		roster[i] = generateCandidate(rng, i)
	}

	stats.CandidatesGenerated = len(roster)
	return roster
}

func generateCandidate(rng *rand.Rand, ordinal int) *model.Candidate {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	name := first + " " + last
	handle := fmt.Sprintf("%s-%s-%d", strings.ToLower(first), strings.ToLower(last), ordinal)

	cand := &model.Candidate{
		ID:              uuid.NewString(),
		Name:            name,
		Location:        locationPool[rng.Intn(len(locationPool))],
		ExperienceYears: round1(rng.Float64() * maxExperienceYears),
		AvgTenureYears:  round1(minTenureYears + rng.Float64()*(maxTenureYears-minTenureYears)),
		Skills:          sample(rng, skillPool, minSkills+rng.Intn(maxSkills-minSkills+1)),
		Industries:      sample(rng, industryPool, 1+rng.Intn(2)),
		CultureTraits:   sample(rng, traitPool, rng.Intn(3)),
		Identities:      map[model.Provider]string{},
	}
	cand.Headline = cand.Skills[0] + " engineer"

	for _, p := range model.AllProviders() {
		if rng.Float64() < identityChance {
			cand.Identities[p] = handle
		}
	}
	// Every candidate keeps at least one signal source.
	if len(cand.Identities) == 0 {
		cand.Identities[model.ProviderCodeHost] = handle
	}
	return cand
}

// sample picks n distinct entries from pool, preserving pool order bias-free.
func sample(rng *rand.Rand, pool []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	idx := rng.Perm(len(pool))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

func round1(f float64) float64 {
	return float64(int(f*10)) / 10
}
