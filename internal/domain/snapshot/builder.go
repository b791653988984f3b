package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/domain/scoring"
	"github.com/talentscan/talentscan/pkg/logger"
	"github.com/talentscan/talentscan/pkg/metrics"
)

// Aggregator assembles a signal bundle for a candidate.
type Aggregator interface {
	Aggregate(ctx context.Context, candidate *model.Candidate) (*model.SignalBundle, error)
}

// Builder turns one candidate into a fresh snapshot: aggregate, compose,
// then derive availability, badges, risks and the narrative summary.
type Builder struct {
	agg      Aggregator
	composer *scoring.Composer
	logger   logger.Logger
}

// NewBuilder creates a snapshot builder.
func NewBuilder(agg Aggregator, composer *scoring.Composer, opts ...BuilderOption) *Builder {
	b := &Builder{
		agg:      agg,
		composer: composer,
		logger:   logger.Get().Named("snapshot"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build regenerates the snapshot wholesale. The only hard failure is the
// aggregation itself (ctx cancellation); every derivation rule is recovered
// individually so one broken rule skips its output instead of aborting.
func (b *Builder) Build(ctx context.Context, cand *model.Candidate) (*model.Snapshot, error) {
	if cand == nil || cand.ID == "" {
		return nil, ErrNoCandidate
	}

	start := time.Now()
	bundle, err := b.agg.Aggregate(ctx, cand)
	if err != nil {
		return nil, fmt.Errorf("aggregate signals: %w", err)
	}

	score := b.composer.Compose(bundle)
	availability := b.composer.ExtractAvailability(bundle)
	badges := collectBadges(ctx, b.logger, cand, bundle)
	risks := collectRisks(ctx, b.logger, cand, bundle, score)
	radar := buildRadar(bundle, score)
	summary := buildSummary(cand, bundle, score, risks)

	snap := &model.Snapshot{
		CandidateID:  cand.ID,
		Summary:      summary,
		Radar:        radar,
		Badges:       badges,
		Risks:        risks,
		Availability: availability,
		Score:        score,
		GeneratedAt:  time.Now().UTC(),
		Confidence:   score.Confidence,
	}

	metrics.RecordSnapshotBuildDuration(float64(time.Since(start).Milliseconds()))
	b.logger.Debug(ctx, "snapshot built",
		logger.String("candidate", cand.ID),
		logger.Float64("overall", score.Overall),
		logger.Int("badges", len(badges)),
		logger.Int("risks", len(risks)),
	)
	return snap, nil
}
