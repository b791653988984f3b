package monitor

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// Diff thresholds. A change below these is noise, not a signal.
const (
	defaultSubScoreDelta  = 1.5
	defaultActivityDelta  = 3
	statusKind            = "status_update"
	availabilityThreshold = 0.5
)

// diffBundles compares two polls of the same candidate and returns the
// material changes. A nil previous bundle is the baseline poll and never
// produces changes.
func diffBundles(prev, next *model.SignalBundle, prevAvail, nextAvail []model.AvailabilitySignal, subScoreDelta float64, activityDelta int) []model.ChangeDetail {
	if prev == nil || next == nil {
		return nil
	}

	var changes []model.ChangeDetail

	for _, p := range model.AllProviders() {
		before, hadBefore := prev.Profile(p)
		after, hasAfter := next.Profile(p)

		// A provider that errored on a poll is unknown for that poll, not
		// absent. A transient rate limit or timeout must never read as the
		// provider appearing or vanishing.
		if _, errored := next.Errors[p]; errored && !hasAfter {
			continue
		}
		if _, errored := prev.Errors[p]; errored && !hadBefore {
			continue
		}

		switch {
		case !hadBefore && hasAfter:
			changes = append(changes, model.ChangeDetail{
				Kind:     "provider_appeared",
				Provider: p,
				Detail:   fmt.Sprintf("%s signals became available", p),
			})
			continue
		case hadBefore && !hasAfter:
			changes = append(changes, model.ChangeDetail{
				Kind:     "provider_disappeared",
				Provider: p,
				Detail:   fmt.Sprintf("%s signals stopped reporting", p),
			})
			continue
		case !hadBefore && !hasAfter:
			continue
		}

		if d := after.SubScore - before.SubScore; d >= subScoreDelta || d <= -subScoreDelta {
			changes = append(changes, model.ChangeDetail{
				Kind:     "subscore_shift",
				Provider: p,
				Detail:   fmt.Sprintf("%s sub-score moved by %.1f", p, d),
				Before:   fmt.Sprintf("%.1f", before.SubScore),
				After:    fmt.Sprintf("%.1f", after.SubScore),
			})
		}

		if d := len(after.RecentActivity) - len(before.RecentActivity); d >= activityDelta || d <= -activityDelta {
			changes = append(changes, model.ChangeDetail{
				Kind:     "activity_shift",
				Provider: p,
				Detail:   fmt.Sprintf("%s activity volume changed by %d items", p, d),
				Before:   fmt.Sprintf("%d", len(before.RecentActivity)),
				After:    fmt.Sprintf("%d", len(after.RecentActivity)),
			})
		}

		if before, after := statusLine(before), statusLine(after); after != "" && after != before {
			changes = append(changes, model.ChangeDetail{
				Kind:     "status_change",
				Provider: p,
				Detail:   fmt.Sprintf("%s status line changed", p),
				Before:   before,
				After:    after,
			})
		}
	}

	// New availability signal types count as changes regardless of which
	// provider surfaced them.
	prevTypes := make(map[model.AvailabilityType]bool, len(prevAvail))
	for _, a := range prevAvail {
		prevTypes[a.Type] = true
	}
	for _, a := range nextAvail {
		if prevTypes[a.Type] || a.Confidence < availabilityThreshold {
			continue
		}
		prevTypes[a.Type] = true
		changes = append(changes, model.ChangeDetail{
			Kind:     "availability_signal",
			Provider: a.Provider,
			Detail:   fmt.Sprintf("new availability signal: %s", a.Type),
			After:    a.Detail,
		})
	}

	return changes
}

// statusLine returns the most recent status update detail, if any.
func statusLine(p *model.SourceProfile) string {
	line := ""
	for _, item := range p.RecentActivity {
		if item.Kind == statusKind {
			line = item.Detail
		}
	}
	return line
}

// severityFor grades a change set by its strongest change kind.
func severityFor(changes []model.ChangeDetail) model.Severity {
	sev := model.SeverityLow
	for _, c := range changes {
		switch c.Kind {
		case "availability_signal", "status_change":
			return model.SeverityHigh
		case "subscore_shift", "provider_disappeared":
			sev = model.SeverityMedium
		}
	}
	return sev
}

// fingerprint identifies an unresolved change set so identical diffs are
// not re-alerted every tick.
func fingerprint(candidateID string, changes []model.ChangeDetail) string {
	keys := make([]string, 0, len(changes))
	for _, c := range changes {
		keys = append(keys, fmt.Sprintf("%s|%s|%s|%s", c.Kind, c.Provider, c.Before, c.After))
	}
	sort.Strings(keys)

	h := fnv.New64a()
	_, _ = h.Write([]byte(candidateID))
	for _, k := range keys {
		_, _ = h.Write([]byte(k))
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
