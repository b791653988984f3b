package query

import (
	"strings"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// Narrative synthesis is a deterministic template system: fragments are
// keyed to which requirement categories were found and concatenated in a
// fixed order, so identical queries always produce identical narratives.

func values(interp *model.QueryInterpretation, c model.RequirementCategory) []string {
	reqs := interp.ByCategory(c)
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.Value
	}
	return out
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

func buildIntent(interp *model.QueryInterpretation) string {
	var parts []string

	if exp := values(interp, model.CategoryExperience); len(exp) > 0 {
		parts = append(parts, "Looking for a "+joinNatural(exp)+"-level professional")
	} else {
		parts = append(parts, "Looking for a professional")
	}
	if skills := values(interp, model.CategorySkills); len(skills) > 0 {
		parts = append(parts, "skilled in "+joinNatural(skills))
	}
	if locs := values(interp, model.CategoryLocation); len(locs) > 0 {
		parts = append(parts, "based in "+joinNatural(locs))
	}
	if inds := values(interp, model.CategoryIndustry); len(inds) > 0 {
		parts = append(parts, "with "+joinNatural(inds)+" background")
	}
	if cult := values(interp, model.CategoryCulture); len(cult) > 0 {
		parts = append(parts, "who values "+joinNatural(cult))
	}

	if len(parts) == 1 && len(interp.Requirements) == 0 {
		return "General talent search with no specific constraints detected."
	}
	return strings.Join(parts, ", ") + "."
}

func buildStrategy(interp *model.QueryInterpretation) string {
	var parts []string

	if skills := values(interp, model.CategorySkills); len(skills) > 0 {
		parts = append(parts, "Weight code-hosting and Q&A signals toward demonstrated depth in "+joinNatural(skills)+".")
	} else {
		parts = append(parts, "No specific skills detected; rank on overall technical signal strength.")
	}
	if interp.HasCategory(model.CategoryExperience) {
		parts = append(parts, "Filter the shortlist by the requested seniority band.")
	}
	if interp.HasCategory(model.CategoryLocation) {
		parts = append(parts, "Prefer candidates matching the requested location.")
	}
	if interp.HasCategory(model.CategoryIndustry) {
		parts = append(parts, "Boost candidates with matching industry exposure.")
	}
	if interp.HasCategory(model.CategoryCulture) {
		parts = append(parts, "Score cultural-fit signals from community engagement.")
	}
	parts = append(parts, "Degrade gracefully when a candidate lacks a platform profile.")

	return strings.Join(parts, " ")
}
