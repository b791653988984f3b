package ranking

import "github.com/talentscan/talentscan/internal/domain/model"

// maxRefinements caps the suggestion list.
const maxRefinements = 3

// refinementTemplates maps each missing category to its fixed suggestion,
// checked in category-importance order.
var refinementTemplates = []struct {
	category model.RequirementCategory
	text     string
}{
	{model.CategorySkills, `Add specific skills (for example "React" or "Go") to sharpen technical matching.`},
	{model.CategoryExperience, `Specify a seniority level such as "senior" or "staff" to filter by experience.`},
	{model.CategoryLocation, `Add a location or "remote" to narrow the candidate pool.`},
	{model.CategoryIndustry, `Mention an industry like "fintech" or "healthcare" to boost domain fits.`},
	{model.CategoryCulture, `Describe team culture traits (for example "collaborative" or "mentorship").`},
}

// refinements suggests query additions for categories the original query
// left out. Deterministic templates, capped at maxRefinements entries;
// categories the query already covers are never suggested.
func refinements(interp *model.QueryInterpretation) []string {
	var out []string
	for _, tpl := range refinementTemplates {
		if interp.HasCategory(tpl.category) {
			continue
		}
		out = append(out, tpl.text)
		if len(out) == maxRefinements {
			break
		}
	}
	return out
}
