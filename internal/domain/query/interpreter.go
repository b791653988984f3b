// Package query interprets free-text hiring queries into structured,
// weighted requirements.
//
// Interpretation is a deterministic rule system over curated vocabularies,
// intentionally not a generative model: the same text always produces the
// same requirements, confidence, and narratives. An empty or low-confidence
// interpretation is a valid result, never an error.
package query

import (
	"math"
	"strings"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// Fixed importance per requirement category, skills highest.
var categoryImportance = map[model.RequirementCategory]float64{
	model.CategorySkills:     1.0,
	model.CategoryExperience: 0.8,
	model.CategoryLocation:   0.7,
	model.CategoryIndustry:   0.6,
	model.CategoryCulture:    0.4,
}

// Interpreter extracts requirements from query text.
type Interpreter struct{}

// NewInterpreter creates an Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Interpret parses the query into weighted requirements plus intent and
// strategy narratives.
func (i *Interpreter) Interpret(text string) model.QueryInterpretation {
	normalized := normalize(text)

	interp := model.QueryInterpretation{Query: text}
	interp.Requirements = append(interp.Requirements, extract(normalized, model.CategorySkills, skillVocab)...)
	interp.Requirements = append(interp.Requirements, extract(normalized, model.CategoryExperience, seniorityVocab)...)
	interp.Requirements = append(interp.Requirements, extract(normalized, model.CategoryLocation, locationVocab)...)
	interp.Requirements = append(interp.Requirements, extract(normalized, model.CategoryIndustry, industryVocab)...)
	interp.Requirements = append(interp.Requirements, extract(normalized, model.CategoryCulture, cultureVocab)...)

	interp.Confidence = confidence(&interp)
	interp.Intent = buildIntent(&interp)
	interp.Strategy = buildStrategy(&interp)
	return interp
}

// normalize lowercases and collapses separators so phrase matching can use
// space-delimited scanning.
func normalize(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower) + 2)
	b.WriteByte(' ')
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	b.WriteByte(' ')
	return b.String()
}

// extract scans the vocabulary in order and emits one requirement per
// matched canonical value. Longest-phrase-first vocab ordering plus the
// consumed-phrase rewrite keep "machine learning" from also matching "ml".
func extract(normalized string, category model.RequirementCategory, vocab []vocabEntry) []model.Requirement {
	var out []model.Requirement
	seen := make(map[string]bool)
	remaining := normalized
	for _, entry := range vocab {
		needle := " " + entry.phrase + " "
		if !strings.Contains(remaining, needle) {
			continue
		}
		remaining = strings.ReplaceAll(remaining, needle, " ")
		if seen[entry.canonical] {
			continue
		}
		seen[entry.canonical] = true
		out = append(out, model.Requirement{
			Category:   category,
			Value:      entry.canonical,
			Importance: categoryImportance[category],
			Provenance: model.ProvenanceExplicit,
		})
	}
	return out
}

// confidence grows with category coverage and requirement count, capped
// below certainty since keyword extraction never sees full intent.
func confidence(interp *model.QueryInterpretation) float64 {
	if len(interp.Requirements) == 0 {
		return 0.1
	}
	categories := 0
	for _, c := range allCategories() {
		if interp.HasCategory(c) {
			categories++
		}
	}
	raw := 0.2 + 0.12*float64(categories) + 0.04*math.Min(float64(len(interp.Requirements)), 6)
	return math.Min(0.95, raw)
}

func allCategories() []model.RequirementCategory {
	return []model.RequirementCategory{
		model.CategorySkills,
		model.CategoryExperience,
		model.CategoryLocation,
		model.CategoryIndustry,
		model.CategoryCulture,
	}
}
