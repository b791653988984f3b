package model

// RequirementCategory classifies an extracted requirement.
type RequirementCategory string

// Requirement categories, highest importance first.
const (
	CategorySkills     RequirementCategory = "skills"
	CategoryExperience RequirementCategory = "experience"
	CategoryLocation   RequirementCategory = "location"
	CategoryIndustry   RequirementCategory = "industry"
	CategoryCulture    RequirementCategory = "culture"
)

// Provenance records how a requirement entered the interpretation.
type Provenance string

// Requirement provenance values.
const (
	ProvenanceExplicit Provenance = "explicit"
	ProvenanceInferred Provenance = "inferred"
)

// Requirement is one structured, weighted fact extracted from a query.
type Requirement struct {
	Category   RequirementCategory `json:"category"`
	Value      string              `json:"value"`
	Importance float64             `json:"importance"`
	Provenance Provenance          `json:"provenance"`
}

// QueryInterpretation is the structured output of the query interpreter.
// Identical query text always produces an identical interpretation.
type QueryInterpretation struct {
	Query        string        `json:"query"`
	Requirements []Requirement `json:"requirements"`
	Confidence   float64       `json:"confidence"`
	Intent       string        `json:"intent"`
	Strategy     string        `json:"strategy"`
}

// ByCategory returns the requirements of one category, preserving order.
func (q *QueryInterpretation) ByCategory(c RequirementCategory) []Requirement {
	var out []Requirement
	for _, r := range q.Requirements {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}

// HasCategory reports whether any requirement of the category was extracted.
func (q *QueryInterpretation) HasCategory(c RequirementCategory) bool {
	for _, r := range q.Requirements {
		if r.Category == c {
			return true
		}
	}
	return false
}
