package model

// Candidate is a roster entry with per-provider identities.
type Candidate struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Headline        string              `json:"headline"`
	Location        string              `json:"location"`
	ExperienceYears float64             `json:"experience_years"`
	AvgTenureYears  float64             `json:"avg_tenure_years"`
	Skills          []string            `json:"skills"`
	Industries      []string            `json:"industries"`
	CultureTraits   []string            `json:"culture_traits"`
	Identities      map[Provider]string `json:"identities"`
}

// Identity returns the candidate's handle on the given provider, if any.
func (c *Candidate) Identity(p Provider) (string, bool) {
	id, ok := c.Identities[p]
	return id, ok && id != ""
}
