package archetype

import (
	"fmt"
	"math"
)

// RIASEC dimension keys in canonical order. The order is load-bearing: ties
// on the primary archetype resolve to the earlier dimension.
const (
	Realistic     = "realistic"
	Investigative = "investigative"
	Artistic      = "artistic"
	Social        = "social"
	Enterprising  = "enterprising"
	Conventional  = "conventional"
)

// Dimensions lists the six RIASEC keys in canonical order.
var Dimensions = []string{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

// Definition is the presentation metadata for one dimension.
type Definition struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
}

var definitions = map[string]Definition{
	Realistic: {
		Name:        "Applied Practitioner",
		Description: "Practical, hands-on, technical problem-solving",
		Traits:      []string{"hands-on", "technical", "practical", "systematic"},
	},
	Investigative: {
		Name:        "Analytical Thinker",
		Description: "Logical, analytical, research-oriented, problem-solving",
		Traits:      []string{"analytical", "logical", "research", "problem-solving"},
	},
	Artistic: {
		Name:        "Creative Innovator",
		Description: "Creative, innovative, design-oriented, expressive",
		Traits:      []string{"creative", "innovative", "design", "expressive"},
	},
	Social: {
		Name:        "Collaborative Supporter",
		Description: "People-oriented, helpful, communicative, team-focused",
		Traits:      []string{"people-oriented", "helpful", "communicative", "teamwork"},
	},
	Enterprising: {
		Name:        "Strategic Leader",
		Description: "Leadership, management, entrepreneurial, goal-oriented",
		Traits:      []string{"leadership", "management", "entrepreneurial", "goal-oriented"},
	},
	Conventional: {
		Name:        "Methodical Organizer",
		Description: "Organized, detail-oriented, systematic, structured",
		Traits:      []string{"organized", "detail-oriented", "systematic", "structured"},
	},
}

// Lookup returns the definition for a dimension key.
func Lookup(dimension string) (Definition, error) {
	def, ok := definitions[dimension]
	if !ok {
		return Definition{}, fmt.Errorf("no definition for archetype dimension %q", dimension)
	}
	return def, nil
}

// Evidence is the academic signal the rule table evaluates. Category lists
// must be pre-sorted by the caller so classification stays deterministic.
type Evidence struct {
	GPA              float64
	SubjectsCount    int
	StrongCategories []string
	WeakCategories   []string
}

// Result is a complete classification across all six dimensions.
type Result struct {
	Primary     string             `json:"primary_archetype"`
	Name        string             `json:"archetype_name"`
	Description string             `json:"description"`
	Traits      []string           `json:"traits"`
	Scores      map[string]int     `json:"archetype_scores"`
	Percentages map[string]float64 `json:"archetype_percentages"`
}

// Classify runs the additive rule table over the evidence and normalizes the
// scores to percentages. No rule firing yields the uniform distribution with
// the first dimension as primary rather than an error: a thin transcript is
// not a misconfiguration.
func Classify(ev Evidence) (*Result, error) {
	scores := make(map[string]int, len(Dimensions))
	for _, dim := range Dimensions {
		scores[dim] = 0
	}

	total := 0
	for _, r := range rules {
		if !r.when(ev) {
			continue
		}
		if _, ok := scores[r.dimension]; !ok {
			return nil, fmt.Errorf("rule %q targets unknown dimension %q", r.name, r.dimension)
		}
		scores[r.dimension] += r.points
		total += r.points
	}

	percentages := make(map[string]float64, len(Dimensions))
	if total == 0 {
		uniform := round2(100.0 / float64(len(Dimensions)))
		for _, dim := range Dimensions {
			percentages[dim] = uniform
		}
	} else {
		for _, dim := range Dimensions {
			percentages[dim] = round2(float64(scores[dim]) / float64(total) * 100)
		}
	}

	primary := Dimensions[0]
	for _, dim := range Dimensions[1:] {
		if scores[dim] > scores[primary] {
			primary = dim
		}
	}

	def, err := Lookup(primary)
	if err != nil {
		return nil, err
	}

	return &Result{
		Primary:     primary,
		Name:        def.Name,
		Description: def.Description,
		Traits:      def.Traits,
		Scores:      scores,
		Percentages: percentages,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
