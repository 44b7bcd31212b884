package academics

import (
	"sort"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/transcript"
)

// Skill is a competency derived from category performance.
type Skill struct {
	Skill       string  `json:"skill"`
	Proficiency string  `json:"proficiency"`
	Score       float64 `json:"score"`
}

// categorySkills names the competencies a category's coursework develops.
// Formation categories (PE, NSTP, pure GE) develop no scored skills.
var categorySkills = map[string][]string{
	transcript.CategoryMajor:         {"Software Development", "Problem Solving", "Systems Thinking"},
	transcript.CategoryProgramming:   {"Software Development", "Web Development", "Problem Solving"},
	transcript.CategoryMathematics:   {"Statistical Analysis", "Mathematical Modeling", "Analytical Reasoning"},
	transcript.CategoryDataScience:   {"Data Analysis", "Machine Learning", "Database Management"},
	transcript.CategoryBusiness:      {"Project Management", "Business Analysis", "Strategic Planning"},
	transcript.CategoryCommunication: {"Technical Writing", "Presentation", "Documentation"},
	transcript.CategoryDesign:        {"UI/UX Design", "Visual Design", "User Research"},
	transcript.CategoryEngineering:   {"Systems Design", "Network Administration", "Technical Architecture"},
	transcript.CategoryScience:       {"Research Methods", "Experimental Analysis"},
	transcript.CategoryCapstone:      {"Project Management", "Research Methods", "Software Development"},
}

// ExtractSkills derives skills from per-category performance. A skill backed
// by several categories keeps its best score. Results are sorted by score
// descending, then by name for determinism.
func ExtractSkills(performance map[string]CategoryPerformance) []Skill {
	best := make(map[string]Skill)

	categories := make([]string, 0, len(performance))
	for category := range performance {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		names, ok := categorySkills[category]
		if !ok {
			continue
		}

		level, score := proficiency(performance[category].AverageGrade)
		for _, name := range names {
			if existing, ok := best[name]; ok && existing.Score >= score {
				continue
			}
			best[name] = Skill{Skill: name, Proficiency: level, Score: score}
		}
	}

	skills := make([]Skill, 0, len(best))
	for _, skill := range best {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Score != skills[j].Score {
			return skills[i].Score > skills[j].Score
		}
		return skills[i].Skill < skills[j].Skill
	})

	return skills
}

func proficiency(avg float64) (string, float64) {
	switch {
	case avg <= 1.5:
		return "Expert", 90
	case avg <= 2.0:
		return "Advanced", 80
	case avg <= 2.5:
		return "Intermediate", 70
	default:
		return "Beginner", 60
	}
}
