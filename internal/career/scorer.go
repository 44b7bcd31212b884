package career

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/academics"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/archetype"
)

// Recommendation is a scored career match.
type Recommendation struct {
	Career          string   `json:"career"`
	MatchScore      int      `json:"match_score"`
	Reasoning       string   `json:"reasoning"`
	RequiredSkills  []string `json:"required_skills"`
	GrowthPotential string   `json:"growth_potential"`
}

const (
	baseScore       = 70
	skillMatchBonus = 5
	traitMatchBonus = 10
	maxScore        = 100
	maxResults      = 5
)

// archetypeCareers lists candidate careers per RIASEC dimension. Every entry
// must have a skill profile in careerSkills; a miss is a configuration error,
// not a soft failure.
var archetypeCareers = map[string][]string{
	"realistic":     {"Systems Engineer", "Network Administrator", "DevOps Engineer", "Technical Support Specialist"},
	"investigative": {"Data Scientist", "Software Engineer", "Research Analyst", "Machine Learning Engineer"},
	"artistic":      {"UI/UX Designer", "Frontend Developer", "Multimedia Designer", "Creative Technologist"},
	"social":        {"Technical Trainer", "IT Support Specialist", "Technical Writer", "Community Manager"},
	"enterprising":  {"Product Manager", "Project Manager", "Business Analyst", "Technology Consultant"},
	"conventional":  {"Database Administrator", "Quality Assurance Engineer", "Systems Auditor", "Data Analyst"},
}

var careerSkills = map[string][]string{
	"Systems Engineer":             {"Systems Design", "Technical Architecture", "Problem Solving"},
	"Network Administrator":        {"Network Administration", "Systems Design", "Documentation"},
	"DevOps Engineer":              {"Systems Design", "Software Development", "Problem Solving"},
	"Technical Support Specialist": {"Problem Solving", "Documentation", "Systems Thinking"},
	"Data Scientist":               {"Data Analysis", "Machine Learning", "Statistical Analysis"},
	"Software Engineer":            {"Software Development", "Problem Solving", "Database Management"},
	"Research Analyst":             {"Research Methods", "Statistical Analysis", "Data Analysis"},
	"Machine Learning Engineer":    {"Machine Learning", "Software Development", "Mathematical Modeling"},
	"UI/UX Designer":               {"UI/UX Design", "Visual Design", "User Research"},
	"Frontend Developer":           {"Web Development", "UI/UX Design", "Software Development"},
	"Multimedia Designer":          {"Visual Design", "UI/UX Design", "Presentation"},
	"Creative Technologist":        {"Visual Design", "Software Development", "User Research"},
	"Technical Trainer":            {"Presentation", "Technical Writing", "Documentation"},
	"IT Support Specialist":        {"Problem Solving", "Documentation", "Network Administration"},
	"Technical Writer":             {"Technical Writing", "Documentation", "Research Methods"},
	"Community Manager":            {"Presentation", "Technical Writing", "Project Management"},
	"Product Manager":              {"Project Management", "Business Analysis", "Strategic Planning"},
	"Project Manager":              {"Project Management", "Strategic Planning", "Documentation"},
	"Business Analyst":             {"Business Analysis", "Data Analysis", "Documentation"},
	"Technology Consultant":        {"Strategic Planning", "Systems Design", "Business Analysis"},
	"Database Administrator":       {"Database Management", "Data Analysis", "Systems Design"},
	"Quality Assurance Engineer":   {"Software Development", "Documentation", "Problem Solving"},
	"Systems Auditor":              {"Systems Design", "Documentation", "Business Analysis"},
	"Data Analyst":                 {"Data Analysis", "Statistical Analysis", "Database Management"},
}

// Recommend scores the primary archetype's candidate careers against the
// student's skills and traits. Scores start at the base, gain per matched
// required skill, gain once when an archetype trait appears in the career
// label, and clamp at 100. The top five are returned sorted by score
// descending, ties broken by name.
func Recommend(primary string, traits []string, skills []academics.Skill) ([]Recommendation, error) {
	careers, ok := archetypeCareers[primary]
	if !ok {
		return nil, fmt.Errorf("no careers configured for archetype %q", primary)
	}

	def, err := archetype.Lookup(primary)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		owned[strings.ToLower(s.Skill)] = struct{}{}
	}

	recommendations := make([]Recommendation, 0, len(careers))
	for _, name := range careers {
		required, ok := careerSkills[name]
		if !ok {
			return nil, fmt.Errorf("no skill profile configured for career %q", name)
		}

		score := baseScore
		matched := 0
		for _, skill := range required {
			if _, has := owned[strings.ToLower(skill)]; has {
				matched++
				score += skillMatchBonus
			}
		}

		lowerName := strings.ToLower(name)
		for _, trait := range traits {
			if strings.Contains(lowerName, strings.ToLower(trait)) {
				score += traitMatchBonus
				break
			}
		}

		if score > maxScore {
			score = maxScore
		}

		recommendations = append(recommendations, Recommendation{
			Career:          name,
			MatchScore:      score,
			Reasoning:       reasoning(name, def.Name, matched, len(required)),
			RequiredSkills:  required,
			GrowthPotential: growthPotential(score),
		})
	}

	sort.Slice(recommendations, func(i, j int) bool {
		if recommendations[i].MatchScore != recommendations[j].MatchScore {
			return recommendations[i].MatchScore > recommendations[j].MatchScore
		}
		return recommendations[i].Career < recommendations[j].Career
	})

	if len(recommendations) > maxResults {
		recommendations = recommendations[:maxResults]
	}

	return recommendations, nil
}

func reasoning(career, archetypeName string, matched, required int) string {
	if matched == 0 {
		return fmt.Sprintf("%s aligns with the %s archetype; its core skills are still ahead of you", career, archetypeName)
	}
	return fmt.Sprintf("%s aligns with the %s archetype and you already hold %d of %d core skills", career, archetypeName, matched, required)
}

func growthPotential(score int) string {
	switch {
	case score >= 85:
		return "High"
	case score >= 70:
		return "Medium"
	default:
		return "Low"
	}
}
