package ai

import "context"

// CompanyRecommendation is one employer suggestion for a completed analysis.
type CompanyRecommendation struct {
	Name       string   `json:"name"`
	Industry   string   `json:"industry"`
	MatchScore float64  `json:"match_score"`
	Reasoning  string   `json:"reasoning"`
	Location   string   `json:"location"`
	Website    string   `json:"website"`
	JobRoles   []string `json:"job_roles"`
}

// Profile is the slice of an analysis record worth sending to the model.
type Profile struct {
	Course           string   `json:"course"`
	PrimaryArchetype string   `json:"primary_archetype"`
	ArchetypeName    string   `json:"archetype_name"`
	GPA              float64  `json:"gpa"`
	TopSkills        []string `json:"top_skills"`
	CareerPaths      []string `json:"career_paths"`
}

// Recommender suggests companies matching a student profile.
type Recommender interface {
	RecommendCompanies(ctx context.Context, profile *Profile) ([]CompanyRecommendation, error)
}
