package career

import (
	"strings"
	"testing"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/academics"
)

func TestRecommendUnknownArchetype(t *testing.T) {
	if _, err := Recommend("adventurous", nil, nil); err == nil {
		t.Fatalf("expected error for unconfigured archetype")
	}
}

func TestRecommendBaseScoreWithoutMatches(t *testing.T) {
	recs, err := Recommend("realistic", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatalf("expected recommendations")
	}
	for _, rec := range recs {
		if rec.MatchScore != baseScore {
			t.Fatalf("expected base score %d without skills or traits, got %+v", baseScore, rec)
		}
		if rec.GrowthPotential != "Medium" {
			t.Fatalf("expected Medium growth at base score, got %+v", rec)
		}
	}
}

func TestRecommendSkillAndTraitBonuses(t *testing.T) {
	skills := []academics.Skill{
		{Skill: "Data Analysis", Proficiency: "Expert", Score: 90},
		{Skill: "Machine Learning", Proficiency: "Advanced", Score: 80},
		{Skill: "Statistical Analysis", Proficiency: "Advanced", Score: 80},
	}

	recs, err := Recommend("investigative", []string{"analytical", "research"}, skills)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byCareer := make(map[string]Recommendation, len(recs))
	for _, rec := range recs {
		byCareer[rec.Career] = rec
	}

	// All three required skills match: 70 + 3*5 = 85.
	ds, ok := byCareer["Data Scientist"]
	if !ok {
		t.Fatalf("expected Data Scientist in %v", recs)
	}
	if ds.MatchScore != 85 {
		t.Fatalf("expected score 85 for Data Scientist, got %d", ds.MatchScore)
	}
	if ds.GrowthPotential != "High" {
		t.Fatalf("expected High growth at 85, got %q", ds.GrowthPotential)
	}

	// "research" appears in the label: 70 + 2*5 + 10 = 90.
	ra, ok := byCareer["Research Analyst"]
	if !ok {
		t.Fatalf("expected Research Analyst in %v", recs)
	}
	if ra.MatchScore != 90 {
		t.Fatalf("expected score 90 for Research Analyst, got %d", ra.MatchScore)
	}
}

func TestRecommendReasoningNamesArchetype(t *testing.T) {
	recs, err := Recommend("investigative", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, rec := range recs {
		if !strings.Contains(rec.Reasoning, "Analytical Thinker") {
			t.Fatalf("expected reasoning to name the archetype, got %q", rec.Reasoning)
		}
		if !strings.Contains(rec.Reasoning, rec.Career) {
			t.Fatalf("expected reasoning to name the career, got %q", rec.Reasoning)
		}
	}
}

func TestRecommendScoreClamped(t *testing.T) {
	skills := make([]academics.Skill, 0)
	for skill := range map[string]struct{}{
		"UI/UX Design": {}, "Visual Design": {}, "User Research": {},
		"Web Development": {}, "Software Development": {}, "Presentation": {},
	} {
		skills = append(skills, academics.Skill{Skill: skill, Score: 90})
	}

	recs, err := Recommend("artistic", []string{"design", "creative"}, skills)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, rec := range recs {
		if rec.MatchScore > maxScore {
			t.Fatalf("score above clamp: %+v", rec)
		}
	}
}

func TestRecommendSortedAndCapped(t *testing.T) {
	recs, err := Recommend("enterprising", []string{"management"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) > maxResults {
		t.Fatalf("expected at most %d recommendations, got %d", maxResults, len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].MatchScore < recs[i].MatchScore {
			t.Fatalf("recommendations not sorted by score: %v", recs)
		}
	}
}

func TestEveryConfiguredCareerHasSkills(t *testing.T) {
	for archetype, careers := range archetypeCareers {
		for _, career := range careers {
			if _, ok := careerSkills[career]; !ok {
				t.Fatalf("career %q under %q has no skill profile", career, archetype)
			}
		}
	}
}
