package academics

import (
	"math"
	"testing"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/transcript"
)

func sampleRecords() transcript.Records {
	return transcript.Records{
		{CourseCode: "ICC 0101", Title: "Introduction to Computing", Units: 3, Grade: 1.50, Category: transcript.CategoryMajor},
		{CourseCode: "ICC 0102", Title: "Programming Fundamentals", Units: 3, Grade: 1.75, Category: transcript.CategoryMajor},
	}
}

func TestCalculateGPA(t *testing.T) {
	metrics := Calculate(sampleRecords())

	if math.Abs(metrics.GPA-1.625) > 1e-9 {
		t.Fatalf("expected GPA 1.625, got %v", metrics.GPA)
	}
	if metrics.TotalUnits != 6 {
		t.Fatalf("expected 6 total units, got %d", metrics.TotalUnits)
	}
	if metrics.SubjectsCount != 2 {
		t.Fatalf("expected 2 subjects, got %d", metrics.SubjectsCount)
	}
	if metrics.AcademicStanding != "Magna Cum Laude" {
		t.Fatalf("unexpected standing %q", metrics.AcademicStanding)
	}
}

func TestCalculateWeightsByUnits(t *testing.T) {
	records := transcript.Records{
		{Title: "Heavy", Units: 5, Grade: 1.0},
		{Title: "Light", Units: 1, Grade: 5.0},
	}

	metrics := Calculate(records)
	want := (1.0*5 + 5.0*1) / 6.0
	if math.Abs(metrics.GPA-want) > 1e-9 {
		t.Fatalf("expected units-weighted GPA %v, got %v", want, metrics.GPA)
	}
}

func TestCalculateEmptyTranscript(t *testing.T) {
	metrics := Calculate(nil)

	if metrics.GPA != 0 {
		t.Fatalf("expected zero GPA for empty transcript, got %v", metrics.GPA)
	}
	if metrics.AcademicStanding != StandingNone {
		t.Fatalf("expected standing %q, got %q", StandingNone, metrics.AcademicStanding)
	}
	for _, band := range gradeBands {
		if metrics.GradeDistribution[band] != 0 {
			t.Fatalf("expected empty distribution, got %v", metrics.GradeDistribution)
		}
	}
}

func TestCalculateGPAWithinScale(t *testing.T) {
	metrics := Calculate(sampleRecords())
	if metrics.GPA < 1.0 || metrics.GPA > 5.0 {
		t.Fatalf("GPA %v outside the 1.0-5.0 scale", metrics.GPA)
	}
}

func TestGradeDistribution(t *testing.T) {
	records := transcript.Records{
		{Title: "a", Units: 3, Grade: 1.25},
		{Title: "b", Units: 3, Grade: 2.00},
		{Title: "c", Units: 3, Grade: 2.75},
		{Title: "d", Units: 3, Grade: 3.50},
		{Title: "e", Units: 3, Grade: 5.00},
	}

	metrics := Calculate(records)
	for _, band := range gradeBands {
		if metrics.GradeDistribution[band] != 1 {
			t.Fatalf("expected one record per band, got %v", metrics.GradeDistribution)
		}
	}
}

func TestAnalyzeByCategory(t *testing.T) {
	records := append(sampleRecords(), transcript.Record{
		CourseCode: "PCM 0006", Title: "Purposive Communication", Units: 3, Grade: 3.25,
		Category: transcript.CategoryGeneralEd,
	})

	performance := AnalyzeByCategory(records)
	if len(performance) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(performance))
	}

	major := performance[transcript.CategoryMajor]
	if math.Abs(major.AverageGrade-1.625) > 1e-9 {
		t.Fatalf("expected major average 1.625, got %v", major.AverageGrade)
	}
	if major.SubjectCount != 2 {
		t.Fatalf("expected 2 major subjects, got %d", major.SubjectCount)
	}
	if major.PerformanceLevel != "Very Good" {
		t.Fatalf("unexpected performance level %q", major.PerformanceLevel)
	}

	ge := performance[transcript.CategoryGeneralEd]
	if ge.PerformanceLevel != "Needs Improvement" {
		t.Fatalf("unexpected GE level %q", ge.PerformanceLevel)
	}
}

func TestStrongAndWeakCategories(t *testing.T) {
	performance := map[string]CategoryPerformance{
		transcript.CategoryMajor:     {AverageGrade: 1.6},
		transcript.CategoryDesign:    {AverageGrade: 2.0},
		transcript.CategoryBusiness:  {AverageGrade: 2.5},
		transcript.CategoryGeneralEd: {AverageGrade: 3.25},
	}

	strong := StrongCategories(performance)
	if len(strong) != 2 || strong[0] != transcript.CategoryDesign || strong[1] != transcript.CategoryMajor {
		t.Fatalf("unexpected strong categories %v", strong)
	}

	weak := WeakCategories(performance)
	if len(weak) != 1 || weak[0] != transcript.CategoryGeneralEd {
		t.Fatalf("unexpected weak categories %v", weak)
	}
}

func TestExtractSkills(t *testing.T) {
	performance := map[string]CategoryPerformance{
		transcript.CategoryMajor:       {AverageGrade: 1.4},
		transcript.CategoryMathematics: {AverageGrade: 2.2},
		transcript.CategoryPE:          {AverageGrade: 1.0},
	}

	skills := ExtractSkills(performance)
	if len(skills) == 0 {
		t.Fatalf("expected skills from major and mathematics performance")
	}

	byName := make(map[string]Skill, len(skills))
	for _, s := range skills {
		byName[s.Skill] = s
	}

	dev, ok := byName["Software Development"]
	if !ok {
		t.Fatalf("expected Software Development skill, got %v", skills)
	}
	if dev.Proficiency != "Expert" || dev.Score != 90 {
		t.Fatalf("expected Expert/90 from 1.4 average, got %+v", dev)
	}

	stat, ok := byName["Statistical Analysis"]
	if !ok {
		t.Fatalf("expected Statistical Analysis skill, got %v", skills)
	}
	if stat.Proficiency != "Intermediate" || stat.Score != 70 {
		t.Fatalf("expected Intermediate/70 from 2.2 average, got %+v", stat)
	}

	// Sorted by score descending.
	for i := 1; i < len(skills); i++ {
		if skills[i-1].Score < skills[i].Score {
			t.Fatalf("skills not sorted by score: %v", skills)
		}
	}
}

func TestExtractSkillsKeepsBestScoreOnOverlap(t *testing.T) {
	performance := map[string]CategoryPerformance{
		transcript.CategoryMajor:    {AverageGrade: 2.4}, // Intermediate Software Development
		transcript.CategoryCapstone: {AverageGrade: 1.2}, // Expert Software Development
	}

	for _, s := range ExtractSkills(performance) {
		if s.Skill == "Software Development" && s.Score != 90 {
			t.Fatalf("expected overlapping skill to keep best score, got %+v", s)
		}
	}
}
