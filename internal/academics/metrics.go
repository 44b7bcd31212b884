package academics

import (
	"sort"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/transcript"
)

// Metrics summarizes a parsed transcript. GPA follows the Philippine scale:
// 1.0 is the best possible mark, 5.0 a failing one.
type Metrics struct {
	GPA               float64        `json:"gpa"`
	TotalUnits        int            `json:"total_units"`
	SubjectsCount     int            `json:"subjects_count"`
	AcademicStanding  string         `json:"academic_standing"`
	GradeDistribution map[string]int `json:"grade_distribution"`
}

// CategoryPerformance aggregates grades within one category.
type CategoryPerformance struct {
	AverageGrade     float64  `json:"average_grade"`
	SubjectCount     int      `json:"subject_count"`
	Subjects         []string `json:"subjects"`
	PerformanceLevel string   `json:"performance_level"`
}

const (
	// StandingNone is reported when the transcript carries no graded units.
	StandingNone = "No Academic Record"

	strongThreshold = 2.0
	weakThreshold   = 3.0
)

var gradeBands = []string{"A", "B", "C", "D", "F"}

// Calculate computes the units-weighted GPA, the grade distribution and the
// academic standing. An empty transcript yields zeroed metrics with
// StandingNone rather than an error.
func Calculate(records transcript.Records) Metrics {
	metrics := Metrics{
		SubjectsCount:     records.Len(),
		GradeDistribution: make(map[string]int, len(gradeBands)),
	}
	for _, band := range gradeBands {
		metrics.GradeDistribution[band] = 0
	}

	weighted := 0.0
	for _, rec := range records {
		metrics.TotalUnits += rec.Units
		weighted += rec.Grade * float64(rec.Units)
		metrics.GradeDistribution[gradeBand(rec.Grade)]++
	}

	if metrics.TotalUnits == 0 {
		metrics.AcademicStanding = StandingNone
		return metrics
	}

	metrics.GPA = weighted / float64(metrics.TotalUnits)
	metrics.AcademicStanding = standing(metrics.GPA)

	return metrics
}

// AnalyzeByCategory computes per-category performance: units-weighted average
// grade, subject titles and a qualitative level.
func AnalyzeByCategory(records transcript.Records) map[string]CategoryPerformance {
	performance := make(map[string]CategoryPerformance)

	for category, group := range records.ByCategory() {
		units := 0
		weighted := 0.0
		for _, rec := range group {
			units += rec.Units
			weighted += rec.Grade * float64(rec.Units)
		}
		if units == 0 {
			continue
		}

		avg := weighted / float64(units)
		performance[category] = CategoryPerformance{
			AverageGrade:     avg,
			SubjectCount:     group.Len(),
			Subjects:         group.Titles(),
			PerformanceLevel: performanceLevel(avg),
		}
	}

	return performance
}

// StrongCategories lists categories averaging 2.0 or better, sorted by name.
func StrongCategories(performance map[string]CategoryPerformance) []string {
	return filterCategories(performance, func(avg float64) bool { return avg <= strongThreshold })
}

// WeakCategories lists categories averaging worse than 3.0, sorted by name.
func WeakCategories(performance map[string]CategoryPerformance) []string {
	return filterCategories(performance, func(avg float64) bool { return avg > weakThreshold })
}

func filterCategories(performance map[string]CategoryPerformance, keep func(float64) bool) []string {
	out := make([]string, 0, len(performance))
	for category, perf := range performance {
		if keep(perf.AverageGrade) {
			out = append(out, category)
		}
	}
	sort.Strings(out)
	return out
}

func gradeBand(grade float64) string {
	switch {
	case grade <= 1.5:
		return "A"
	case grade <= 2.25:
		return "B"
	case grade <= 3.0:
		return "C"
	case grade <= 4.0:
		return "D"
	default:
		return "F"
	}
}

func standing(gpa float64) string {
	switch {
	case gpa <= 1.5:
		return "Summa Cum Laude"
	case gpa <= 1.75:
		return "Magna Cum Laude"
	case gpa <= 2.0:
		return "Cum Laude"
	case gpa <= 3.0:
		return "Good Standing"
	default:
		return "Fair Standing"
	}
}

func performanceLevel(avg float64) string {
	switch {
	case avg <= 1.5:
		return "Excellent"
	case avg <= 2.0:
		return "Very Good"
	case avg <= 2.5:
		return "Good"
	case avg <= 3.0:
		return "Satisfactory"
	default:
		return "Needs Improvement"
	}
}
