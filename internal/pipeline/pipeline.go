package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/academics"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/archetype"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/career"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/transcript"
)

// Record is the composite analysis produced by one pipeline run.
type Record struct {
	Grades                transcript.Records                       `json:"grades"`
	AcademicMetrics       academics.Metrics                        `json:"academic_metrics"`
	SubjectAnalysis       map[string]academics.CategoryPerformance `json:"subject_analysis"`
	LearningArchetype     *archetype.Result                        `json:"learning_archetype"`
	Skills                []academics.Skill                        `json:"skills"`
	CareerRecommendations []career.Recommendation                  `json:"career_recommendations"`
	CareerForecast        map[string]float64                       `json:"career_forecast,omitempty"`
	AnalysisTimestamp     string                                   `json:"analysis_timestamp"`
}

// Store persists completed analyses. Implementations live at the storage
// boundary; the pipeline itself never touches a database.
type Store interface {
	SaveAnalysis(ctx context.Context, userID uuid.UUID, record *Record) error
}

// Analyzer runs the transcript-to-archetype pipeline. The zero clock is
// time.Now; tests pin it for reproducible timestamps.
type Analyzer struct {
	logger *zap.Logger
	now    func() time.Time
}

func New(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		logger: logger,
		now:    time.Now,
	}
}

// AnalyzeText parses raw transcript text and runs the full pipeline on the
// recovered records. Text that yields no course rows still produces a
// complete record: zeroed metrics, uniform archetype, base-score careers.
func (a *Analyzer) AnalyzeText(text string) (*Record, error) {
	records := transcript.Parse(text)
	a.logger.Debug("parsed transcript", zap.Int("records", records.Len()))

	return a.analyze(records, nil)
}

// AnalyzeGrades runs the pipeline on pre-structured grade rows, adding the
// linear career forecast that only this path can compute.
func (a *Analyzer) AnalyzeGrades(grades []career.GradeInput) (*Record, error) {
	records := make(transcript.Records, 0, len(grades))
	for _, row := range grades {
		title := transcript.RepairTitle(row.Subject)
		if title == "" {
			continue
		}

		units := row.Units
		if units <= 0 {
			units = 3
		}

		grade := row.Grade
		if grade < 1.0 {
			grade = 1.0
		}
		if grade > 5.0 {
			grade = 5.0
		}

		term := row.Semester
		if term == "" {
			term = transcript.NoTerm
		}

		records = append(records, transcript.Record{
			Title:    title,
			Units:    units,
			Grade:    grade,
			Term:     term,
			Category: transcript.Categorize("", title),
		})
	}

	forecast := career.Forecast(career.FeatureVector(grades))

	return a.analyze(records, forecast)
}

func (a *Analyzer) analyze(records transcript.Records, forecast map[string]float64) (*Record, error) {
	metrics := academics.Calculate(records)
	performance := academics.AnalyzeByCategory(records)
	skills := academics.ExtractSkills(performance)

	result, err := archetype.Classify(archetype.Evidence{
		GPA:              metrics.GPA,
		SubjectsCount:    metrics.SubjectsCount,
		StrongCategories: academics.StrongCategories(performance),
		WeakCategories:   academics.WeakCategories(performance),
	})
	if err != nil {
		return nil, fmt.Errorf("classifying archetype: %w", err)
	}

	recommendations, err := career.Recommend(result.Primary, result.Traits, skills)
	if err != nil {
		return nil, fmt.Errorf("scoring careers: %w", err)
	}

	record := &Record{
		Grades:                records,
		AcademicMetrics:       metrics,
		SubjectAnalysis:       performance,
		LearningArchetype:     result,
		Skills:                skills,
		CareerRecommendations: recommendations,
		CareerForecast:        forecast,
		AnalysisTimestamp:     a.now().UTC().Format(time.RFC3339),
	}

	a.logger.Info("analysis complete",
		zap.Int("subjects", metrics.SubjectsCount),
		zap.Float64("gpa", metrics.GPA),
		zap.String("archetype", result.Primary),
		zap.Int("career_recommendations", len(recommendations)),
	)

	return record, nil
}
