package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/ai"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Recommender asks Gemini for company suggestions matching a student
// profile.
type Recommender struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
	maxItems  int
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength       = 200
	defaultMaxRecommendations = 5
)

func NewRecommender(generator contentGenerator, maxLogLength int, log *zap.Logger) *Recommender {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Recommender{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
		maxItems:  defaultMaxRecommendations,
	}
}

var _ ai.Recommender = (*Recommender)(nil)

// RecommendCompanies builds the prompt from the profile, sends it to the
// model and parses the JSON array out of the response. Scores are clamped
// to 0-100 and results are sorted by score descending.
func (r *Recommender) RecommendCompanies(ctx context.Context, profile *ai.Profile) ([]ai.CompanyRecommendation, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is required")
	}

	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}

	prompt := buildPrompt(string(profileJSON))

	r.logger.Debug("gemini company recommendation request",
		zap.String("archetype", profile.PrimaryArchetype),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, r.maxLogLen)),
	)

	raw, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("gemini company recommendation response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, r.maxLogLen)),
	)

	recommendations, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})
	if len(recommendations) > r.maxItems {
		recommendations = recommendations[:r.maxItems]
	}

	return recommendations, nil
}

func buildPrompt(profileJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Student profile:\n{{PROFILE_JSON}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{PROFILE_JSON}}", profileJSON)
}

func parseResponse(raw string) ([]ai.CompanyRecommendation, error) {
	cleaned := extractJSON(strings.TrimSpace(raw))

	var items []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	recommendations := make([]ai.CompanyRecommendation, 0, len(items))
	for _, item := range items {
		name := coerceString(item["name"])
		if name == "" {
			continue
		}

		score := coerceFloat(item["match_score"])
		if math.IsNaN(score) {
			score = 0
		}
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}

		recommendations = append(recommendations, ai.CompanyRecommendation{
			Name:       name,
			Industry:   coerceString(item["industry"]),
			MatchScore: score,
			Reasoning:  coerceString(item["reasoning"]),
			Location:   coerceString(item["location"]),
			Website:    coerceString(item["website"]),
			JobRoles:   coerceStrings(item["job_roles"]),
		})
	}

	return recommendations, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := coerceString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
