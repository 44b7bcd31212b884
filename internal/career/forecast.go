package career

import (
	"math"
	"regexp"
	"strings"
)

// GradeInput is a pre-structured grade row, the shape accepted when no
// transcript text is available.
type GradeInput struct {
	Subject  string  `json:"subject"`
	Units    int     `json:"units"`
	Grade    float64 `json:"grade"`
	Semester string  `json:"semester"`
}

// Families orders the subject families behind the forecast feature vector.
var Families = []string{"math", "programming", "systems", "ux", "communication", "management", "data"}

var familyKeywords = map[string][]string{
	"math":          {"math", "calculus", "algebra", "statistics", "probability"},
	"programming":   {"program", "coding", "cs", "oop", "data structure"},
	"systems":       {"system", "network", "os", "hardware", "architecture"},
	"ux":            {"ux", "ui", "design", "human-computer", "multimedia"},
	"communication": {"communication", "english", "writing", "speech"},
	"management":    {"management", "project", "entrepreneur", "leadership"},
	"data":          {"data", "ml", "ai", "analytics", "database"},
}

var computingSubject = regexp.MustCompile(`cs|comp(uter)?`)

// forecastWeights maps the 7-dim feature vector onto career tracks. Row
// order matches ForecastCareers.
var forecastWeights = [5][7]float64{
	{0.7, 0.3, 0.2, 0.0, 0.1, 0.1, 0.8},
	{0.2, 0.3, 0.8, 0.0, 0.1, 0.1, 0.2},
	{0.3, 0.8, 0.4, 0.1, 0.2, 0.2, 0.3},
	{0.0, 0.4, 0.1, 0.9, 0.3, 0.1, 0.1},
	{0.1, 0.2, 0.2, 0.2, 0.6, 0.9, 0.1},
}

// ForecastCareers names the forecast tracks in weight-row order.
var ForecastCareers = []string{"data_science", "systems_engineering", "software_engineering", "ui_ux", "product_management"}

// FeatureVector reduces grade rows to a 7-dim vector: per family, the
// units-weighted average grade inverted onto [0, 1] (better grades push the
// component toward 1), then L2-normalized. Families with no courses stay at
// zero; an empty grade list yields the zero vector.
func FeatureVector(grades []GradeInput) [7]float64 {
	totals := make(map[string]float64, len(Families))
	weights := make(map[string]float64, len(Families))

	for _, row := range grades {
		units := float64(row.Units)
		if units < 0 {
			units = 0
		}
		family := familyFor(row.Subject)
		totals[family] += row.Grade * units
		weights[family] += units
	}

	var vec [7]float64
	for i, family := range Families {
		if w := weights[family]; w > 0 {
			avg := totals[family] / w
			scaled := 1.0 - clamp01(avg/5.0)
			vec[i] = scaled
		}
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return vec
	}
	for i := range vec {
		vec[i] /= norm
	}

	return vec
}

// Forecast projects the feature vector through the weight matrix and min-max
// normalizes the track scores onto [0, 1].
func Forecast(vec [7]float64) map[string]float64 {
	raw := make([]float64, len(ForecastCareers))
	for i := range forecastWeights {
		dot := 0.0
		for j := range vec {
			dot += forecastWeights[i][j] * vec[j]
		}
		raw[i] = dot
	}

	lo, hi := raw[0], raw[0]
	for _, v := range raw[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	span := hi - lo
	if span == 0 {
		span = 1
	}

	scores := make(map[string]float64, len(ForecastCareers))
	for i, name := range ForecastCareers {
		scores[name] = (raw[i] - lo) / span
	}

	return scores
}

func familyFor(subject string) string {
	s := strings.ToLower(subject)
	for _, family := range Families {
		for _, keyword := range familyKeywords[family] {
			if strings.Contains(s, keyword) {
				return family
			}
		}
	}
	if computingSubject.MatchString(s) {
		return "programming"
	}
	return "data"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
