package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	defaultUnits = 3
	minGrade     = 1.0
	maxGrade     = 5.0

	// NoTerm marks records found outside any recognized semester heading.
	NoTerm = "N/A"
)

// letterGrades maps registrar letter marks to the 1.0 (highest) to 5.0
// (failing) numeric scale.
var letterGrades = map[string]float64{
	"A+": 1.0,
	"A":  1.25,
	"A-": 1.5,
	"B+": 1.75,
	"B":  2.0,
	"B-": 2.25,
	"C+": 2.5,
	"C":  2.75,
	"C-": 3.0,
	"D":  4.0,
	"F":  5.0,
}

// termPatterns recognize semester headings. A heading opens a new section;
// every row until the next heading inherits its term label.
var termPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:1st|2nd|first|second)\s+Semester[,\s]+\d{4}\s*[-–]\s*\d{4}`),
	regexp.MustCompile(`(?i)Mid[\s-]?Year\s+Term(?:[,\s]+\d{4}\s*[-–]\s*\d{4})?`),
	regexp.MustCompile(`(?i)(?:First|Second|Third|Fourth)\s+Year[,\s]+(?:First|Second)\s+Semester`),
}

// Course codes are 2-4 letters, four digits, an optional sub-number and an
// optional section letter: "ICC 0101", "IIP 0101.1", "EIT 0212A". OCR
// occasionally eats the separating space.
const (
	codeToken  = `[A-Z]{2,4} ?\d{4}(?:\.\d)?[A-Z]?`
	unitsToken = `\d{1,2}`
	gradeToken = `[A-F][+-]?|\d(?:\.\d{1,2})?`
)

// rowPatterns are tried in order; the first match wins. Units-before-grade is
// preferred, which keeps the known ambiguity for rows whose grade is a bare
// integer.
var rowPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(` + codeToken + `)\s+(.+?)\s+(` + unitsToken + `)\s+(` + gradeToken + `)$`),
	regexp.MustCompile(`^(` + codeToken + `)\s+(.+?)\s+(` + gradeToken + `)\s+(` + unitsToken + `)$`),
}

// looseRowPatterns recover rows whose course code the scan mangled beyond
// recognition. The grade must be in decimal form here so that page furniture
// does not parse as a course.
var looseRowPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 ,&()'./-]*[A-Za-z0-9)])\s+(` + unitsToken + `)\s+(\d\.\d{1,2})$`),
	regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 ,&()'./-]*[A-Za-z0-9)])\s+(\d\.\d{1,2})$`),
}

// titleRepairs fixes recurring OCR damage to course titles: dropped or doubled
// leading letters on common words. Applied per word so healthy titles pass
// through untouched.
var titleRepairs = map[string]string{
	"ntroduction":   "Introduction",
	"IIntroduction": "Introduction",
	"omputing":      "Computing",
	"CComputing":    "Computing",
	"rogramming":    "Programming",
	"PProgramming":  "Programming",
	"undamentals":   "Fundamentals",
	"FFundamentals": "Fundamentals",
	"athematics":    "Mathematics",
	"MMathematics":  "Mathematics",
	"ngineering":    "Engineering",
	"EEngineering":  "Engineering",
	"anagement":     "Management",
	"MManagement":   "Management",
}

// section is one semester's worth of lines: everything between two term
// headings shares the heading's label.
type section struct {
	term  string
	lines []string
}

// Parse extracts course records from raw transcript text. Lines that match no
// pattern are skipped, never guessed at; empty input yields an empty slice.
// Duplicate rows (same code, title and term) are dropped, keeping the first.
func Parse(text string) Records {
	sections := []section{{term: NoTerm}}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if t, ok := matchTerm(line); ok {
			sections = append(sections, section{term: t})
			continue
		}

		last := len(sections) - 1
		sections[last].lines = append(sections[last].lines, line)
	}

	records := make(Records, 0)
	seen := make(map[string]struct{})
	for _, sec := range sections {
		for _, rec := range parseSection(sec.lines) {
			rec.Term = sec.term
			rec.Title = RepairTitle(rec.Title)
			rec.Category = Categorize(rec.CourseCode, rec.Title)

			key := rec.CourseCode + "|" + strings.ToLower(rec.Title) + "|" + rec.Term
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			records = append(records, rec)
		}
	}

	return records
}

// parseSection runs the coded row grammar over a section's lines. The loose
// patterns are a recovery path for scans that mangled every course code: they
// run only when the section yields no coded rows at all, so summary lines like
// "General Weighted Average 1.75" cannot ride alongside real rows.
func parseSection(lines []string) []Record {
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		if rec, ok := matchCodedRow(line); ok {
			records = append(records, rec)
		}
	}
	if len(records) > 0 {
		return records
	}

	for _, line := range lines {
		if rec, ok := matchLooseRow(line); ok {
			records = append(records, rec)
		}
	}
	return records
}

// NormalizeGrade converts a raw grade token, letter or numeric, to the 1.0-5.0
// scale. Numeric values outside the scale are clamped to it.
func NormalizeGrade(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if grade, ok := letterGrades[strings.ToUpper(raw)]; ok {
		return grade, nil
	}

	grade, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("grade %q is neither a letter mark nor a number", raw)
	}

	if grade < minGrade {
		grade = minGrade
	}
	if grade > maxGrade {
		grade = maxGrade
	}

	return grade, nil
}

// RepairTitle normalizes whitespace and undoes known OCR word damage.
func RepairTitle(title string) string {
	words := strings.Fields(title)
	for i, word := range words {
		if fixed, ok := titleRepairs[word]; ok {
			words[i] = fixed
		}
	}
	return strings.Join(words, " ")
}

func matchTerm(line string) (string, bool) {
	for _, pattern := range termPatterns {
		if m := pattern.FindString(line); m != "" {
			return strings.Join(strings.Fields(m), " "), true
		}
	}
	return "", false
}

func matchCodedRow(line string) (Record, bool) {
	for i, pattern := range rowPatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		unitsRaw, gradeRaw := m[3], m[4]
		if i == 1 {
			gradeRaw, unitsRaw = m[3], m[4]
		}

		grade, err := NormalizeGrade(gradeRaw)
		if err != nil {
			continue
		}

		units, ok := parseUnits(unitsRaw)
		if !ok {
			continue
		}

		return Record{
			CourseCode: normalizeCode(m[1]),
			Title:      strings.TrimSpace(m[2]),
			Units:      units,
			Grade:      grade,
		}, true
	}

	return Record{}, false
}

func matchLooseRow(line string) (Record, bool) {
	for i, pattern := range looseRowPatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		unitsRaw, gradeRaw := "", m[2]
		if i == 0 {
			unitsRaw, gradeRaw = m[2], m[3]
		}

		grade, err := NormalizeGrade(gradeRaw)
		if err != nil {
			continue
		}

		units, ok := parseUnits(unitsRaw)
		if !ok {
			continue
		}

		return Record{
			Title: strings.TrimSpace(m[1]),
			Units: units,
			Grade: grade,
		}, true
	}

	return Record{}, false
}

func normalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))

	digit := strings.IndexFunc(code, func(r rune) bool { return r >= '0' && r <= '9' })
	if digit > 0 && code[digit-1] != ' ' {
		code = code[:digit] + " " + code[digit:]
	}

	return strings.Join(strings.Fields(code), " ")
}

// parseUnits distinguishes a missing units token (default applies) from one
// that parsed outside [1, 10], which invalidates the whole row match.
func parseUnits(raw string) (int, bool) {
	units, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultUnits, true
	}
	if units < 1 || units > 10 {
		return 0, false
	}
	return units, true
}
