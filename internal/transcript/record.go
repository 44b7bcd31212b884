package transcript

// Record is a single course line recovered from a transcript.
type Record struct {
	CourseCode string  `json:"course_code"`
	Title      string  `json:"title"`
	Units      int     `json:"units"`
	Grade      float64 `json:"grade"`
	Term       string  `json:"term"`
	Category   string  `json:"category"`
}

// Records is a parsed transcript in document order.
type Records []Record

func (r Records) Len() int {
	return len(r)
}

// TotalUnits sums the credit units across all records.
func (r Records) TotalUnits() int {
	total := 0
	for _, rec := range r {
		total += rec.Units
	}
	return total
}

// Titles returns the course titles in document order.
func (r Records) Titles() []string {
	titles := make([]string, 0, len(r))
	for _, rec := range r {
		titles = append(titles, rec.Title)
	}
	return titles
}

// ByCategory groups records under their category label, preserving document
// order within each group.
func (r Records) ByCategory() map[string]Records {
	grouped := make(map[string]Records)
	for _, rec := range r {
		grouped[rec.Category] = append(grouped[rec.Category], rec)
	}
	return grouped
}
