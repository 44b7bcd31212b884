package transcript

import "testing"

func TestCategorizeByPrefix(t *testing.T) {
	cases := []struct {
		code  string
		title string
		want  string
	}{
		{"ICC 0101", "Introduction to Computing", CategoryMajor},
		{"EIT 0212", "Data Structures and Algorithms", CategoryMajor},
		{"CET 0111", "Calculus 1", CategoryMathematics},
		{"MMW 0001", "Mathematics in the Modern World", CategoryMathematics},
		{"CAP 0101", "Capstone Project 1", CategoryCapstone},
		{"IIP 0101.1", "Internship Program", CategoryCapstone},
		{"NSTP 0001", "Civic Welfare Training Service 1", CategoryNSTP},
		{"PED 0013", "Swimming", CategoryPE},
		{"PCM 0006", "Purposive Communication", CategoryGeneralEd},
		{"AAP 0007", "Art Appreciation", CategoryGeneralEd},
	}

	for _, tc := range cases {
		if got := Categorize(tc.code, tc.title); got != tc.want {
			t.Fatalf("Categorize(%q, %q) = %q, want %q", tc.code, tc.title, got, tc.want)
		}
	}
}

func TestCategorizeByKeyword(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Data Analytics Fundamentals", CategoryDataScience},
		{"Object Oriented Programming", CategoryProgramming},
		{"College Algebra", CategoryMathematics},
		{"Multimedia Design", CategoryDesign},
		{"Computer Networks", CategoryEngineering},
		{"General Chemistry", CategoryScience},
		{"Principles of Management", CategoryBusiness},
		{"Technical Writing", CategoryCommunication},
	}

	for _, tc := range cases {
		if got := Categorize("", tc.title); got != tc.want {
			t.Fatalf("Categorize(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestCategorizeUnknownIsGeneral(t *testing.T) {
	if got := Categorize("XYZ 9999", "Mystery Course"); got != CategoryGeneral {
		t.Fatalf("expected %q for unknown course, got %q", CategoryGeneral, got)
	}
	if got := Categorize("", "Mystery Course"); got != CategoryGeneral {
		t.Fatalf("expected %q for unknown title, got %q", CategoryGeneral, got)
	}
}

func TestCategorizePrefixWinsOverKeyword(t *testing.T) {
	// A coded major stays a major even when the title names another family.
	if got := Categorize("ICC 0105", "Database Management Systems"); got != CategoryMajor {
		t.Fatalf("expected prefix to take precedence, got %q", got)
	}
}
