package archetype

import "github.com/mcggEz/backend-gradalyze-capstone/internal/transcript"

type rule struct {
	name      string
	dimension string
	points    int
	when      func(Evidence) bool
}

// rules is the fixed additive table. Every rule is evaluated independently;
// points accumulate on the named dimension. Evaluation order never changes
// the outcome, only the table contents do.
var rules = []rule{
	{
		name: "excellent gpa", dimension: Investigative, points: 3,
		when: func(ev Evidence) bool { return ev.SubjectsCount > 0 && ev.GPA <= 1.75 },
	},
	{
		name: "strong gpa", dimension: Investigative, points: 2,
		when: func(ev Evidence) bool { return ev.SubjectsCount > 0 && ev.GPA <= 2.0 },
	},
	{
		name: "steady gpa", dimension: Conventional, points: 2,
		when: func(ev Evidence) bool { return ev.GPA > 2.0 && ev.GPA <= 3.0 },
	},
	{
		name: "strong majors", dimension: Realistic, points: 2,
		when: strongIn(transcript.CategoryMajor),
	},
	{
		name: "strong programming", dimension: Investigative, points: 2,
		when: strongIn(transcript.CategoryProgramming),
	},
	{
		name: "strong mathematics", dimension: Investigative, points: 2,
		when: strongIn(transcript.CategoryMathematics),
	},
	{
		name: "strong data science", dimension: Investigative, points: 2,
		when: strongIn(transcript.CategoryDataScience),
	},
	{
		name: "strong science", dimension: Investigative, points: 1,
		when: strongIn(transcript.CategoryScience),
	},
	{
		name: "strong engineering", dimension: Realistic, points: 2,
		when: strongIn(transcript.CategoryEngineering),
	},
	{
		name: "strong design", dimension: Artistic, points: 3,
		when: strongIn(transcript.CategoryDesign),
	},
	{
		name: "strong communication", dimension: Social, points: 2,
		when: strongIn(transcript.CategoryCommunication),
	},
	{
		name: "strong communication expressiveness", dimension: Artistic, points: 1,
		when: strongIn(transcript.CategoryCommunication),
	},
	{
		name: "strong business", dimension: Enterprising, points: 2,
		when: strongIn(transcript.CategoryBusiness),
	},
	{
		name: "strong business structure", dimension: Conventional, points: 1,
		when: strongIn(transcript.CategoryBusiness),
	},
	{
		name: "strong capstone", dimension: Enterprising, points: 2,
		when: strongIn(transcript.CategoryCapstone),
	},
	{
		name: "strong physical education", dimension: Realistic, points: 1,
		when: strongIn(transcript.CategoryPE),
	},
	{
		name: "strong civic training", dimension: Social, points: 1,
		when: strongIn(transcript.CategoryNSTP),
	},
	{
		name: "strong general education", dimension: Social, points: 1,
		when: strongIn(transcript.CategoryGeneralEd),
	},
	{
		name: "broad course load", dimension: Enterprising, points: 2,
		when: func(ev Evidence) bool { return ev.SubjectsCount >= 8 },
	},
	{
		name: "sustained course load", dimension: Conventional, points: 1,
		when: func(ev Evidence) bool { return ev.SubjectsCount >= 5 },
	},
	{
		name: "no weak areas", dimension: Conventional, points: 2,
		when: func(ev Evidence) bool { return ev.SubjectsCount > 0 && len(ev.WeakCategories) == 0 },
	},
	{
		name: "recovers from weak areas", dimension: Realistic, points: 2,
		when: func(ev Evidence) bool { return len(ev.WeakCategories) > 0 && ev.GPA <= 2.5 },
	},
	{
		name: "diverse strengths", dimension: Artistic, points: 1,
		when: func(ev Evidence) bool { return len(ev.StrongCategories) >= 3 },
	},
	{
		name: "multiple strengths", dimension: Enterprising, points: 1,
		when: func(ev Evidence) bool { return len(ev.StrongCategories) >= 2 },
	},
}

func strongIn(category string) func(Evidence) bool {
	return func(ev Evidence) bool {
		for _, c := range ev.StrongCategories {
			if c == category {
				return true
			}
		}
		return false
	}
}
