package transcript

import "strings"

// Category labels assigned to course records. Prefix-derived labels follow
// the registrar's curriculum groups; keyword-derived labels name the subject
// family directly.
const (
	CategoryMajor         = "Major"
	CategoryMathematics   = "Mathematics"
	CategoryGeneralEd     = "General Education"
	CategoryPE            = "Physical Education"
	CategoryNSTP          = "NSTP"
	CategoryCapstone      = "Capstone"
	CategoryProgramming   = "Programming"
	CategoryDataScience   = "Data Science"
	CategoryDesign        = "Design"
	CategoryEngineering   = "Engineering"
	CategoryScience       = "Science"
	CategoryBusiness      = "Business"
	CategoryCommunication = "Communication"
	CategoryGeneral       = "General"
)

// prefixCategories maps the letter part of a course code to a category.
// Entries are matched in order against the whole prefix, not as substrings,
// so "PED" never falls into "PE".
var prefixCategories = []struct {
	prefixes []string
	category string
}{
	{[]string{"ICC", "EIT", "CSC", "IIT"}, CategoryMajor},
	{[]string{"CET", "MMW"}, CategoryMathematics},
	{[]string{"CAP", "IIP"}, CategoryCapstone},
	{[]string{"NSTP", "CWTS", "ROTC"}, CategoryNSTP},
	{[]string{"PED", "PE"}, CategoryPE},
	{[]string{"PCM", "AAP", "STS", "UTS", "RPH", "TCW", "ETH", "GTB", "LWR"}, CategoryGeneralEd},
}

// keywordCategories is the fallback for rows without a recognized code
// prefix. First match wins, so more specific families come first.
var keywordCategories = []struct {
	keywords []string
	category string
}{
	{[]string{"data", "analytics", "machine learning", "statistics", "probability"}, CategoryDataScience},
	{[]string{"programming", "computing", "software", "algorithm", "database", "web"}, CategoryProgramming},
	{[]string{"calculus", "algebra", "mathematics", "trigonometry", "discrete"}, CategoryMathematics},
	{[]string{"design", "graphics", "multimedia", "animation", "user experience", "human-computer"}, CategoryDesign},
	{[]string{"network", "system", "architecture", "hardware", "engineering"}, CategoryEngineering},
	{[]string{"physics", "chemistry", "biology", "science"}, CategoryScience},
	{[]string{"management", "business", "entrepreneur", "economics", "accounting", "marketing"}, CategoryBusiness},
	{[]string{"communication", "english", "filipino", "speech", "writing", "purposive"}, CategoryCommunication},
	{[]string{"physical education", "pathfit", "wellness"}, CategoryPE},
}

// Categorize assigns a category from the course code prefix, falling back to
// title keywords, then to General. It never fails: an unknown course is
// simply General.
func Categorize(code, title string) string {
	prefix := code
	if i := strings.IndexByte(prefix, ' '); i > 0 {
		prefix = prefix[:i]
	}
	prefix = strings.ToUpper(strings.TrimSpace(prefix))

	if prefix != "" {
		for _, entry := range prefixCategories {
			for _, p := range entry.prefixes {
				if prefix == p {
					return entry.category
				}
			}
		}
	}

	lower := strings.ToLower(title)
	for _, entry := range keywordCategories {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}

	return CategoryGeneral
}
