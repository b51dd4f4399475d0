package extract

import "strings"

// Category classifies a block of page content.
type Category int

const (
	// CategoryNone means no keyword matched.
	CategoryNone Category = iota
	// CategoryDescription is general role/description content.
	CategoryDescription
	// CategoryRequirements is qualifications and skills content.
	CategoryRequirements
	// CategoryResponsibilities is duties content.
	CategoryResponsibilities
)

func (c Category) String() string {
	switch c {
	case CategoryDescription:
		return "description"
	case CategoryRequirements:
		return "requirements"
	case CategoryResponsibilities:
		return "responsibilities"
	default:
		return "none"
	}
}

// categoryKeywords is the fixed keyword-to-category table. Matching is
// keyword-in-string, not whole-word, against ids, class tokens and lowered
// text. Loose on purpose: job boards tag sections inconsistently, and false
// positives are gated later by posting validation.
var categoryKeywords = map[Category][]string{
	CategoryDescription:      {"job-description", "description", "job-details", "about-job", "job-summary"},
	CategoryRequirements:     {"requirements", "qualifications", "skills", "what-we-need"},
	CategoryResponsibilities: {"responsibilities", "duties", "what-you-will-do", "day-to-day"},
}

// matchesCategory reports whether any keyword for the category occurs in any
// of the candidate strings. Candidates must already be lower-cased.
func matchesCategory(category Category, candidates ...string) bool {
	for _, keyword := range categoryKeywords[category] {
		for _, candidate := range candidates {
			if strings.Contains(candidate, keyword) {
				return true
			}
		}
	}
	return false
}

// classifyChunk assigns a single category to a free-text paragraph chunk.
// Requirements win over responsibilities, and anything unmatched defaults to
// description. Used only by the unstructured fallback tier; structured
// sections may belong to several categories at once and are checked per
// category instead.
func classifyChunk(chunk string) Category {
	lower := strings.ToLower(chunk)
	if matchesCategory(CategoryRequirements, lower) {
		return CategoryRequirements
	}
	if matchesCategory(CategoryResponsibilities, lower) {
		return CategoryResponsibilities
	}
	return CategoryDescription
}
