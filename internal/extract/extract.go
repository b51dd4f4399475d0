package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/interview-coach/internal/normalize"
)

const (
	// minItemLength filters out stray list items and labels when collecting
	// requirements and responsibilities from structured sections.
	minItemLength = 20
	// minChunkLength filters out navigation scraps when classifying
	// unstructured paragraph chunks in the fallback tier.
	minChunkLength = 50
)

// experiencePattern matches year-count tokens such as "3 years", "2-4 yrs"
// or "5+ years".
var experiencePattern = regexp.MustCompile(`\b(\d+(?:[-–\s]\d+)?\+?\s*(?:year|yr)s?)\b`)

// Extract parses raw HTML into a JobPosting. It fails with an
// *ExtractionError when no title can be resolved or when every fallback tier
// leaves requirements, responsibilities and description all empty.
// Extraction is pure: identical (html, url) inputs yield identical postings.
func Extract(html, url string) (*JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ExtractionError{URL: url, Reason: "malformed HTML", Cause: err}
	}

	// Slices start empty, not nil, so a posting with no structured sections
	// still serializes them as [] for schema consumers.
	posting := &JobPosting{
		URL:              url,
		Requirements:     []string{},
		Responsibilities: []string{},
	}

	if title, ok := resolveTitle(doc); ok {
		posting.Title = title
	}

	extractSections(doc, posting)
	extractExperience(doc, posting)

	if !posting.HasContent() {
		extractFallback(doc, posting)
	}

	if err := posting.validate(); err != nil {
		return nil, err
	}
	return posting, nil
}

// extractSections walks block-level containers and classifies each against
// the keyword table. A container may belong to several categories at once.
// Description is last-match-wins; requirements and responsibilities
// accumulate across all matching containers.
func extractSections(doc *goquery.Document, posting *JobPosting) {
	doc.Find("div, section").Each(func(_ int, section *goquery.Selection) {
		text := strings.ToLower(normalize.Collapse(section.Text()))
		id := strings.ToLower(section.AttrOr("id", ""))
		class := strings.ToLower(section.AttrOr("class", ""))

		if matchesCategory(CategoryDescription, id, class, text) {
			posting.Description = normalize.Collapse(section.Text())
		}
		if matchesCategory(CategoryRequirements, id, class, text) {
			posting.Requirements = append(posting.Requirements, collectItems(section)...)
		}
		if matchesCategory(CategoryResponsibilities, id, class, text) {
			posting.Responsibilities = append(posting.Responsibilities, collectItems(section)...)
		}
	})
}

// collectItems gathers list-item and paragraph descendants long enough to be
// real content.
func collectItems(section *goquery.Selection) []string {
	var items []string
	section.Find("li, p").Each(func(_ int, item *goquery.Selection) {
		text := normalize.Collapse(item.Text())
		if len(text) > minItemLength {
			items = append(items, text)
		}
	})
	return items
}

// extractExperience looks for a year-count token in any container that
// mentions experience. The first match across the document wins.
func extractExperience(doc *goquery.Document, posting *JobPosting) {
	doc.Find("div, section").EachWithBreak(func(_ int, section *goquery.Selection) bool {
		text := strings.ToLower(normalize.Collapse(section.Text()))
		if !strings.Contains(text, "experience") {
			return true
		}
		if match := experiencePattern.FindString(text); match != "" {
			posting.ExperienceLevel = match
			return false
		}
		return true
	})
}

// extractFallback handles pages with no recognizably tagged sections: it
// takes the main content region, splits it into paragraph-like chunks and
// classifies each chunk by keyword presence alone. Requirement and
// responsibility chunks accumulate; the last description chunk wins.
func extractFallback(doc *goquery.Document, posting *JobPosting) {
	main := doc.Find("main, article").First()
	if main.Length() == 0 {
		main = doc.Find("body").First()
	}
	if main.Length() == 0 {
		return
	}

	for _, chunk := range strings.Split(main.Text(), "\n") {
		if len(strings.TrimSpace(chunk)) <= minChunkLength {
			continue
		}
		cleaned := normalize.Collapse(chunk)
		switch classifyChunk(cleaned) {
		case CategoryRequirements:
			posting.Requirements = append(posting.Requirements, cleaned)
		case CategoryResponsibilities:
			posting.Responsibilities = append(posting.Responsibilities, cleaned)
		default:
			posting.Description = cleaned
		}
	}
}
