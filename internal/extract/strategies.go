package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/interview-coach/internal/normalize"
)

// titleStrategy attempts one way of locating the posting title. It returns
// the cleaned title and whether it found one; "not found" is an expected
// outcome, not an error.
type titleStrategy struct {
	name string
	find func(doc *goquery.Document) (string, bool)
}

// titleStrategies is the ordered fallback chain for title resolution. The
// first strategy that yields a non-empty title wins.
var titleStrategies = []titleStrategy{
	{name: "h1", find: titleFromH1},
	{name: "title-attr", find: titleFromAttrs},
	{name: "title-tag", find: titleFromTitleTag},
	{name: "job-heading", find: titleFromJobHeading},
}

// resolveTitle runs the strategy chain and returns the first match.
func resolveTitle(doc *goquery.Document) (string, bool) {
	for _, strategy := range titleStrategies {
		if title, ok := strategy.find(doc); ok {
			return title, true
		}
	}
	return "", false
}

func titleFromH1(doc *goquery.Document) (string, bool) {
	return cleanedText(doc.Find("h1").First())
}

// titleFromAttrs matches elements whose class or id contains a title-like
// token, in any letter case. Attribute substring selectors with the `i` flag
// keep this a single cascadia query.
func titleFromAttrs(doc *goquery.Document) (string, bool) {
	selector := "[class*='job-title' i], [class*='jobtitle' i], [id*='job-title' i], [id*='jobtitle' i]"
	return cleanedText(doc.Find(selector).First())
}

func titleFromTitleTag(doc *goquery.Document) (string, bool) {
	return cleanedText(doc.Find("title").First())
}

// titleFromJobHeading falls back to any h1/h2 heading that mentions the role
// at all.
func titleFromJobHeading(doc *goquery.Document) (string, bool) {
	var title string
	doc.Find("h1, h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := normalize.Collapse(s.Text())
		lower := strings.ToLower(text)
		if strings.Contains(lower, "job") || strings.Contains(lower, "position") {
			title = text
			return false
		}
		return true
	})
	return title, title != ""
}

// cleanedText collapses the selection text and reports whether anything
// remained.
func cleanedText(s *goquery.Selection) (string, bool) {
	if s.Length() == 0 {
		return "", false
	}
	text := normalize.Collapse(s.Text())
	return text, text != ""
}
