// Package normalize provides text-cleaning utilities shared by the extractor
// and the generator adapters.
package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// Collapse trims the text and collapses all runs of whitespace (including
// newlines and tabs) into single spaces.
func Collapse(text string) string {
	return strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))
}

// StripMarkup removes markdown noise characters that LLM responses tend to
// carry over into plain-text surfaces.
func StripMarkup(text string) string {
	replacer := strings.NewReplacer(
		"**", "",
		"*", "",
		"#", "",
		"`", "",
	)
	return replacer.Replace(text)
}

// Truncate shortens text to at most limit runes, appending an ellipsis when
// truncated.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
