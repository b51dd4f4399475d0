package bot

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/normalize"
)

const (
	summaryItemLimit  = 3
	summaryItemLength = 150
	summaryItemMinLen = 30
)

// formatSummary renders the position overview shown after a posting is
// accepted. Only the first few substantial bullet points are shown; the full
// lists still drive question generation.
func formatSummary(posting *extract.JobPosting) string {
	var sb strings.Builder

	sb.WriteString("✨ Position Overview\n\n")
	sb.WriteString("📋 Role\n")
	sb.WriteString(posting.Title)
	sb.WriteString("\n\n📑 Key Requirements")
	writeItems(&sb, posting.Requirements, "Requirements not specified in the job posting")

	sb.WriteString("\n\n💼 Core Responsibilities")
	writeItems(&sb, posting.Responsibilities, "Responsibilities not specified in the job posting")

	if posting.ExperienceLevel != "" {
		sb.WriteString("\n\n⭐ Experience Required\n")
		sb.WriteString(posting.ExperienceLevel)
	}

	sb.WriteString("\n\n🎯 Next Steps\nI'll generate targeted interview questions based on this role. Get ready to practice!")
	return sb.String()
}

func writeItems(sb *strings.Builder, items []string, placeholder string) {
	written := 0
	for _, item := range items {
		if written == summaryItemLimit {
			break
		}
		// Drop short fragments and leftover section labels.
		if len(item) <= summaryItemMinLen || looksLikeLabel(item) {
			continue
		}
		sb.WriteString("\n• ")
		sb.WriteString(normalize.Truncate(normalize.StripMarkup(item), summaryItemLength))
		written++
	}
	if written == 0 {
		sb.WriteString("\n• ")
		sb.WriteString(placeholder)
	}
}

func looksLikeLabel(item string) bool {
	head := strings.ToLower(item)
	if len(head) > 10 {
		head = head[:10]
	}
	return strings.Contains(head, "job")
}
