package render

import (
	"fmt"
	"strings"

	"github.com/QTest-hq/autoprio/internal/report"
	"github.com/QTest-hq/autoprio/internal/scoring"
)

// MarkdownRenderer produces the Markdown report.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Name() string          { return "markdown" }
func (r *MarkdownRenderer) FileExtension() string { return ".md" }

var tierEmoji = map[scoring.Tier]string{
	scoring.TierHighest:      "🔴",
	scoring.TierHigh:         "🟠",
	scoring.TierMedium:       "🟡",
	scoring.TierLow:          "🔵",
	scoring.TierLowest:       "🔷",
	scoring.TierWontAutomate: "⚪",
}

func (r *MarkdownRenderer) Render(rep *report.Report) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Test Automation Priority Report\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n", rep.GeneratedAt.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("**Total Tests:** %d\n", rep.TotalTests))
	if len(rep.Sections) > 0 {
		sb.WriteString(fmt.Sprintf("**Sections:** %d\n", len(rep.Sections)))
	}
	sb.WriteString("\n---\n\n")

	for _, group := range rep.Tiers {
		r.writeTier(&sb, group)
	}

	if len(rep.Sections) > 0 {
		sb.WriteString("## SECTION BREAKDOWN\n\n")
		for _, section := range rep.Sections {
			sb.WriteString(fmt.Sprintf("### Section: %s\n", section.Name))
			sb.WriteString(fmt.Sprintf("**Total Tests:** %d\n", section.Total))
			sb.WriteString("**Priority Distribution:**\n")
			for _, tier := range scoring.Tiers() {
				if count := section.Counts[tier]; count > 0 {
					sb.WriteString(fmt.Sprintf("* %s **%s**: %d tests\n", tierEmoji[tier], tier, count))
				}
			}
			sb.WriteString("\n")
		}
		sb.WriteString("---\n\n")
	}

	return sb.String(), nil
}

func (r *MarkdownRenderer) writeTier(sb *strings.Builder, group report.TierGroup) {
	if group.Tier == scoring.TierWontAutomate {
		// Only rendered when occupied, matching the plain-text layout.
		if len(group.Entries) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("## %s TESTS THAT WON'T BE AUTOMATED\n\n", tierEmoji[group.Tier]))
	} else {
		heading := strings.ToUpper(string(group.Tier)) + " PRIORITY TESTS"
		sb.WriteString(fmt.Sprintf("## %s %s (%s)\n\n", tierEmoji[group.Tier], heading, mdBounds(group)))
	}
	if group.Description != "" {
		sb.WriteString(fmt.Sprintf("*%s*\n\n", group.Description))
	}

	if len(group.Entries) == 0 {
		sb.WriteString("*No tests in this category*\n\n---\n\n")
		return
	}

	for i, entry := range group.Entries {
		sb.WriteString(fmt.Sprintf("### %d. %s\n", i+1, entry.Name))
		if group.Tier != scoring.TierWontAutomate {
			sb.WriteString(fmt.Sprintf("**Score:** %.1f\n", entry.TotalScore))
		}
		if entry.TicketID != "" {
			sb.WriteString(fmt.Sprintf("**Ticket:** %s\n", entry.TicketID))
		}
		if entry.Section != "" {
			sb.WriteString(fmt.Sprintf("**Section:** %s\n", entry.Section))
		}
		if entry.Description != "" {
			sb.WriteString(fmt.Sprintf("**Description:** %s\n", entry.Description))
		}
		if len(entry.Factors) > 0 {
			sb.WriteString("**Factor Scores:**\n")
			for _, f := range entry.Factors {
				sb.WriteString(fmt.Sprintf("* **%s**: %d - %s\n", f.Name, f.Score, f.Label))
			}
		}
		for _, a := range entry.Answers {
			sb.WriteString(fmt.Sprintf("* **%s**: %s\n", a.Question, yesNo(a.Answer)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("---\n\n")
}

func mdBounds(group report.TierGroup) string {
	switch {
	case group.HasLower && group.HasUpper:
		return fmt.Sprintf("Score %.1f - %.1f", group.Lower, group.Upper)
	case group.HasLower:
		return fmt.Sprintf("Score >= %.1f", group.Lower)
	case group.HasUpper:
		return fmt.Sprintf("Score < %.1f", group.Upper)
	default:
		return ""
	}
}
