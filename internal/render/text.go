package render

import (
	"fmt"
	"strings"

	"github.com/QTest-hq/autoprio/internal/report"
	"github.com/QTest-hq/autoprio/internal/scoring"
)

const textRule = "----------------------------------------------------------------------"

// TextRenderer produces the plain-text report.
type TextRenderer struct{}

func (r *TextRenderer) Name() string          { return "text" }
func (r *TextRenderer) FileExtension() string { return ".txt" }

func (r *TextRenderer) Render(rep *report.Report) (string, error) {
	var sb strings.Builder

	sb.WriteString("TEST AUTOMATION PRIORITY REPORT\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", rep.GeneratedAt.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("Report ID: %s\n", rep.ID))
	sb.WriteString(fmt.Sprintf("Total Tests: %d\n", rep.TotalTests))
	if len(rep.Sections) > 0 {
		sb.WriteString(fmt.Sprintf("Sections: %d\n", len(rep.Sections)))
	}
	sb.WriteString(strings.Repeat("=", 70) + "\n\n")

	for _, group := range rep.Tiers {
		sb.WriteString(tierHeading(group) + "\n")
		if group.Description != "" {
			sb.WriteString(group.Description + "\n")
		}
		sb.WriteString(textRule + "\n")

		if len(group.Entries) == 0 {
			sb.WriteString("| No tests in this category\n")
		}
		for i, entry := range group.Entries {
			r.writeEntry(&sb, i, entry, group.Tier)
		}
		sb.WriteString(textRule + "\n\n")
	}

	if len(rep.Sections) > 0 {
		sb.WriteString("SECTION BREAKDOWN:\n")
		sb.WriteString(textRule + "\n")
		for _, section := range rep.Sections {
			sb.WriteString(fmt.Sprintf("| %s (%d tests)\n", section.Name, section.Total))
			for _, tier := range scoring.Tiers() {
				if count := section.Counts[tier]; count > 0 {
					sb.WriteString(fmt.Sprintf("|    %s: %d\n", tier, count))
				}
			}
			sb.WriteString("|\n")
		}
		sb.WriteString(textRule + "\n")
	}

	return sb.String(), nil
}

func (r *TextRenderer) writeEntry(sb *strings.Builder, i int, entry report.Entry, tier scoring.Tier) {
	sb.WriteString(fmt.Sprintf("| %d. %s (ID: %d)\n", i+1, entry.Name, entry.ID))
	if tier != scoring.TierWontAutomate {
		sb.WriteString(fmt.Sprintf("|    Score: %.1f\n", entry.TotalScore))
	}
	if entry.TicketID != "" {
		sb.WriteString(fmt.Sprintf("|    Ticket: %s\n", entry.TicketID))
	}
	if entry.Section != "" {
		sb.WriteString(fmt.Sprintf("|    Section: %s\n", entry.Section))
	}
	if entry.Description != "" {
		sb.WriteString(fmt.Sprintf("|    Description: %s\n", entry.Description))
	}
	if len(entry.Factors) > 0 {
		sb.WriteString("|    Factor Scores:\n")
		for _, f := range entry.Factors {
			sb.WriteString(fmt.Sprintf("|      - %s: %d - %s\n", f.Name, f.Score, f.Label))
		}
	}
	for _, a := range entry.Answers {
		sb.WriteString(fmt.Sprintf("|    * %s: %s\n", a.Question, yesNo(a.Answer)))
	}
	sb.WriteString("|\n")
}

// tierHeading renders the tier title with its score bounds, e.g.
// "HIGHEST PRIORITY TESTS (Score >= 90.0):".
func tierHeading(group report.TierGroup) string {
	if group.Tier == scoring.TierWontAutomate {
		return "TESTS THAT WON'T BE AUTOMATED:"
	}

	title := strings.ToUpper(string(group.Tier)) + " PRIORITY TESTS"
	switch {
	case group.HasLower && group.HasUpper:
		return fmt.Sprintf("%s (Score %.1f - %.1f):", title, group.Lower, group.Upper)
	case group.HasLower:
		return fmt.Sprintf("%s (Score >= %.1f):", title, group.Lower)
	case group.HasUpper:
		return fmt.Sprintf("%s (Score < %.1f):", title, group.Upper)
	default:
		return title + ":"
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
