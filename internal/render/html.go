package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/QTest-hq/autoprio/internal/report"
	"github.com/QTest-hq/autoprio/internal/scoring"
)

// HTMLRenderer produces a standalone HTML page.
type HTMLRenderer struct{}

func (r *HTMLRenderer) Name() string          { return "html" }
func (r *HTMLRenderer) FileExtension() string { return ".html" }

var tierCSSClass = map[scoring.Tier]string{
	scoring.TierHighest:      "highest",
	scoring.TierHigh:         "high",
	scoring.TierMedium:       "medium",
	scoring.TierLow:          "low",
	scoring.TierLowest:       "lowest",
	scoring.TierWontAutomate: "wont-automate",
}

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Test Automation Priority Report</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 2em auto; max-width: 60em; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: 0.3em; }
h2 { margin-top: 1.6em; }
.summary { display: flex; gap: 1em; margin: 1em 0; }
.summary-item { border: 1px solid #ccc; border-radius: 6px; padding: 0.6em 1em; text-align: center; }
.summary-count { font-size: 1.6em; font-weight: bold; }
.tier { border-left: 6px solid #999; padding-left: 1em; margin-bottom: 1.5em; }
.tier.highest { border-color: #c0392b; }
.tier.high { border-color: #e67e22; }
.tier.medium { border-color: #f1c40f; }
.tier.low { border-color: #2980b9; }
.tier.lowest { border-color: #7fb3d5; }
.tier.wont-automate { border-color: #95a5a6; }
.test { margin-bottom: 1em; }
.test h3 { margin-bottom: 0.2em; }
.meta { color: #555; margin: 0.1em 0; }
.empty { color: #777; font-style: italic; }
ul.factors { margin: 0.3em 0 0.3em 1.2em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3em 0.7em; }
</style>
</head>
<body>
`

func (r *HTMLRenderer) Render(rep *report.Report) (string, error) {
	var sb strings.Builder
	sb.WriteString(htmlHeader)

	sb.WriteString("<h1>Test Automation Priority Report</h1>\n")
	sb.WriteString(fmt.Sprintf("<p class=\"meta\">Generated: %s · Total tests: %d</p>\n",
		rep.GeneratedAt.Format("2006-01-02 15:04"), rep.TotalTests))

	// Summary counts per tier
	sb.WriteString("<div class=\"summary\">\n")
	for _, group := range rep.Tiers {
		sb.WriteString(fmt.Sprintf(
			"<div class=\"summary-item %s\"><div class=\"summary-count\">%d</div><div class=\"summary-label\">%s</div></div>\n",
			tierCSSClass[group.Tier], len(group.Entries), html.EscapeString(string(group.Tier))))
	}
	sb.WriteString("</div>\n")

	for _, group := range rep.Tiers {
		r.writeTier(&sb, group)
	}

	if len(rep.Sections) > 0 {
		sb.WriteString("<h2>Section Breakdown</h2>\n<table>\n<tr><th>Section</th><th>Total</th>")
		for _, tier := range scoring.Tiers() {
			sb.WriteString(fmt.Sprintf("<th>%s</th>", html.EscapeString(string(tier))))
		}
		sb.WriteString("</tr>\n")
		for _, section := range rep.Sections {
			sb.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%d</td>", html.EscapeString(section.Name), section.Total))
			for _, tier := range scoring.Tiers() {
				sb.WriteString(fmt.Sprintf("<td>%d</td>", section.Counts[tier]))
			}
			sb.WriteString("</tr>\n")
		}
		sb.WriteString("</table>\n")
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

func (r *HTMLRenderer) writeTier(sb *strings.Builder, group report.TierGroup) {
	sb.WriteString(fmt.Sprintf("<div class=\"tier %s\">\n", tierCSSClass[group.Tier]))
	if group.Tier == scoring.TierWontAutomate {
		sb.WriteString("<h2>Tests That Won't Be Automated</h2>\n")
	} else {
		sb.WriteString(fmt.Sprintf("<h2>%s Priority Tests (%s)</h2>\n",
			html.EscapeString(string(group.Tier)), mdBounds(group)))
	}
	if group.Description != "" {
		sb.WriteString(fmt.Sprintf("<p class=\"meta\">%s</p>\n", html.EscapeString(group.Description)))
	}

	if len(group.Entries) == 0 {
		sb.WriteString("<p class=\"empty\">No tests in this category</p>\n</div>\n")
		return
	}

	for i, entry := range group.Entries {
		sb.WriteString("<div class=\"test\">\n")
		sb.WriteString(fmt.Sprintf("<h3>%d. %s</h3>\n", i+1, html.EscapeString(entry.Name)))
		if group.Tier != scoring.TierWontAutomate {
			sb.WriteString(fmt.Sprintf("<p class=\"meta\">Score: %.1f</p>\n", entry.TotalScore))
		}
		if entry.TicketID != "" {
			sb.WriteString(fmt.Sprintf("<p class=\"meta\">Ticket: %s</p>\n", html.EscapeString(entry.TicketID)))
		}
		if entry.Section != "" {
			sb.WriteString(fmt.Sprintf("<p class=\"meta\">Section: %s</p>\n", html.EscapeString(entry.Section)))
		}
		if entry.Description != "" {
			sb.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(entry.Description)))
		}
		if len(entry.Factors) > 0 {
			sb.WriteString("<ul class=\"factors\">\n")
			for _, f := range entry.Factors {
				sb.WriteString(fmt.Sprintf("<li><strong>%s</strong>: %d - %s</li>\n",
					html.EscapeString(f.Name), f.Score, html.EscapeString(f.Label)))
			}
			sb.WriteString("</ul>\n")
		}
		for _, a := range entry.Answers {
			sb.WriteString(fmt.Sprintf("<p class=\"meta\">%s: %s</p>\n",
				html.EscapeString(a.Question), yesNo(a.Answer)))
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString("</div>\n")
}
