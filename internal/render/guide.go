package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/QTest-hq/autoprio/internal/scoring"
)

// ScoringGuide renders the plain-text explanation of the catalog: every
// factor with its weight and option labels, plus how the final score is
// derived.
func ScoringGuide(cat *scoring.Catalog) string {
	var sb strings.Builder

	sb.WriteString("TEST AUTOMATION PRIORITIZATION SCORING GUIDE\n")
	sb.WriteString(strings.Repeat("=", 44) + "\n\n")
	sb.WriteString("This tool uses the following weighted factors to calculate\n")
	sb.WriteString("which manual tests should be prioritized for automation:\n\n")

	minRaw := 0
	for _, f := range cat.Factors() {
		sb.WriteString(fmt.Sprintf("%s (Weight: %d)\n", f.Name, f.Weight))
		sb.WriteString(strings.Repeat("-", 50) + "\n")
		for _, score := range scoring.ScoreValues {
			if label := cat.OptionLabel(f.Key, score); label != "" {
				sb.WriteString(fmt.Sprintf("  %d - %s\n", score, label))
			}
		}
		sb.WriteString("\n")
		if f.Key != scoring.FactorCanBeAutomated {
			minRaw += scoring.ScoreLow * f.Weight
		}
	}

	if questions := cat.Questions(); len(questions) > 0 {
		keys := make([]string, 0, len(questions))
		for k := range questions {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("Yes/No Questions:\n")
		sb.WriteString(strings.Repeat("-", 50) + "\n")
		for _, k := range keys {
			q := questions[k]
			sb.WriteString(fmt.Sprintf("  %s (%s)\n", q.Text, q.Impact))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("How scores are calculated:\n")
	sb.WriteString(strings.Repeat("-", 50) + "\n")
	sb.WriteString("1. Each factor score is multiplied by its weight\n")
	sb.WriteString("2. These weighted scores are summed to get a raw score\n")
	sb.WriteString("3. The raw score is converted to a 100-point scale\n\n")
	sb.WriteString("Formula: Final Score = (Raw Score / Max Possible Raw Score) * 100\n\n")
	sb.WriteString(fmt.Sprintf("Maximum possible raw score: %d\n", cat.MaxRawScore()))
	sb.WriteString("Maximum possible final score: 100\n")
	sb.WriteString(fmt.Sprintf("Minimum possible raw score: %d\n\n", minRaw))

	if cat.Has(scoring.FactorCanBeAutomated) {
		sb.WriteString("Special Case - Tests that cannot be automated:\n")
		sb.WriteString(strings.Repeat("-", 50) + "\n")
		sb.WriteString("If a test is marked 'No' on the 'Can it be Automated' factor, it\n")
		sb.WriteString("automatically receives a score of 0 and the priority category\n")
		sb.WriteString(fmt.Sprintf("'%s'. These tests are excluded from normal\n", scoring.TierWontAutomate))
		sb.WriteString("prioritization and shown separately.\n")
	}

	return sb.String()
}
