// Package backlog owns the in-memory collection of manual tests ranked
// for automation: the Test record, the repository with its id generator
// and section tracking, and CSV row reconciliation.
package backlog

import "github.com/QTest-hq/autoprio/internal/scoring"

// Test is a manual test scored for automation value. RawScore, TotalScore
// and Priority are derived from Scores by the repository and are never
// stored out of sync with it.
type Test struct {
	ID           int                       `json:"id"`
	Name         string                    `json:"name"`
	Description  string                    `json:"description"`
	TicketID     string                    `json:"ticket_id"`
	Section      string                    `json:"section,omitempty"`
	Scores       map[scoring.FactorKey]int `json:"scores"`
	YesNoAnswers map[string]bool           `json:"yes_no_answers"`
	RawScore     int                       `json:"raw_score"`
	TotalScore   float64                   `json:"total_score"`
	Priority     scoring.Tier              `json:"priority"`
}

// CanAutomate reports whether the test is automatable at all.
func (t *Test) CanAutomate() bool {
	return scoring.CanAutomate(t.Scores)
}

// Clone returns a deep copy. The repository hands out clones so callers
// cannot desync the derived fields from Scores.
func (t *Test) Clone() *Test {
	out := *t
	out.Scores = make(map[scoring.FactorKey]int, len(t.Scores))
	for k, v := range t.Scores {
		out.Scores[k] = v
	}
	out.YesNoAnswers = make(map[string]bool, len(t.YesNoAnswers))
	for k, v := range t.YesNoAnswers {
		out.YesNoAnswers[k] = v
	}
	return &out
}
