package backlog

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/QTest-hq/autoprio/internal/scoring"
)

// Reserved column names in imported rows. Factor columns are keyed by the
// factor display names from the catalog.
const (
	ColumnTestID      = "Test ID"
	ColumnTestName    = "Test Name"
	ColumnTicketID    = "Ticket ID"
	ColumnDescription = "Description"
	ColumnSection     = "Section"
)

// ImportTests reconciles raw string-keyed rows (typically parsed CSV)
// into the repository. Malformed rows are repaired, never rejected:
// an unparseable or missing factor score defaults to 3, except
// CanBeAutomated which defaults to 5 so a missing answer cannot silently
// sink a whole imported batch into "Won't Automate".
//
// A row's "Test ID" is used as-is when it parses as an integer, and the
// id generator is advanced past the highest id seen so later AddTest
// calls cannot collide. Rows without a usable id draw from the generator.
//
// With replace set, the existing collection, section set and id generator
// are cleared first. Returns the number of rows processed, including the
// ones that needed defaulting.
func (r *Repository) ImportTests(rows []map[string]string, replace bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if replace {
		r.tests = nil
		r.nextID = 1
		r.sections = make(map[string]struct{})
	}

	defaulted := 0
	for _, row := range rows {
		scores := make(map[scoring.FactorKey]int, r.catalog.Len())
		for _, f := range r.catalog.Factors() {
			v, ok := parseInt(row[f.Name])
			if !ok {
				if f.Key == scoring.FactorCanBeAutomated {
					v = scoring.ScoreHigh
				} else {
					v = scoring.ScoreMedium
				}
				defaulted++
			}
			scores[f.Key] = v
		}

		id, ok := parseInt(row[ColumnTestID])
		if !ok {
			id = r.nextID
		}
		if id >= r.nextID {
			r.nextID = id + 1
		}

		raw, normalized := scoring.ComputeScore(scores, r.catalog)
		test := &Test{
			ID:           id,
			Name:         row[ColumnTestName],
			TicketID:     row[ColumnTicketID],
			Description:  cleanField(row[ColumnDescription]),
			Section:      cleanField(row[ColumnSection]),
			Scores:       scores,
			YesNoAnswers: map[string]bool{},
			RawScore:     raw,
			TotalScore:   normalized,
			Priority:     scoring.Classify(normalized, scoring.CanAutomate(scores)),
		}

		r.tests = append(r.tests, test)
		if test.Section != "" {
			r.sections[test.Section] = struct{}{}
		}
	}

	if defaulted > 0 {
		log.Warn().
			Int("rows", len(rows)).
			Int("defaulted_scores", defaulted).
			Msg("import repaired missing or malformed factor scores")
	}

	return len(rows)
}

func parseInt(raw string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

// cleanField empties the literal "nan" produced by numeric tooling
// upstream of the CSV.
func cleanField(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "nan") {
		return ""
	}
	return raw
}
