package render

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/QTest-hq/autoprio/internal/report"
)

// CSVRenderer produces the flat ranked export. Column order is fixed:
// Rank, Priority, Ticket ID, Section, Test Name, Description, any yes/no
// question columns, Total Score (100-point), Raw Score, one column per
// factor, Test ID.
type CSVRenderer struct{}

func (r *CSVRenderer) Name() string          { return "csv" }
func (r *CSVRenderer) FileExtension() string { return ".csv" }

func (r *CSVRenderer) Render(rep *report.Report) (string, error) {
	questions := collectQuestions(rep)

	header := []string{"Rank", "Priority", "Ticket ID", "Section", "Test Name", "Description"}
	for _, q := range questions {
		header = append(header, "Question: "+q)
	}
	header = append(header, "Total Score (100-point)", "Raw Score")
	for _, f := range rep.Factors {
		header = append(header, f.Name)
	}
	header = append(header, "Test ID")

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	rank := 0
	for _, group := range rep.Tiers {
		for _, entry := range group.Entries {
			rank++
			row := []string{
				strconv.Itoa(rank),
				string(group.Tier),
				entry.TicketID,
				entry.Section,
				entry.Name,
				entry.Description,
			}
			answers := map[string]bool{}
			for _, a := range entry.Answers {
				answers[a.Question] = a.Answer
			}
			for _, q := range questions {
				row = append(row, yesNo(answers[q]))
			}
			row = append(row,
				strconv.FormatFloat(entry.TotalScore, 'f', 1, 64),
				strconv.Itoa(entry.RawScore),
			)
			for _, f := range rep.Factors {
				row = append(row, strconv.Itoa(entry.Scores[f.Key]))
			}
			row = append(row, strconv.Itoa(entry.ID))

			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return sb.String(), nil
}

func collectQuestions(rep *report.Report) []string {
	set := map[string]struct{}{}
	for _, group := range rep.Tiers {
		for _, entry := range group.Entries {
			for _, a := range entry.Answers {
				set[a.Question] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for q := range set {
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}
