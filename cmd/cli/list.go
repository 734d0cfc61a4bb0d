package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/QTest-hq/autoprio/internal/scoring"
)

var tierStyles = map[scoring.Tier]lipgloss.Style{
	scoring.TierHighest:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	scoring.TierHigh:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	scoring.TierMedium:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	scoring.TierLow:          lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	scoring.TierLowest:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	scoring.TierWontAutomate: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func listCmd() *cobra.Command {
	var (
		catalogPath string
		section     string
	)

	cmd := &cobra.Command{
		Use:   "list <backlog.csv>...",
		Short: "Show the ranked backlog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo(catalogPath, args)
			if err != nil {
				return err
			}

			tests := repo.GetSorted(section)
			if len(tests) == 0 {
				fmt.Println("no tests in backlog")
				return nil
			}

			fmt.Println(headerStyle.Render(fmt.Sprintf("%-4s %-15s %-7s %-18s %s", "Rank", "Priority", "Score", "Section", "Test")))
			for i, test := range tests {
				style := tierStyles[test.Priority]
				fmt.Printf("%-4d %s %-7.1f %-18s %s\n",
					i+1,
					style.Render(fmt.Sprintf("%-15s", test.Priority)),
					test.TotalScore,
					truncate(test.Section, 18),
					test.Name,
				)
			}

			fmt.Printf("\n%d tests", len(tests))
			if sections := repo.Sections(); len(sections) > 0 && section == "" {
				fmt.Printf(" across %d sections (%s)", len(sections), strings.Join(sections, ", "))
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to a catalog override file")
	cmd.Flags().StringVar(&section, "section", "", "only show tests from this section")

	return cmd
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
