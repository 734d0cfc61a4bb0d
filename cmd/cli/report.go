package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/QTest-hq/autoprio/internal/config"
	"github.com/QTest-hq/autoprio/internal/csvio"
	"github.com/QTest-hq/autoprio/internal/render"
	"github.com/QTest-hq/autoprio/internal/report"
)

func reportCmd() *cobra.Command {
	var (
		catalogPath string
		section     string
		format      string
		out         string
	)

	cmd := &cobra.Command{
		Use:   "report <backlog.csv>...",
		Short: "Generate a prioritization report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo(catalogPath, args)
			if err != nil {
				return err
			}

			renderer, err := render.NewRegistry().Get(format)
			if err != nil {
				return err
			}

			rep := report.Build(
				repo.GetSorted(section),
				repo.GetPriorityTiers(section),
				repo.Catalog(),
			)
			doc, err := renderer.Render(rep)
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Print(doc)
				return nil
			}
			if err := csvio.WriteFile(out, doc); err != nil {
				return err
			}
			fmt.Printf("report written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to a catalog override file")
	cmd.Flags().StringVar(&section, "section", "", "only include tests from this section")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, markdown, html, csv, doc")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")

	return cmd
}

func guideCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Print the scoring guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath == "" {
				catalogPath = config.FindCatalog(".")
			}
			catalog, err := config.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			fmt.Print(render.ScoringGuide(catalog))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to a catalog override file")

	return cmd
}
