package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/QTest-hq/autoprio/internal/backlog"
	"github.com/QTest-hq/autoprio/internal/config"
	"github.com/QTest-hq/autoprio/internal/csvio"
	"github.com/QTest-hq/autoprio/internal/render"
	"github.com/QTest-hq/autoprio/internal/report"
)

// importCmd reconciles one or more raw CSV exports into a clean ranked
// backlog file: malformed scores are defaulted, ids deduplicated, and
// every derived column recomputed.
func importCmd() *cobra.Command {
	var (
		catalogPath string
		out         string
		replace     bool
	)

	cmd := &cobra.Command{
		Use:   "import <raw.csv>...",
		Short: "Reconcile raw CSV exports into a ranked backlog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath == "" {
				catalogPath = config.FindCatalog(".")
			}
			catalog, err := config.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}

			repo := backlog.NewRepository(catalog)
			for _, file := range args {
				rows, err := csvio.ReadFile(file)
				if err != nil {
					return err
				}
				repo.ImportTests(rows, replace)
			}

			doc, err := renderCSV(repo, "")
			if err != nil {
				return err
			}
			if err := csvio.WriteFile(out, doc); err != nil {
				return err
			}

			fmt.Printf("%d tests reconciled into %s\n", repo.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to a catalog override file")
	cmd.Flags().StringVarP(&out, "out", "o", "backlog.csv", "output file")
	cmd.Flags().BoolVar(&replace, "replace", false, "each file replaces previously loaded rows instead of appending")

	return cmd
}

func exportCmd() *cobra.Command {
	var (
		catalogPath string
		section     string
		out         string
	)

	cmd := &cobra.Command{
		Use:   "export <backlog.csv>...",
		Short: "Export the ranked backlog as CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo(catalogPath, args)
			if err != nil {
				return err
			}

			doc, err := renderCSV(repo, section)
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
			fmt.Printf("exported %d tests to %s\n", repo.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to a catalog override file")
	cmd.Flags().StringVar(&section, "section", "", "only export tests from this section")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")

	return cmd
}

func renderCSV(repo *backlog.Repository, section string) (string, error) {
	rep := report.Build(
		repo.GetSorted(section),
		repo.GetPriorityTiers(section),
		repo.Catalog(),
	)
	return (&render.CSVRenderer{}).Render(rep)
}
