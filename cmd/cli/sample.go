package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/QTest-hq/autoprio/internal/backlog"
	"github.com/QTest-hq/autoprio/internal/config"
	"github.com/QTest-hq/autoprio/internal/csvio"
	"github.com/QTest-hq/autoprio/internal/datagen"
)

// sampleCmd produces a synthetic backlog CSV, handy for demos and for
// exercising the report formats without real data.
func sampleCmd() *cobra.Command {
	var (
		catalogPath string
		count       int
		seed        int64
		out         string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a sample backlog CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath == "" {
				catalogPath = config.FindCatalog(".")
			}
			catalog, err := config.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}

			repo := backlog.NewRepository(catalog)
			datagen.NewDataGenerator(seed).Populate(repo, count)

			doc, err := renderCSV(repo, "")
			if err != nil {
				return err
			}
			if err := csvio.WriteFile(out, doc); err != nil {
				return err
			}

			fmt.Printf("%d sample tests written to %s\n", repo.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to a catalog override file")
	cmd.Flags().IntVarP(&count, "count", "n", 25, "number of tests to generate")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&out, "out", "o", "sample-backlog.csv", "output file")

	return cmd
}
