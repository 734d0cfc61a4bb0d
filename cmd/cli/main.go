package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/QTest-hq/autoprio/internal/backlog"
	"github.com/QTest-hq/autoprio/internal/config"
	"github.com/QTest-hq/autoprio/internal/csvio"
)

var version = "dev"

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:     "autoprio",
		Short:   "autoprio - rank manual tests by automation value",
		Long:    `autoprio scores a manual test backlog on weighted factors and ranks it into automation priority tiers.`,
		Version: version,
	}

	// Add subcommands
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(guideCmd())
	rootCmd.AddCommand(sampleCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadRepo builds a repository from the configured catalog and the given
// backlog CSV files.
func loadRepo(catalogPath string, files []string) (*backlog.Repository, error) {
	if catalogPath == "" {
		catalogPath = config.FindCatalog(".")
	}
	catalog, err := config.LoadCatalog(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	repo := backlog.NewRepository(catalog)
	for _, file := range files {
		rows, err := csvio.ReadFile(file)
		if err != nil {
			return nil, err
		}
		count := repo.ImportTests(rows, false)
		log.Info().Str("file", file).Int("rows", count).Msg("backlog loaded")
	}

	return repo, nil
}
