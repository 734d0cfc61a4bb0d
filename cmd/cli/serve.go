package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/QTest-hq/autoprio/internal/api"
	"github.com/QTest-hq/autoprio/internal/config"
)

// serveCmd runs the HTTP API in the foreground, optionally pre-loading a
// backlog so the read endpoints have data from the start.
func serveCmd() *cobra.Command {
	var (
		catalogPath string
		port        int
	)

	cmd := &cobra.Command{
		Use:   "serve [backlog.csv]...",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Port = port
			}

			repo, err := loadRepo(catalogPath, args)
			if err != nil {
				return err
			}

			srv, err := api.NewServer(cfg, repo)
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:         fmt.Sprintf(":%d", cfg.Port),
				Handler:      srv.Router(),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			log.Info().Int("port", cfg.Port).Int("tests", repo.Len()).Msg("starting API server")
			return httpServer.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to a catalog override file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides PORT)")

	return cmd
}
