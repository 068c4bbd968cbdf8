package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/bmt-tools/evidence-author/internal/model"
	"github.com/bmt-tools/evidence-author/internal/syncinfo"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve sync provenance over HTTP",
	Long: `Serve exposes the sync log as JSON at /api/sync-info, the same
endpoint the editor's header indicator polls. Useful when the sync log
lives on a build host rather than the authoring machine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := model.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		mux := http.NewServeMux()
		mux.Handle("/api/sync-info", syncinfo.Handler(cfg.Sync.LogPath))

		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		fmt.Printf("Serving sync info on %s (log: %s)\n", serveAddr, cfg.Sync.LogPath)
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8151", "listen address")
}
