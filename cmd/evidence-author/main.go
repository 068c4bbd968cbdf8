package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bmt-tools/evidence-author/internal/app"
	"github.com/bmt-tools/evidence-author/internal/model"
)

// Set by the release build.
var version = "dev"

var (
	configPath string
	recordPath string
)

var rootCmd = &cobra.Command{
	Use:   "evidence-author",
	Short: "Author VA evidence request content with a live page preview",
	Long: `evidence-author is a terminal tool for drafting evidence request
content: the display name, descriptions, page copy and acceptance
criteria that drive the claim status evidence pages.

Run without arguments to open the interactive editor. The left pane is
the request form, the right pane previews the page a claimant would
see, and F2 shows the GitHub issue ready to file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ensureConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		initial := model.DefaultEvidenceRequest()
		if recordPath != "" {
			initial, err = model.LoadRecord(recordPath)
			if err != nil {
				return fmt.Errorf("load record: %w", err)
			}
		}

		p := tea.NewProgram(app.New(*cfg, initial, nil), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("evidence-author %s\n", version)
	},
}

// ensureConfig loads the configuration, writing the defaults to disk on
// first run so users have a file to edit.
func ensureConfig(path string) (*model.AppConfig, error) {
	if path == "" {
		path = model.DefaultConfigPath()
	}

	cfg, err := model.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := model.SaveConfig(path, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/evidence-author/config.yaml)")
	rootCmd.Flags().StringVar(&recordPath, "record", "", "evidence request YAML file to load")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
