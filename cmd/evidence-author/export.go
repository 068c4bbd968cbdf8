package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bmt-tools/evidence-author/internal/issue"
	"github.com/bmt-tools/evidence-author/internal/model"
)

var (
	exportURL   bool
	exportTitle bool
)

var exportCmd = &cobra.Command{
	Use:   "export [record.yaml]",
	Short: "Print the GitHub issue for a record",
	Long: `Export renders the improvement-issue markdown for an evidence
request record without opening the editor. With no record argument the
built-in default record is used.

By default the issue body is printed; --title and --url print the
prefilled issue title and submission URL instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := model.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		rec := model.DefaultEvidenceRequest()
		if len(args) == 1 {
			rec, err = model.LoadRecord(args[0])
			if err != nil {
				return fmt.Errorf("load record: %w", err)
			}
		}

		switch {
		case exportTitle:
			fmt.Println(issue.Title(rec))
		case exportURL:
			fmt.Println(issue.URL(rec, cfg.Issue))
		default:
			fmt.Println(issue.Generate(rec))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportTitle, "title", false, "print the issue title")
	exportCmd.Flags().BoolVar(&exportURL, "url", false, "print the prefilled issue URL")
	exportCmd.MarkFlagsMutuallyExclusive("title", "url")
}
