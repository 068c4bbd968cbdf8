package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bmt-tools/evidence-author/internal/issue"
	"github.com/bmt-tools/evidence-author/internal/model"
)

var importOut string

var importCmd = &cobra.Command{
	Use:   "import <issue.md>",
	Short: "Rebuild a record from an exported issue body",
	Long: `Import parses a previously exported issue body back into an evidence
request record and writes it as YAML, ready for --record or export.
Criterion IDs are freshly assigned on import.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return importIssue(args[0], importOut)
	},
}

func importIssue(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading issue body %s: %w", inPath, err)
	}

	rec := issue.Parse(string(data))
	if err := model.SaveRecord(outPath, rec); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

func init() {
	importCmd.Flags().StringVar(&importOut, "out", "record.yaml", "output record file")
}
