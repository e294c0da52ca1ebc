package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	indexForce   bool
	indexRebuild bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index every allowed file under the configured folders",
	Long: `Walks the configured folders, chunks each allowed file and stores the
embeddings in Qdrant. Files whose content hash is already indexed are skipped.

Use --force to re-embed unchanged files and --rebuild to drop the collection
first.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&indexForce, "force", false, "Re-index files even if unchanged")
	indexCmd.Flags().BoolVar(&indexRebuild, "rebuild", false, "Drop and recreate the collection before indexing")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx, stop, ix, err := setup()
	if err != nil {
		return err
	}
	defer stop()

	if err := ix.Prepare(ctx, indexRebuild); err != nil {
		return fmt.Errorf("prepare collection: %w", err)
	}
	report, err := ix.IndexAll(ctx, indexForce || indexRebuild)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Files: %d  Indexed: %d  Skipped: %d  Failed: %d  Chunks: %d\n",
		report.Files, report.Indexed, report.Skipped, report.Failed, report.Chunks)
	return nil
}
