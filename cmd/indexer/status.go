package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the index holds and the last indexer status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx, stop, ix, err := setup()
	if err != nil {
		return err
	}
	defer stop()

	stats, err := ix.Stats(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "--- Jasper Index Status ---")
	fmt.Fprintf(out, "Total Chunks: %d\n", stats.Chunks)
	fmt.Fprintf(out, "Unique Files: %d\n", stats.Files)
	fmt.Fprintf(out, "Last Status:  %s (%d%%)\n", stats.Status.Status, stats.Status.Percent)
	if stats.Status.UpdatedAt != nil {
		fmt.Fprintf(out, "Last Updated: %s\n", stats.Status.UpdatedAt.Local().Format(time.DateTime))
	}
	if stats.Status.Error != "" {
		fmt.Fprintf(out, "Last Error:   %s\n", stats.Status.Error)
	}
	return nil
}
