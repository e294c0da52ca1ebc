package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove index entries whose source file no longer exists",
	RunE:  runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	ctx, stop, ix, err := setup()
	if err != nil {
		return err
	}
	defer stop()

	removed, err := ix.Prune(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(removed) == 0 {
		fmt.Fprintln(out, "No stale entries found.")
		return nil
	}
	for _, source := range removed {
		fmt.Fprintf(out, "Deleted: %s\n", source)
	}
	fmt.Fprintf(out, "Removed %d stale files from the index.\n", len(removed))
	return nil
}
