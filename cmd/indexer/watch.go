package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var watchSkipInitial bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Index, then keep the index in sync with file changes",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchSkipInitial, "skip-initial", false, "Do not run a full index before watching")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop, ix, err := setup()
	if err != nil {
		return err
	}
	defer stop()

	if err := ix.Prepare(ctx, false); err != nil {
		return fmt.Errorf("prepare collection: %w", err)
	}
	if !watchSkipInitial {
		if _, err := ix.IndexAll(ctx, false); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Watching for changes, press Ctrl+C to stop.")
	return ix.Watch(ctx)
}
