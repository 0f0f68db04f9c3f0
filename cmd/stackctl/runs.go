// runs.go declares 'stackctl runs', the lifecycle batch history listing.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newRunsCommand(opts *config.Options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent lifecycle batches (up/down/restart/autostart)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Complete(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !stateStoreExists(opts.Root) {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}
			store, err := stack.OpenStateStore(opts.Root)
			if err != nil {
				return err
			}
			defer store.Close()
			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}
			stack.PrintRuns(out, runs)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	return cmd
}
