// status.go declares 'stackctl status', a container-state table.
package main

import (
	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newStatusCommand(opts *config.Options) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show running status of all stacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, log, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			var stacks []*stack.Stack
			if category != "" {
				stacks = reg.ByCategory(category)
			} else {
				stacks = reg.All()
			}
			stack.SortForDisplay(stacks)

			exec, err := buildExecutor(cmd, opts, log)
			if err != nil {
				return err
			}
			rows := make([]stack.StatusRow, 0, len(stacks))
			for _, s := range stacks {
				rows = append(rows, stack.StatusRow{
					Stack:  s,
					Status: exec.Status(cmd.Context(), s.Dir),
				})
			}
			stack.PrintStatusTable(cmd.OutOrStdout(), rows)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show stacks in this category")
	return cmd
}
