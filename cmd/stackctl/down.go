// down.go declares 'stackctl down': stop a selection of stacks in reverse
// priority order.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newDownCommand(opts *config.Options) *cobra.Command {
	var sel selectionFlags
	cmd := &cobra.Command{
		Use:   "down [STACK]",
		Short: "Stop stacks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, log, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			targets, err := sel.request(args).Resolve(reg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(targets) == 0 {
				fmt.Fprintln(out, "No stacks found")
				return nil
			}
			// Stop is the inverse of start: highest priority goes down first.
			stack.SortForStop(targets)

			exec, err := buildExecutor(cmd, opts, log)
			if err != nil {
				return err
			}
			started := time.Now()
			fmt.Fprintf(out, "Stopping %d stack(s)...\n\n", len(targets))
			var results []stack.StackResult
			for _, s := range targets {
				fmt.Fprintf(out, "  Stopping %s... ", s.Name)
				if err := exec.Down(cmd.Context(), s.Dir); err != nil {
					fmt.Fprintln(out, color.RedString("✗ FAILED"))
					results = append(results, stack.StackResult{Stack: s.Name, Err: err.Error()})
					continue
				}
				fmt.Fprintln(out, color.GreenString("✓"))
				results = append(results, stack.StackResult{Stack: s.Name, OK: true})
			}
			recordRun(cmd.Context(), log, opts.Root, "down", started, results)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	sel.Bind(cmd.Flags())
	return cmd
}
