// autostart.go declares 'stackctl autostart': start every stack flagged
// auto_start, in priority order.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newAutostartCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Start all stacks marked for auto-start, by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, log, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			targets := reg.AutostartSet()
			out := cmd.OutOrStdout()
			if len(targets) == 0 {
				fmt.Fprintln(out, "No stacks configured for auto-start")
				return nil
			}
			exec, err := buildExecutor(cmd, opts, log)
			if err != nil {
				return err
			}
			started := time.Now()
			fmt.Fprintf(out, "Auto-starting %d stack(s) by priority...\n\n", len(targets))
			var results []stack.StackResult
			for _, s := range targets {
				fmt.Fprintf(out, "  [%d] Starting %s... ", s.Priority, s.Name)
				if err := exec.Up(cmd.Context(), s.Dir, true); err != nil {
					fmt.Fprintln(out, color.RedString("✗ FAILED"))
					results = append(results, stack.StackResult{Stack: s.Name, Err: err.Error()})
					continue
				}
				fmt.Fprintln(out, color.GreenString("✓"))
				results = append(results, stack.StackResult{Stack: s.Name, OK: true})
			}
			recordRun(cmd.Context(), log, opts.Root, "autostart", started, results)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}
