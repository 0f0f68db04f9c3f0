// up.go declares 'stackctl up': start a selection of stacks, optionally in
// priority order and with the dependency closure expanded first.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newUpCommand(opts *config.Options) *cobra.Command {
	var (
		sel        selectionFlags
		byPriority bool
		withDeps   bool
		noDetach   bool
	)
	cmd := &cobra.Command{
		Use:   "up [STACK]",
		Short: "Start stacks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, log, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			q := sel.request(args)
			q.WithDeps = withDeps
			targets, err := q.Resolve(reg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(targets) == 0 {
				fmt.Fprintln(out, "No stacks found")
				return nil
			}
			if byPriority {
				stack.SortForStart(targets)
			}

			exec, err := buildExecutor(cmd, opts, log)
			if err != nil {
				return err
			}
			started := time.Now()
			fmt.Fprintf(out, "Starting %d stack(s)...\n\n", len(targets))
			var results []stack.StackResult
			for _, s := range targets {
				fmt.Fprintf(out, "  Starting %s... ", s.Name)
				if err := exec.Up(cmd.Context(), s.Dir, !noDetach); err != nil {
					fmt.Fprintln(out, color.RedString("✗ FAILED"))
					results = append(results, stack.StackResult{Stack: s.Name, Err: err.Error()})
					continue
				}
				fmt.Fprintln(out, color.GreenString("✓"))
				results = append(results, stack.StackResult{Stack: s.Name, OK: true})
			}
			recordRun(cmd.Context(), log, opts.Root, "up", started, results)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	sel.Bind(cmd.Flags())
	cmd.Flags().BoolVar(&byPriority, "priority", false, "Start in priority order (lowest first)")
	cmd.Flags().BoolVar(&withDeps, "with-deps", false, "Start the dependency chain before the named stack")
	cmd.Flags().BoolVar(&noDetach, "no-detach", false, "Run compose up in the foreground")
	return cmd
}
