// restart.go declares 'stackctl restart': stop then start one stack.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newRestartCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restart STACK",
		Short: "Restart one stack (down, then up)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, log, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			s := reg.ByName(args[0])
			if s == nil {
				return &stack.NotFoundError{Name: args[0]}
			}
			exec, err := buildExecutor(cmd, opts, log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			started := time.Now()
			fmt.Fprintf(out, "  Restarting %s... ", s.Name)

			err = exec.Down(cmd.Context(), s.Dir)
			if err == nil {
				err = exec.Up(cmd.Context(), s.Dir, true)
			}
			result := stack.StackResult{Stack: s.Name, OK: err == nil}
			if err != nil {
				result.Err = err.Error()
				fmt.Fprintln(out, color.RedString("✗ FAILED"))
			} else {
				fmt.Fprintln(out, color.GreenString("✓"))
			}
			recordRun(cmd.Context(), log, opts.Root, "restart", started, []stack.StackResult{result})
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}
