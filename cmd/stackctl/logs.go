// logs.go declares 'stackctl logs': stream or fetch compose logs from a
// selection of stacks, multiplexed with per-stack prefixes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/compose"
	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
	"github.com/example/stackctl/internal/tailer"
)

func newLogsCommand(opts *config.Options) *cobra.Command {
	var (
		sel        selectionFlags
		follow     bool
		since      string
		until      string
		tail       string
		timestamps bool
	)
	cmd := &cobra.Command{
		Use:   "logs [STACK...]",
		Short: "Show logs from stacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, log, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			targets, err := logsSelection(reg, args, sel)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(targets) == 0 {
				fmt.Fprintln(out, "No stacks found")
				return nil
			}

			exec, err := buildExecutor(cmd, opts, log)
			if err != nil {
				return err
			}
			argv := exec.LogsArgs(compose.LogOptions{
				Follow:     follow,
				Since:      since,
				Until:      until,
				Tail:       tail,
				Timestamps: timestamps,
			})

			if len(targets) == 1 {
				fmt.Fprintf(out, "Showing logs for %s...\n", targets[0].Name)
			} else {
				fmt.Fprintf(out, "Showing logs from %d stack(s)...\n\n", len(targets))
			}
			tt := make([]tailer.Target, 0, len(targets))
			for _, s := range targets {
				tt = append(tt, tailer.Target{Name: s.Name, Dir: s.Dir})
			}
			return tailer.New(tt, argv, out).Run(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	sel.Bind(cmd.Flags())
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Follow log output")
	cmd.Flags().StringVar(&since, "since", "", "Only show logs since this time or duration")
	cmd.Flags().StringVar(&until, "until", "", "Only show logs before this time or duration")
	cmd.Flags().StringVar(&tail, "tail", "", "Number of lines to show from the end of each log")
	cmd.Flags().BoolVar(&timestamps, "timestamps", false, "Show timestamps")
	return cmd
}

// logsSelection resolves the logs target set. Unlike lifecycle commands,
// logs accepts several positional names and defaults to every stack when
// nothing is selected.
func logsSelection(reg *stack.Registry, args []string, sel selectionFlags) ([]*stack.Stack, error) {
	if len(args) > 0 {
		out := make([]*stack.Stack, 0, len(args))
		for _, name := range args {
			s := reg.ByName(name)
			if s == nil {
				return nil, &stack.NotFoundError{Name: name}
			}
			out = append(out, s)
		}
		return out, nil
	}
	q := sel.request(nil)
	if !q.All && q.Category == "" && q.Tag == "" {
		q.All = true
	}
	targets, err := q.Resolve(reg)
	if err != nil {
		return nil, err
	}
	stack.SortForDisplay(targets)
	return targets, nil
}
