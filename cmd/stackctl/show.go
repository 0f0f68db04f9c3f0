// show.go declares 'stackctl show', the detail view for a single stack.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newShowCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show STACK",
		Short: "Show metadata, live status, and services for one stack",
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
			st := exec.Status(cmd.Context(), s.Dir)

			services, err := stackServices(s, log)
			if err != nil {
				// The manifest may be unparseable; show still works.
				log.Warn("could not read services from manifest",
					zap.String("stack", s.Name), zap.Error(err))
			}
			stack.PrintShow(cmd.OutOrStdout(), s, st, services)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}
