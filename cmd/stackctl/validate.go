// validate.go declares 'stackctl validate', the non-fatal metadata check.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newValidateCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report metadata and dependency issues across all stacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Validating stacks...")
			fmt.Fprintln(out)
			// Issues are reporting-only: the command exits zero either way.
			stack.PrintIssues(out, reg.Validate())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}
