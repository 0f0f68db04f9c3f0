// search.go declares 'stackctl search', substring search over metadata.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newSearchCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Search stacks by name, description, or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			results := reg.Search(args[0])
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No stacks found matching %q\n", args[0])
				return nil
			}
			stack.SortForDisplay(results)
			fmt.Fprintf(out, "\nFound %d stack(s):\n\n", len(results))
			for _, s := range results {
				fmt.Fprintf(out, "  • %s\n", s.Name)
				desc := s.Description
				if desc == "" {
					desc = "No description"
				}
				fmt.Fprintf(out, "    %s\n", desc)
				fmt.Fprintf(out, "    Category: %s, Tags: %s\n\n", s.Category, strings.Join(s.Tags, ", "))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}
