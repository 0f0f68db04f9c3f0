// list.go declares 'stackctl list', the category-grouped stack listing.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/compose"
	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newListCommand(opts *config.Options) *cobra.Command {
	var (
		category   string
		tag        string
		withStatus bool
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List discovered stacks grouped by category",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, log, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			var stacks []*stack.Stack
			switch {
			case category != "":
				stacks = reg.ByCategory(category)
			case tag != "":
				stacks = reg.ByTag(tag)
			default:
				stacks = reg.All()
			}
			stack.SortForDisplay(stacks)

			out := cmd.OutOrStdout()
			if len(stacks) == 0 {
				fmt.Fprintln(out, "No stacks found")
				return nil
			}

			var exec *compose.Executor
			if withStatus {
				exec, err = buildExecutor(cmd, opts, log)
				if err != nil {
					return err
				}
			}

			byCategory := map[string][]*stack.Stack{}
			for _, s := range stacks {
				byCategory[s.Category] = append(byCategory[s.Category], s)
			}
			categories := make([]string, 0, len(byCategory))
			for c := range byCategory {
				categories = append(categories, c)
			}
			sort.Strings(categories)

			header := color.New(color.Bold)
			for _, c := range categories {
				fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 60))
				header.Fprintln(out, strings.ToUpper(c))
				fmt.Fprintln(out, strings.Repeat("=", 60))
				for _, s := range byCategory[c] {
					printListEntry(cmd, s, exec)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list stacks in this category")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only list stacks carrying this tag")
	cmd.Flags().BoolVar(&withStatus, "status", false, "Include live container status (runs compose ps per stack)")
	return cmd
}

func printListEntry(cmd *cobra.Command, s *stack.Stack, exec *compose.Executor) {
	out := cmd.OutOrStdout()
	marker := "•"
	var st *compose.StackStatus
	if exec != nil {
		got := exec.Status(cmd.Context(), s.Dir)
		st = &got
		marker = stack.StatusIcon(got)
	}
	fmt.Fprintf(out, "\n  %s %s\n", marker, s.Name)
	if s.Description != "" {
		fmt.Fprintf(out, "     %s\n", s.Description)
	}
	fmt.Fprintf(out, "     Path: %s\n", s.Dir)
	if len(s.Tags) > 0 {
		fmt.Fprintf(out, "     Tags: %s\n", strings.Join(s.Tags, ", "))
	}
	if st != nil {
		fmt.Fprintf(out, "     Status: %s (%d/%d containers)\n", st.State, st.Running, st.Total)
	}
	if s.AutoStart {
		fmt.Fprintf(out, "     Auto-start: yes (priority %d)\n", s.Priority)
	}
}
