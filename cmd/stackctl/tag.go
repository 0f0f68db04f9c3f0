// tag.go declares the 'stackctl tag' command group: list, add, remove, rename.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newTagCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage stack tags",
	}
	cmd.AddCommand(
		newTagListCommand(opts),
		newTagAddCommand(opts),
		newTagRemoveCommand(opts),
		newTagRenameCommand(opts),
	)
	return cmd
}

func newTagListCommand(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tags and how many stacks use each",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			tags := reg.AllTags()
			out := cmd.OutOrStdout()
			if len(tags) == 0 {
				fmt.Fprintln(out, "No tags found")
				return nil
			}
			fmt.Fprintf(out, "\nFound %d unique tag(s):\n\n", len(tags))
			for _, tag := range tags {
				count := len(reg.ByTag(tag))
				fmt.Fprintf(out, "  • %s (%d stack%s)\n", tag, count, plural(count))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func newTagAddCommand(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "add STACK TAG...",
		Short: "Add tags to a stack",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			s := reg.ByName(args[0])
			if s == nil {
				return &stack.NotFoundError{Name: args[0]}
			}
			out := cmd.OutOrStdout()
			added := s.AddTags(args[1:])
			if len(added) == 0 {
				fmt.Fprintf(out, "All specified tags already exist on %s\n", s.Name)
				return nil
			}
			if err := s.SaveMetadata(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s Added tag(s) to %s: %s\n", color.GreenString("✓"), s.Name, strings.Join(added, ", "))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func newTagRemoveCommand(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove STACK TAG...",
		Short: "Remove tags from a stack",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			s := reg.ByName(args[0])
			if s == nil {
				return &stack.NotFoundError{Name: args[0]}
			}
			out := cmd.OutOrStdout()
			removed := s.RemoveTags(args[1:])
			if len(removed) == 0 {
				fmt.Fprintf(out, "None of the specified tags were found on %s\n", s.Name)
				return nil
			}
			if err := s.SaveMetadata(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s Removed tag(s) from %s: %s\n", color.GreenString("✓"), s.Name, strings.Join(removed, ", "))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func newTagRenameCommand(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a tag across all stacks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			count, err := reg.RenameTag(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if count == 0 {
				fmt.Fprintf(out, "Tag %q not found on any stacks\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "%s Renamed %q to %q across %d stack%s\n",
				color.GreenString("✓"), args[0], args[1], count, plural(count))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
