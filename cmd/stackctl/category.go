// category.go declares the 'stackctl category' command group: list, set, rename.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stackctl/internal/config"
	"github.com/example/stackctl/internal/stack"
)

func newCategoryCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage stack categories",
	}
	cmd.AddCommand(
		newCategoryListCommand(opts),
		newCategorySetCommand(opts),
		newCategoryRenameCommand(opts),
	)
	return cmd
}

func newCategoryListCommand(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all categories and how many stacks use each",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			pairs := reg.AllCategories()
			out := cmd.OutOrStdout()
			if len(pairs) == 0 {
				fmt.Fprintln(out, "No categories found")
				return nil
			}
			label := "categories"
			if len(pairs) == 1 {
				label = "category"
			}
			fmt.Fprintf(out, "\nFound %d unique %s:\n\n", len(pairs), label)
			for _, p := range pairs {
				count := 0
				for _, s := range reg.All() {
					if s.Category == p.Category && s.Subcategory == p.Subcategory {
						count++
					}
				}
				fmt.Fprintf(out, "  • %s (%d stack%s)\n", p.Display(), count, plural(count))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func newCategorySetCommand(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "set STACK CATEGORY [SUBCATEGORY]",
		Short: "Set the category (and optional subcategory) of one stack",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			s := reg.ByName(args[0])
			if s == nil {
				return &stack.NotFoundError{Name: args[0]}
			}
			old := s.CategoryDisplay()
			s.Category = args[1]
			s.Subcategory = ""
			if len(args) == 3 {
				s.Subcategory = args[2]
			}
			if err := s.SaveMetadata(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Changed category for %s: %s → %s\n",
				color.GreenString("✓"), s.Name, old, s.CategoryDisplay())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func newCategoryRenameCommand(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a category across all stacks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry(opts)
			if err != nil {
				return err
			}
			count, err := reg.RenameCategory(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if count == 0 {
				fmt.Fprintf(out, "Category %q not found on any stacks\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "%s Renamed category %q to %q across %d stack%s\n",
				color.GreenString("✓"), args[0], args[1], count, plural(count))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}
