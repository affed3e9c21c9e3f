package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/expense-ledger/internal/entity/category"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Manage expense categories",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(editCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			cats, err := c.Ledger.GetCategories(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to get categories")
			}
			if len(cats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories found. Use 'ledger category add' to create one.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tIcon\tName\tColor\tDefault")
			for _, cat := range cats {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", cat.ID, cat.Icon, cat.Name, cat.Color, cat.IsDefault)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var draft category.Draft

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			d := draft
			d.Name = args[0]
			cat, err := c.Ledger.AddCategory(ctx, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added category %s %s (%s)\n", cat.Icon, cat.Name, cat.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Color, "color", "", "display color, e.g. #FF6384")
	cmd.Flags().StringVar(&draft.Icon, "icon", "", "display icon")
	return cmd
}

func editCategoryCmd() *cobra.Command {
	var name, color, icon string

	cmd := &cobra.Command{
		Use:   "edit <id-or-name>",
		Short: "Rename or restyle a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			cat, err := resolveCategory(ctx, c.Ledger, args[0])
			if err != nil {
				return err
			}
			draft := category.Draft{Name: cat.Name, Color: cat.Color, Icon: cat.Icon}
			flags := cmd.Flags()
			if flags.Changed("name") {
				draft.Name = name
			}
			if flags.Changed("color") {
				draft.Color = color
			}
			if flags.Changed("icon") {
				draft.Icon = icon
			}

			if err := c.Ledger.UpdateCategory(ctx, cat.ID, draft); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated category %s\n", cat.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&color, "color", "", "new color")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon")
	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id-or-name>",
		Short: "Delete a category no expense uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			cat, err := resolveCategory(ctx, c.Ledger, args[0])
			if err != nil {
				return err
			}
			if err := c.Ledger.DeleteCategory(ctx, cat.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %s\n", cat.Name)
			return nil
		},
	}
}
