package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/expense-ledger/internal/entity/budget"
	"max.ks1230/expense-ledger/internal/entity/money"
	"max.ks1230/expense-ledger/internal/model/analytics"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "budget",
		Aliases: []string{"budgets"},
		Short:   "Manage monthly budgets per category",
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(getBudgetCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())
	cmd.AddCommand(saveBudgetsCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budget status for the most recent month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			report, err := c.Generator.Budgets(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to build budget report")
			}
			fmt.Fprintln(cmd.OutOrStdout(), analytics.FormatBudgets(report))
			return nil
		},
	}
}

func getBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <category>",
		Short: "Show the budget of one category",
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
			amount, ok, err := c.Ledger.GetBudgetForCategory(ctx, cat.ID)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has no budget\n", cat.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cat.Name, money.Format(amount))
			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set the monthly budget of a category",
		Args:  cobra.ExactArgs(2),
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
			if err := c.Ledger.SetBudgetForCategory(ctx, cat.ID, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s set to %s\n", cat.Name, args[1])
			return nil
		},
	}
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category>",
		Short: "Remove the budget of a category",
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
			existed, err := c.Ledger.DeleteBudgetForCategory(ctx, cat.ID)
			if err != nil {
				return err
			}
			if !existed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s had no budget\n", cat.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s removed\n", cat.Name)
			return nil
		},
	}
}

func saveBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <category>=<amount>...",
		Short: "Replace all budgets at once",
		Long: `Replace all budgets at once. Categories that are not listed, or are
listed with an empty amount, lose their budget.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			assignments, ok := budget.ParseAssignments(args)
			if !ok {
				return errors.Errorf("expected <category>=<amount>, got %q", strings.Join(args, " "))
			}

			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			inputs, err := budget.Inputs(assignments, func(ref string) (string, error) {
				cat, err := resolveCategory(ctx, c.Ledger, ref)
				return cat.ID, err
			})
			if err != nil {
				return err
			}

			changed, err := c.Ledger.ReconcileBudgets(ctx, inputs)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), "Budgets are unchanged")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Budgets saved")
			return nil
		},
	}
}
