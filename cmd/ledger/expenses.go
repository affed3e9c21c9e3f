package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/entity/money"
	"max.ks1230/expense-ledger/internal/model/analytics"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expense",
		Aliases: []string{"expenses"},
		Short:   "Manage expenses",
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(editExpenseCmd())
	cmd.AddCommand(deleteExpensesCmd())

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			exps, err := c.Ledger.ListExpenses(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to list expenses")
			}
			if len(exps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses yet. Use 'ledger expense add' to record one.")
				return nil
			}
			if limit > 0 && len(exps) > limit {
				exps = exps[:limit]
			}

			cats, err := c.Ledger.GetCategories(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to get categories")
			}
			names := categoryNames(cats)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tDate\tCategory\tAmount\tDescription")
			for _, e := range exps {
				name, ok := names[e.CategoryID]
				if !ok {
					name = analytics.Unknown.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, name, money.Format(e.Amount), e.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many expenses")
	return cmd
}

func addExpenseCmd() *cobra.Command {
	var draft expense.Draft

	cmd := &cobra.Command{
		Use:   "add <amount> <category>",
		Short: "Record an expense",
		Long:  `Record an expense. The category may be given by id or name; the date defaults to today.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			cat, err := resolveCategory(ctx, c.Ledger, args[1])
			if err != nil {
				return err
			}
			d := draft
			d.Amount = args[0]
			d.CategoryID = cat.ID
			if d.Date == "" {
				d.Date = time.Now().Format(expense.DateLayout)
			}

			exp, err := c.Ledger.AddExpense(ctx, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added expense %s: %s on %s (%s)\n", exp.ID, money.Format(exp.Amount), exp.Date, cat.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&draft.Date, "date", "d", "", "expense date, YYYY-MM-DD")
	cmd.Flags().StringVar(&draft.Description, "description", "", "what the money was spent on")
	cmd.Flags().StringVar(&draft.Notes, "notes", "", "free-form notes")
	return cmd
}

func editExpenseCmd() *cobra.Command {
	var (
		amount, date, categoryRef string
		description, notes        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an expense",
		Long:  `Change an expense. Only the fields given as flags are replaced.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			existing, err := c.Ledger.GetExpenseByID(ctx, args[0])
			if err != nil {
				return err
			}
			draft := existing.Draft()

			flags := cmd.Flags()
			if flags.Changed("amount") {
				draft.Amount = amount
			}
			if flags.Changed("date") {
				draft.Date = date
			}
			if flags.Changed("category") {
				cat, err := resolveCategory(ctx, c.Ledger, categoryRef)
				if err != nil {
					return err
				}
				draft.CategoryID = cat.ID
			}
			if flags.Changed("description") {
				draft.Description = description
			}
			if flags.Changed("notes") {
				draft.Notes = notes
			}

			if err := c.Ledger.UpdateExpense(ctx, existing.ID, draft); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated expense %s\n", existing.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVarP(&date, "date", "d", "", "new date, YYYY-MM-DD")
	cmd.Flags().StringVarP(&categoryRef, "category", "c", "", "new category id or name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	return cmd
}

func deleteExpensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete expenses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			removed, err := c.Ledger.DeleteExpenses(ctx, args)
			if err != nil {
				return errors.Wrap(err, "failed to delete expenses")
			}
			if removed == 0 {
				return errors.Wrap(customerr.ErrNotFound, "no matching expenses")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d of %d expenses\n", removed, len(args))
			return nil
		},
	}
}
