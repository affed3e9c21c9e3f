package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/expense-ledger/internal/model/analytics"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize the most recent month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			stats, err := c.Generator.Dashboard(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to build dashboard")
			}
			cats, err := c.Ledger.GetCategories(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to get categories")
			}
			fmt.Fprintln(cmd.OutOrStdout(), analytics.FormatDashboard(stats, cats))
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Break spending down by category and description",
		Long: `Break spending down by category and description. Without --from and
--to the most recent month with expenses is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			report, err := c.Generator.Analytics(ctx, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), analytics.FormatReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD")
	return cmd
}
