package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write expenses, categories and budgets as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			payload, err := c.Ledger.Export(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to export")
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(append(payload, '\n'))
				return err
			}
			if err := os.WriteFile(output, payload, 0o600); err != nil {
				return errors.Wrap(err, "failed to write export")
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore data from an export",
		Long: `Restore data from an export. Each of expenses, categories and budgets
present with the right shape replaces the stored collection; others are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to read import file")
			}

			c, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			res, err := c.Ledger.Import(ctx, payload)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
			return nil
		},
	}
}
