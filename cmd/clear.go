package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var flagYes bool

var errNotConfirmed = errors.New("refusing to delete data without --yes")

var clearExpensesCmd = &cobra.Command{
	Use:   "clear-expenses",
	Short: "Delete all expenses",
	RunE:  runClearExpenses,
}

var clearBudgetsCmd = &cobra.Command{
	Use:   "clear-budgets",
	Short: "Reset the monthly budget to zero and delete all transfers",
	RunE:  runClearBudgets,
}

func init() {
	for _, c := range []*cobra.Command{clearExpensesCmd, clearBudgetsCmd} {
		c.Flags().BoolVarP(&flagYes, "yes", "y", false, "Confirm the deletion")
		rootCmd.AddCommand(c)
	}
}

func runClearExpenses(cmd *cobra.Command, _ []string) error {
	if !flagYes {
		return errNotConfirmed
	}

	cfg, err := setup()
	if err != nil {
		return err
	}

	service, err := openService(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if err := service.ClearExpenses(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "All expenses deleted.")
	return nil
}

func runClearBudgets(cmd *cobra.Command, _ []string) error {
	if !flagYes {
		return errNotConfirmed
	}

	cfg, err := setup()
	if err != nil {
		return err
	}

	service, err := openService(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if err := service.ClearBudgets(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Budgets reset.")
	return nil
}
