// Package recompute handles the full recompute command
package recompute

import (
	"fjacquet/budget-sync/cmd/common"
	"fjacquet/budget-sync/cmd/root"
	"fjacquet/budget-sync/internal/container"
	"fjacquet/budget-sync/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the recompute command
var Cmd = &cobra.Command{
	Use:   "recompute",
	Short: "Rebuild every budget's spend from the ledger",
	Long: `Load a ledger snapshot and the budget definitions, rebuild spent and
remaining for every budget from the whole ledger and print their status.`,
	Run: recomputeFunc,
}

func recomputeFunc(cmd *cobra.Command, args []string) {
	flags := root.SharedFlags
	if err := Run(root.GetContainer(), flags.Ledger, flags.Budgets, flags.Format, flags.Output); err != nil {
		root.Log.Fatalf("Error recomputing budgets: %v", err)
	}
}

// Run loads the ledger and budgets, recomputes every budget and writes the status report.
func Run(c *container.Container, ledgerPath, budgetsPath, format, output string) error {
	ledger, err := common.LoadLedgerAndBudgets(c, ledgerPath, budgetsPath)
	if err != nil {
		return err
	}

	c.NewEngine(ledger).Recompute()
	budgets := c.GetBudgetStore().Budgets()

	c.GetLogger().Info("Recompute completed",
		logging.F(logging.FieldCount, len(budgets)))
	return common.WriteStatus(c, budgets, format, output)
}
