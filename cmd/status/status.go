// Package status handles the per-category status query command
package status

import (
	"fmt"
	"io"
	"os"

	"fjacquet/budget-sync/cmd/common"
	"fjacquet/budget-sync/cmd/root"
	"fjacquet/budget-sync/internal/container"

	"github.com/spf13/cobra"
)

var categoryName string

// Cmd represents the status command
var Cmd = &cobra.Command{
	Use:   "status",
	Short: "Show spend and remaining budget for a category",
	Long: `Load the ledger and budgets and report, for one category, the all-time
spend across the ledger, the remaining amount of its first budget and whether
it is over budget, followed by the status of every budget for that category.`,
	Run: statusFunc,
}

func init() {
	Cmd.Flags().StringVar(&categoryName, "category", "", "Category to query")
	_ = Cmd.MarkFlagRequired("category")
}

func statusFunc(cmd *cobra.Command, args []string) {
	flags := root.SharedFlags
	if err := Run(root.GetContainer(), os.Stdout, flags.Ledger, flags.Budgets, categoryName, flags.Format, flags.Output); err != nil {
		root.Log.Fatalf("Error querying status: %v", err)
	}
}

// Run writes the summary for cat to w and the matching budgets' report to output.
func Run(c *container.Container, w io.Writer, ledgerPath, budgetsPath, cat, format, output string) error {
	ledger, err := common.LoadLedgerAndBudgets(c, ledgerPath, budgetsPath)
	if err != nil {
		return err
	}
	engine := c.NewEngine(ledger)

	fmt.Fprintf(w, "Category:       %s\n", cat)
	fmt.Fprintf(w, "Spent (all):    %s\n", engine.SpentForCategory(cat).StringFixed(2))
	if remaining, ok := engine.Remaining(cat); ok {
		fmt.Fprintf(w, "Remaining:      %s\n", remaining.StringFixed(2))
	} else {
		fmt.Fprintln(w, "Remaining:      no budget")
	}
	fmt.Fprintf(w, "Over budget:    %t\n\n", engine.IsOverBudget(cat))

	return common.WriteStatus(c, engine.BudgetsForCategory(cat), format, output)
}
