// Package create handles creating a budget backfilled from ledger history
package create

import (
	"fmt"
	"time"

	"fjacquet/budget-sync/cmd/common"
	"fjacquet/budget-sync/cmd/root"
	"fjacquet/budget-sync/internal/container"
	"fjacquet/budget-sync/internal/currencyutils"
	"fjacquet/budget-sync/internal/dateutils"
	"fjacquet/budget-sync/internal/logging"
	"fjacquet/budget-sync/internal/models"
	"fjacquet/budget-sync/internal/reconcile"

	"github.com/spf13/cobra"
)

// Options are the inputs of the create command
type Options struct {
	Category  string
	Allocated string
	Period    string
	Anchor    string
	Save      bool
}

var opts Options

// Cmd represents the create command
var Cmd = &cobra.Command{
	Use:   "create",
	Short: "Create a budget that already reflects past spending",
	Long: `Create a budget for the period containing the anchor date (default today),
backfilling its spent amount from every ledger transaction in that window.
With --save the budget is appended to the budgets file.`,
	Run: createFunc,
}

func init() {
	Cmd.Flags().StringVar(&opts.Category, "category", "", "Budget category")
	Cmd.Flags().StringVar(&opts.Allocated, "allocated", "", "Allocated amount")
	Cmd.Flags().StringVar(&opts.Period, "period", "", "Period: weekly, monthly or yearly (default from config)")
	Cmd.Flags().StringVar(&opts.Anchor, "anchor", "", "Any date inside the period (default today)")
	Cmd.Flags().BoolVar(&opts.Save, "save", false, "Append the budget to the budgets file")
	_ = Cmd.MarkFlagRequired("category")
	_ = Cmd.MarkFlagRequired("allocated")
}

func createFunc(cmd *cobra.Command, args []string) {
	flags := root.SharedFlags
	c := root.GetContainer()
	b, err := Run(c, flags.Ledger, flags.Budgets, opts)
	if err != nil {
		root.Log.Fatalf("Error creating budget: %v", err)
	}
	if err := common.WriteStatus(c, []*models.Budget{b}, flags.Format, flags.Output); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
}

// Run creates the budget described by o against the ledger at ledgerPath.
// With o.Save the existing budgets file is loaded and rewritten with the new
// budget appended.
func Run(c *container.Container, ledgerPath, budgetsPath string, o Options) (*models.Budget, error) {
	allocated, err := currencyutils.ParseNonNegative(o.Allocated)
	if err != nil {
		return nil, fmt.Errorf("invalid allocated amount: %w", err)
	}

	periodType := c.GetConfig().DefaultPeriodType()
	if o.Period != "" {
		if periodType, err = models.ParsePeriodType(o.Period); err != nil {
			return nil, err
		}
	}

	var anchor time.Time
	if o.Anchor != "" {
		if anchor, _, err = dateutils.ParseDate(o.Anchor); err != nil {
			return nil, fmt.Errorf("invalid anchor date: %w", err)
		}
	}

	var ledger reconcile.Ledger
	if o.Save {
		loaded, err := common.LoadLedgerAndBudgets(c, ledgerPath, budgetsPath)
		if err != nil {
			return nil, err
		}
		ledger = loaded
	} else {
		loaded, err := common.LoadLedger(c, ledgerPath)
		if err != nil {
			return nil, fmt.Errorf("error loading ledger: %w", err)
		}
		ledger = loaded
	}

	b := c.GetFactory().CreateWithHistory(o.Category, allocated, periodType, anchor, ledger)
	c.GetLogger().Info("Budget created",
		logging.F(logging.FieldBudgetID, b.ID),
		logging.F(logging.FieldCategory, b.Category),
		logging.F(logging.FieldSpent, b.SpentAmount.String()))

	if o.Save {
		budgets := c.GetBudgetStore()
		if err := budgets.Add(b); err != nil {
			return nil, err
		}
		if err := c.GetLoader().SaveBudgetsYAML(budgetsPath, budgets.Budgets()); err != nil {
			return nil, err
		}
	}
	return b, nil
}
