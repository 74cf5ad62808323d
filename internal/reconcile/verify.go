package reconcile

import (
	"fmt"

	"fjacquet/budget-sync/internal/logging"

	"github.com/shopspring/decimal"
)

// Drift is a budget whose incrementally maintained spent amount disagrees with a recompute.
type Drift struct {
	BudgetID    string
	Category    string
	Incremental decimal.Decimal
	Recomputed  decimal.Decimal
}

// Difference returns Incremental - Recomputed
func (d Drift) Difference() decimal.Decimal {
	return d.Incremental.Sub(d.Recomputed)
}

// String describes the drift for log output
func (d Drift) String() string {
	return fmt.Sprintf("budget %s (%s): incremental %s, recomputed %s",
		d.BudgetID, d.Category, d.Incremental.StringFixed(2), d.Recomputed.StringFixed(2))
}

// Verify compares every budget in the engine's store against a recompute from
// ledger without modifying anything. An empty result means both paths agree.
func (e *Engine) Verify(ledger Ledger) []Drift {
	if ledger == nil || e.budgets == nil {
		return nil
	}
	transactions := ledger.Transactions()

	var drifts []Drift
	for _, b := range e.budgets.Budgets() {
		expected := SpentInWindow(transactions, b, e.matcher)
		if expected.Equal(b.SpentAmount) {
			continue
		}
		d := Drift{
			BudgetID:    b.ID,
			Category:    b.Category,
			Incremental: b.SpentAmount,
			Recomputed:  expected,
		}
		drifts = append(drifts, d)
		e.logger.Warn("Budget drift detected",
			logging.F(logging.FieldBudgetID, b.ID),
			logging.F(logging.FieldCategory, b.Category),
			logging.F(logging.FieldSpent, b.SpentAmount.String()),
			logging.F("recomputed", expected.String()))
	}
	return drifts
}
