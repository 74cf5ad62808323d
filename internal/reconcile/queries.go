package reconcile

import (
	"fjacquet/budget-sync/internal/models"

	"github.com/shopspring/decimal"
)

// SpentForCategory returns the all-time expense total for a category across
// the whole ledger, ignoring budget windows. Zero when no ledger is wired.
func (e *Engine) SpentForCategory(cat string) decimal.Decimal {
	if e.ledger == nil {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, tx := range e.ledger.Transactions() {
		if tx.IsExpense() && e.matcher.Matches(tx.Category, cat) {
			total = total.Add(tx.SpendAmount())
		}
	}
	return total
}

// Remaining returns the remaining amount of the first budget for cat, in store order.
// The boolean is false when no budget matches.
func (e *Engine) Remaining(cat string) (decimal.Decimal, bool) {
	b := e.firstBudget(cat)
	if b == nil {
		return decimal.Zero, false
	}
	return b.RemainingAmount, true
}

// IsOverBudget reports whether the first budget for cat has spent more than allocated.
func (e *Engine) IsOverBudget(cat string) bool {
	b := e.firstBudget(cat)
	return b != nil && b.IsOverBudget()
}

// BudgetsForCategory returns every budget for cat, in store order.
func (e *Engine) BudgetsForCategory(cat string) []*models.Budget {
	if e.budgets == nil {
		return nil
	}
	var out []*models.Budget
	for _, b := range e.budgets.Budgets() {
		if e.matcher.Matches(cat, b.Category) {
			out = append(out, b)
		}
	}
	return out
}

func (e *Engine) firstBudget(cat string) *models.Budget {
	if e.budgets == nil {
		return nil
	}
	for _, b := range e.budgets.Budgets() {
		if e.matcher.Matches(cat, b.Category) {
			return b
		}
	}
	return nil
}
