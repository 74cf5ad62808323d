package reconcile

import (
	"fjacquet/budget-sync/internal/category"
	"fjacquet/budget-sync/internal/models"

	"github.com/shopspring/decimal"
)

// Applies reports whether tx counts toward budget b: it must be an expense,
// its category must match and its date must fall inside the budget window.
func Applies(tx models.Transaction, b *models.Budget, m category.Matcher) bool {
	return tx.IsExpense() && m.Matches(tx.Category, b.Category) && b.Contains(tx.Date)
}

// SpentInWindow sums the absolute amounts of every transaction that applies to b.
// This is the ground truth both for full recomputation and for backfilling new budgets.
func SpentInWindow(transactions []models.Transaction, b *models.Budget, m category.Matcher) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if Applies(tx, b, m) {
			total = total.Add(tx.SpendAmount())
		}
	}
	return total
}
