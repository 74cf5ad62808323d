package reconcile

import "fjacquet/budget-sync/internal/models"

// Ledger is a read-only view of the transaction ledger. The engine never
// mutates the returned slice.
type Ledger interface {
	Transactions() []models.Transaction
}

// BudgetStore exposes the mutable budget records the engine keeps in sync.
// The returned pointers must refer to the store's own records so that updates
// made by the engine are visible to the store.
type BudgetStore interface {
	Budgets() []*models.Budget
}

// LedgerFunc adapts a function to the Ledger interface
type LedgerFunc func() []models.Transaction

// Transactions implements Ledger
func (f LedgerFunc) Transactions() []models.Transaction {
	return f()
}

// Snapshot is a fixed transaction slice usable as a Ledger
type Snapshot []models.Transaction

// Transactions implements Ledger
func (s Snapshot) Transactions() []models.Transaction {
	return s
}

// BudgetList is a fixed slice of budget records usable as a BudgetStore
type BudgetList []*models.Budget

// Budgets implements BudgetStore
func (l BudgetList) Budgets() []*models.Budget {
	return l
}
