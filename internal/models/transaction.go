// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry. The ledger owns it; reconciliation only reads it.
//
// A negative Amount is an expense (outflow), anything else is income. Only
// expenses ever count against a budget.
type Transaction struct {
	ID          string          `json:"id" yaml:"id"`
	Date        time.Time       `json:"date" yaml:"date"`
	Category    string          `json:"category" yaml:"category"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsExpense returns true if the transaction is an outflow
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome returns true if the transaction is an inflow (zero counts as income)
func (t Transaction) IsIncome() bool {
	return !t.IsExpense()
}

// SpendAmount returns the absolute amount of an expense, or zero for income.
func (t Transaction) SpendAmount() decimal.Decimal {
	if !t.IsExpense() {
		return decimal.Zero
	}
	return t.Amount.Abs()
}
