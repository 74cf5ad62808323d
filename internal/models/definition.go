package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetDefinition is user input for a budget before its window and spend are derived.
//
// Either Anchor (window computed from Period) or an explicit Start/End pair is used.
type BudgetDefinition struct {
	ID        string
	Category  string
	Allocated decimal.Decimal
	Period    PeriodType
	Anchor    time.Time
	Start     time.Time
	End       time.Time
}

// HasExplicitWindow reports whether Start and End were both given
func (d BudgetDefinition) HasExplicitWindow() bool {
	return !d.Start.IsZero() && !d.End.IsZero()
}
