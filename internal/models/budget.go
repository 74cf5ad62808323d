package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a spending ceiling for one category over a fixed, inclusive window.
//
// AllocatedAmount is user input and never touched by reconciliation.
// SpentAmount and RemainingAmount are derived from the ledger. The window is
// fixed at creation; the next period gets a new Budget.
type Budget struct {
	ID              string          `json:"id" yaml:"id"`
	Category        string          `json:"category" yaml:"category"`
	AllocatedAmount decimal.Decimal `json:"allocated" yaml:"allocated"`
	SpentAmount     decimal.Decimal `json:"spent" yaml:"spent"`
	RemainingAmount decimal.Decimal `json:"remaining" yaml:"remaining"`
	StartDate       time.Time       `json:"start_date" yaml:"start_date"`
	EndDate         time.Time       `json:"end_date" yaml:"end_date"`
	PeriodType      PeriodType      `json:"period" yaml:"period"`
}

// Contains reports whether date falls inside the budget window.
// Both bounds are inclusive and compared on wall-clock calendar days, so any
// time of day on EndDate still counts and locations are never converted.
func (b *Budget) Contains(date time.Time) bool {
	day := calendarDay(date)
	return !day.Before(calendarDay(b.StartDate)) && !day.After(calendarDay(b.EndDate))
}

// Recalculate derives RemainingAmount from AllocatedAmount and SpentAmount.
// Remaining never goes below zero; use OverBy for the overspend.
func (b *Budget) Recalculate() {
	remaining := b.AllocatedAmount.Sub(b.SpentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	b.RemainingAmount = remaining
}

// SetSpent replaces SpentAmount and recalculates RemainingAmount
func (b *Budget) SetSpent(spent decimal.Decimal) {
	b.SpentAmount = spent
	b.Recalculate()
}

// IsOverBudget returns true if more has been spent than allocated
func (b *Budget) IsOverBudget() bool {
	return b.SpentAmount.GreaterThan(b.AllocatedAmount)
}

// OverBy returns how far spending exceeds the allocation, or zero.
func (b *Budget) OverBy() decimal.Decimal {
	if !b.IsOverBudget() {
		return decimal.Zero
	}
	return b.SpentAmount.Sub(b.AllocatedAmount)
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
