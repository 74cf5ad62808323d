// Package period converts a period type and an anchor date into an inclusive
// budget window.
package period

import (
	"fmt"
	"time"

	"fjacquet/budget-sync/internal/dateutils"
	"fjacquet/budget-sync/internal/models"
)

// Window is an inclusive [Start, End] range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on or between the window's start and end
// days. Days are wall-clock dates; no location conversion takes place.
func (w Window) Contains(t time.Time) bool {
	return dateutils.CompareDates(t, w.Start) >= 0 && dateutils.CompareDates(t, w.End) <= 0
}

// String returns the window in the format "YYYY-MM-DD_YYYY-MM-DD"
func (w Window) String() string {
	if w.Start.IsZero() || w.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s", dateutils.ToISODate(w.Start), dateutils.ToISODate(w.End))
}

// ComputeWindow returns the window of the given period type that contains anchor.
//
// Weekly windows follow ISO weeks (Monday to Sunday). Unknown period types are
// treated as monthly; use ComputeWindowChecked to detect them.
func ComputeWindow(periodType models.PeriodType, anchor time.Time) (time.Time, time.Time) {
	w, _ := ComputeWindowChecked(periodType, anchor)
	return w.Start, w.End
}

// ComputeWindowChecked is ComputeWindow returning a Window and whether the period type was recognised.
func ComputeWindowChecked(periodType models.PeriodType, anchor time.Time) (Window, bool) {
	switch periodType {
	case models.PeriodWeekly:
		return Window{Start: dateutils.StartOfWeek(anchor), End: dateutils.EndOfWeek(anchor)}, true
	case models.PeriodMonthly:
		return monthly(anchor), true
	case models.PeriodYearly:
		return Window{Start: dateutils.StartOfYear(anchor), End: dateutils.EndOfYear(anchor)}, true
	default:
		return monthly(anchor), false
	}
}

// Next returns the window immediately following w for the same period type.
// Budgets never roll over on their own; callers use this to create the next one.
func Next(periodType models.PeriodType, w Window) Window {
	next, _ := ComputeWindowChecked(periodType, w.End.AddDate(0, 0, 1))
	return next
}

func monthly(anchor time.Time) Window {
	return Window{Start: dateutils.StartOfMonth(anchor), End: dateutils.EndOfMonth(anchor)}
}
