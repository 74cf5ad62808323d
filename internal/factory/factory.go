// Package factory creates budget records whose derived amounts already
// reflect the ledger at creation time.
package factory

import (
	"time"

	"fjacquet/budget-sync/internal/category"
	"fjacquet/budget-sync/internal/logging"
	"fjacquet/budget-sync/internal/models"
	"fjacquet/budget-sync/internal/period"
	"fjacquet/budget-sync/internal/reconcile"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Factory builds Budget records. It never inserts them into a store.
type Factory struct {
	matcher category.Matcher
	logger  logging.Logger
	now     func() time.Time
}

// Option configures a Factory
type Option func(*Factory)

// WithLogger sets the logger
func WithLogger(logger logging.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithMatcher sets the category matcher. It must be the one the engine uses,
// otherwise backfilled and incremental amounts disagree.
func WithMatcher(m category.Matcher) Option {
	return func(f *Factory) {
		if m != nil {
			f.matcher = m
		}
	}
}

// WithClock replaces time.Now for resolving a zero anchor date
func WithClock(now func() time.Time) Option {
	return func(f *Factory) {
		if now != nil {
			f.now = now
		}
	}
}

// New creates a Factory
func New(opts ...Option) *Factory {
	f := &Factory{
		matcher: category.NewCaseInsensitive(),
		logger:  logging.NewNopLogger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateWithHistory creates a budget for the period containing anchor and
// backfills its spent amount from every ledger transaction already inside
// that window. A zero anchor means today. A nil ledger backfills nothing.
func (f *Factory) CreateWithHistory(cat string, allocated decimal.Decimal, periodType models.PeriodType, anchor time.Time, ledger reconcile.Ledger) *models.Budget {
	b := f.CreateEmpty(cat, allocated, periodType, anchor)
	f.backfill(b, ledger)
	return b
}

// CreateEmpty creates a budget for the period containing anchor with nothing spent.
func (f *Factory) CreateEmpty(cat string, allocated decimal.Decimal, periodType models.PeriodType, anchor time.Time) *models.Budget {
	if anchor.IsZero() {
		anchor = f.now()
	}

	w, ok := period.ComputeWindowChecked(periodType, anchor)
	if !ok {
		f.logger.Warn("Unknown period type, using monthly",
			logging.F(logging.FieldPeriod, periodType.String()),
			logging.F(logging.FieldCategory, cat))
		periodType = models.PeriodMonthly
	}

	return f.newBudget("", cat, allocated, periodType, w)
}

// FromDefinition materialises a loaded definition. An explicit start/end pair
// wins over the anchor; otherwise the window is computed from the period type.
func (f *Factory) FromDefinition(def models.BudgetDefinition, ledger reconcile.Ledger) *models.Budget {
	var b *models.Budget
	if def.HasExplicitWindow() {
		b = f.newBudget(def.ID, def.Category, def.Allocated, def.Period, period.Window{Start: def.Start, End: def.End})
	} else {
		b = f.CreateEmpty(def.Category, def.Allocated, def.Period, def.Anchor)
		if def.ID != "" {
			b.ID = def.ID
		}
	}
	f.backfill(b, ledger)
	return b
}

// NextPeriod creates the budget that follows b: same category, allocation and
// period type, over the next window. Budgets never roll over by themselves.
func (f *Factory) NextPeriod(b *models.Budget, ledger reconcile.Ledger) *models.Budget {
	w := period.Next(b.PeriodType, period.Window{Start: b.StartDate, End: b.EndDate})
	next := f.newBudget("", b.Category, b.AllocatedAmount, b.PeriodType, w)
	f.backfill(next, ledger)
	return next
}

func (f *Factory) newBudget(id, cat string, allocated decimal.Decimal, periodType models.PeriodType, w period.Window) *models.Budget {
	if id == "" {
		id = uuid.NewString()
	}
	b := &models.Budget{
		ID:              id,
		Category:        cat,
		AllocatedAmount: allocated,
		StartDate:       w.Start,
		EndDate:         w.End,
		PeriodType:      periodType,
	}
	b.Recalculate()
	return b
}

func (f *Factory) backfill(b *models.Budget, ledger reconcile.Ledger) {
	if ledger == nil {
		return
	}
	b.SetSpent(reconcile.SpentInWindow(ledger.Transactions(), b, f.matcher))
	f.logger.Debug("Budget created with history",
		logging.F(logging.FieldBudgetID, b.ID),
		logging.F(logging.FieldCategory, b.Category),
		logging.F(logging.FieldWindow, period.Window{Start: b.StartDate, End: b.EndDate}.String()),
		logging.F(logging.FieldSpent, b.SpentAmount.String()))
}
