// Package reconcile keeps derived budget aggregates (spent and remaining)
// consistent with a transaction ledger it does not own.
//
// Two paths update the aggregates: incremental handlers applied per ledger
// event, and a full recomputation from the ledger. After any history of
// events that mirrors the ledger, both must produce identical spent amounts.
//
// The engine is single-writer and does no locking of its own. Callers that
// may receive events concurrently must serialise them, for example with
// Synchronized.
package reconcile

import (
	"fjacquet/budget-sync/internal/category"
	"fjacquet/budget-sync/internal/dateutils"
	"fjacquet/budget-sync/internal/logging"
	"fjacquet/budget-sync/internal/models"

	"github.com/shopspring/decimal"
)

// Engine applies ledger events to a budget store.
type Engine struct {
	budgets    BudgetStore
	ledger     Ledger
	matcher    category.Matcher
	logger     logging.Logger
	metrics    *Metrics
	clampCount int
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMatcher replaces the default case-insensitive category matcher
func WithMatcher(m category.Matcher) Option {
	return func(e *Engine) {
		if m != nil {
			e.matcher = m
		}
	}
}

// WithMetrics attaches prometheus collectors
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithLedger wires the ledger used by Recompute and the read-only queries
func WithLedger(l Ledger) Option {
	return func(e *Engine) {
		e.ledger = l
	}
}

// NewEngine creates an engine that keeps the records of budgets in sync.
func NewEngine(budgets BudgetStore, opts ...Option) *Engine {
	e := &Engine{
		budgets: budgets,
		matcher: category.NewCaseInsensitive(),
		logger:  logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TransactionAdded applies a newly committed transaction.
// Income is ignored; an expense is added to every budget it applies to.
func (e *Engine) TransactionAdded(tx models.Transaction) {
	if !tx.IsExpense() {
		e.metrics.event(EventIncomeIgnored)
		return
	}
	e.metrics.event(EventAdded)
	e.add(tx)
}

// TransactionDeleted reverses a removed transaction.
//
// Spent is floored at zero. In a correctly paired history the floor is never
// reached; when it is, the engine logs a warning and counts the activation
// (ClampCount and the clamp_total metric) so the drift can be investigated.
func (e *Engine) TransactionDeleted(tx models.Transaction) {
	if !tx.IsExpense() {
		e.metrics.event(EventIncomeIgnored)
		return
	}
	e.metrics.event(EventDeleted)
	e.remove(tx)
}

// TransactionUpdated replaces old with updated: old is removed first, then
// updated is added, both against the current budget state. Spend migrates
// between budget sets when the category or date changes.
func (e *Engine) TransactionUpdated(old, updated models.Transaction) {
	e.metrics.event(EventUpdated)
	if old.IsExpense() {
		e.remove(old)
	}
	if updated.IsExpense() {
		e.add(updated)
	}
}

// RecomputeAll rebuilds spent and remaining for every budget in budgets from
// the ledger, independent of any event history. A nil ledger leaves budgets untouched.
func (e *Engine) RecomputeAll(ledger Ledger, budgets BudgetStore) {
	if ledger == nil || budgets == nil {
		e.logger.Warn("Recompute skipped: ledger or budget store not wired")
		return
	}
	transactions := ledger.Transactions()
	records := budgets.Budgets()
	for _, b := range records {
		b.SetSpent(SpentInWindow(transactions, b, e.matcher))
	}
	e.metrics.recomputed()
	e.logger.Info("Recomputed budget aggregates",
		logging.F(logging.FieldCount, len(records)),
		logging.F("transactions", len(transactions)))
}

// Recompute runs RecomputeAll against the engine's own ledger and store.
func (e *Engine) Recompute() {
	e.RecomputeAll(e.ledger, e.budgets)
}

// ClampCount returns how many times a deletion hit the zero floor.
func (e *Engine) ClampCount() int {
	return e.clampCount
}

// MatchingBudgets returns the budgets tx applies to, in store order.
func (e *Engine) MatchingBudgets(tx models.Transaction) []*models.Budget {
	if e.budgets == nil {
		return nil
	}
	var out []*models.Budget
	for _, b := range e.budgets.Budgets() {
		if Applies(tx, b, e.matcher) {
			out = append(out, b)
		}
	}
	return out
}

func (e *Engine) add(tx models.Transaction) {
	amount := tx.SpendAmount()
	for _, b := range e.MatchingBudgets(tx) {
		b.SetSpent(b.SpentAmount.Add(amount))
		e.metrics.budgetUpdated()
		e.logDelta("add", tx, b)
	}
}

func (e *Engine) remove(tx models.Transaction) {
	amount := tx.SpendAmount()
	for _, b := range e.MatchingBudgets(tx) {
		spent := b.SpentAmount.Sub(amount)
		if spent.IsNegative() {
			e.clamp(tx, b, spent.Neg())
			spent = decimal.Zero
		}
		b.SetSpent(spent)
		e.metrics.budgetUpdated()
		e.logDelta("delete", tx, b)
	}
}

func (e *Engine) clamp(tx models.Transaction, b *models.Budget, shortfall decimal.Decimal) {
	e.clampCount++
	e.metrics.clamped()
	e.logger.Warn("Spent amount floored at zero; incremental state has drifted from the ledger",
		logging.F(logging.FieldBudgetID, b.ID),
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldCategory, b.Category),
		logging.F(logging.FieldShortfall, shortfall.String()))
}

func (e *Engine) logDelta(op string, tx models.Transaction, b *models.Budget) {
	e.logger.Debug("Budget updated",
		logging.F(logging.FieldOperation, op),
		logging.F(logging.FieldBudgetID, b.ID),
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldAmount, tx.Amount.String()),
		logging.F(logging.FieldSpent, b.SpentAmount.String()),
		logging.F(logging.FieldRemaining, b.RemainingAmount.String()),
		logging.F(logging.FieldWindow, dateutils.ToISODate(b.StartDate)+"_"+dateutils.ToISODate(b.EndDate)))
}
