package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event kinds recorded on the events counter
const (
	EventAdded         = "added"
	EventUpdated       = "updated"
	EventDeleted       = "deleted"
	EventIncomeIgnored = "income_ignored"
)

// Metrics holds the engine's prometheus collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Events        *prometheus.CounterVec
	BudgetUpdates prometheus.Counter
	Clamps        prometheus.Counter
	Recomputes    prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "budgetsync",
			Subsystem: "reconcile",
			Name:      "events_total",
			Help:      "Ledger events handled by the incremental path, by kind",
		}, []string{"kind"}),
		BudgetUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "budgetsync",
			Subsystem: "reconcile",
			Name:      "budget_updates_total",
			Help:      "Budget records touched by incremental events",
		}),
		Clamps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "budgetsync",
			Subsystem: "reconcile",
			Name:      "clamp_total",
			Help:      "Deletions where spent would have gone negative and was floored at zero",
		}),
		Recomputes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "budgetsync",
			Subsystem: "reconcile",
			Name:      "recomputes_total",
			Help:      "Full recomputations of budget aggregates",
		}),
	}
}

func (m *Metrics) event(kind string) {
	if m == nil {
		return
	}
	m.Events.WithLabelValues(kind).Inc()
}

func (m *Metrics) budgetUpdated() {
	if m == nil {
		return
	}
	m.BudgetUpdates.Inc()
}

func (m *Metrics) clamped() {
	if m == nil {
		return
	}
	m.Clamps.Inc()
}

func (m *Metrics) recomputed() {
	if m == nil {
		return
	}
	m.Recomputes.Inc()
}
