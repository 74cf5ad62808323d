package reconcile

import (
	"sync"

	"fjacquet/budget-sync/internal/models"

	"github.com/shopspring/decimal"
)

// Synchronized serialises calls into an Engine for callers that receive
// ledger events from more than one goroutine. The engine itself stays lock-free.
type Synchronized struct {
	mu     sync.Mutex
	engine *Engine
}

// NewSynchronized wraps engine
func NewSynchronized(engine *Engine) *Synchronized {
	return &Synchronized{engine: engine}
}

// TransactionAdded applies Engine.TransactionAdded under the lock
func (s *Synchronized) TransactionAdded(tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.TransactionAdded(tx)
}

// TransactionDeleted applies Engine.TransactionDeleted under the lock
func (s *Synchronized) TransactionDeleted(tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.TransactionDeleted(tx)
}

// TransactionUpdated applies Engine.TransactionUpdated under the lock
func (s *Synchronized) TransactionUpdated(old, updated models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.TransactionUpdated(old, updated)
}

// Recompute runs Engine.Recompute under the lock
func (s *Synchronized) Recompute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Recompute()
}

// Remaining returns Engine.Remaining read under the lock
func (s *Synchronized) Remaining(cat string) (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Remaining(cat)
}

// IsOverBudget returns Engine.IsOverBudget read under the lock
func (s *Synchronized) IsOverBudget(cat string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.IsOverBudget(cat)
}

// ClampCount returns Engine.ClampCount read under the lock
func (s *Synchronized) ClampCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.ClampCount()
}
