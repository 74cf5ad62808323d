package store

import (
	"fjacquet/budget-sync/internal/loaderror"
	"fjacquet/budget-sync/internal/models"
)

// MemoryLedger is an ordered, in-memory transaction ledger.
// It is not safe for concurrent use.
type MemoryLedger struct {
	transactions []models.Transaction
	index        map[string]int
}

// NewMemoryLedger creates a ledger pre-filled with transactions
func NewMemoryLedger(transactions ...models.Transaction) (*MemoryLedger, error) {
	l := &MemoryLedger{index: make(map[string]int)}
	for _, tx := range transactions {
		if err := l.Add(tx); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add appends a transaction
func (l *MemoryLedger) Add(tx models.Transaction) error {
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if _, exists := l.index[tx.ID]; exists {
		return &loaderror.DuplicateIDError{Kind: "transaction", ID: tx.ID}
	}
	l.index[tx.ID] = len(l.transactions)
	l.transactions = append(l.transactions, tx)
	return nil
}

// Update replaces the transaction with the same ID and returns the previous version
func (l *MemoryLedger) Update(tx models.Transaction) (models.Transaction, error) {
	i, ok := l.index[tx.ID]
	if !ok {
		return models.Transaction{}, &loaderror.NotFoundError{Kind: "transaction", ID: tx.ID}
	}
	old := l.transactions[i]
	l.transactions[i] = tx
	return old, nil
}

// Delete removes a transaction and returns it
func (l *MemoryLedger) Delete(id string) (models.Transaction, error) {
	i, ok := l.index[id]
	if !ok {
		return models.Transaction{}, &loaderror.NotFoundError{Kind: "transaction", ID: id}
	}
	old := l.transactions[i]
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	delete(l.index, id)
	for j := i; j < len(l.transactions); j++ {
		l.index[l.transactions[j].ID] = j
	}
	return old, nil
}

// Get returns the transaction with the given ID
func (l *MemoryLedger) Get(id string) (models.Transaction, bool) {
	i, ok := l.index[id]
	if !ok {
		return models.Transaction{}, false
	}
	return l.transactions[i], true
}

// Len returns the number of transactions
func (l *MemoryLedger) Len() int {
	return len(l.transactions)
}

// Transactions returns a snapshot copy in insertion order
func (l *MemoryLedger) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// MemoryBudgetStore holds budget records in insertion order.
// It is not safe for concurrent use.
type MemoryBudgetStore struct {
	budgets []*models.Budget
}

// NewMemoryBudgetStore creates a store holding budgets
func NewMemoryBudgetStore(budgets ...*models.Budget) (*MemoryBudgetStore, error) {
	s := &MemoryBudgetStore{}
	for _, b := range budgets {
		if err := s.Add(b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts a budget record. The store keeps the pointer.
func (s *MemoryBudgetStore) Add(b *models.Budget) error {
	if _, ok := s.Get(b.ID); ok {
		return &loaderror.DuplicateIDError{Kind: "budget", ID: b.ID}
	}
	s.budgets = append(s.budgets, b)
	return nil
}

// Remove deletes the budget with the given ID and reports whether it existed
func (s *MemoryBudgetStore) Remove(id string) bool {
	for i, b := range s.budgets {
		if b.ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the budget with the given ID
func (s *MemoryBudgetStore) Get(id string) (*models.Budget, bool) {
	for _, b := range s.budgets {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Budgets returns the live records in insertion order
func (s *MemoryBudgetStore) Budgets() []*models.Budget {
	out := make([]*models.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// Len returns the number of budgets
func (s *MemoryBudgetStore) Len() int {
	return len(s.budgets)
}
