package ledger

import (
	"sync"
	"time"

	"golang.org/x/exp/slices"
)

// MemoryStore is the in-memory Store implementation. All records live in
// process memory and are lost on restart; this is intentional, a durable
// deployment uses GormStore behind the same interface.
//
// A single RWMutex covers both collections and the check-then-write of every
// mutation, so no operation ever observes a half-applied update.
type MemoryStore struct {
	mu sync.RWMutex

	transactions map[uint64]Transaction
	categories   map[uint64]Category

	transactionIDs Sequence
	categoryIDs    Sequence
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[uint64]Transaction),
		categories:   make(map[uint64]Category),
	}
}

func (s *MemoryStore) Transactions(owner uint64, filter TransactionFilter) ([]Transaction, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]Transaction, 0)
	for _, t := range s.transactions {
		if t.OwnerID == owner && filter.matchesCategory(t) {
			matches = append(matches, t)
		}
	}

	sortTransactions(matches)

	total := int64(len(matches))

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matches) {
		return []Transaction{}, total, nil
	}
	matches = matches[offset:]

	if limit := filter.limit(); limit >= 0 && limit < len(matches) {
		matches = matches[:limit]
	}

	return matches, total, nil
}

func (s *MemoryStore) Transaction(owner, id uint64) (Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transactions[id]
	if !ok || t.OwnerID != owner {
		return Transaction{}, ErrNotFound
	}

	return t, nil
}

func (s *MemoryStore) CreateTransaction(owner uint64, data TransactionEditable) (Transaction, error) {
	if err := data.validate(); err != nil {
		return Transaction{}, err
	}

	data.Date = normalizeDate(data.Date)

	s.mu.Lock()
	defer s.mu.Unlock()

	t := Transaction{
		ID:                  s.transactionIDs.Next(),
		OwnerID:             owner,
		CreatedAt:           time.Now().In(time.UTC),
		TransactionEditable: data,
	}
	s.transactions[t.ID] = t

	return t, nil
}

func (s *MemoryStore) UpdateTransaction(owner, id uint64, patch TransactionPatch) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.transactions[id]
	if !ok || existing.OwnerID != owner {
		return Transaction{}, ErrNotFound
	}

	merged := patch.apply(existing.TransactionEditable)
	if err := merged.validate(); err != nil {
		return Transaction{}, err
	}

	existing.TransactionEditable = merged
	s.transactions[id] = existing

	return existing, nil
}

func (s *MemoryStore) DeleteTransaction(owner, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.transactions[id]
	if !ok || t.OwnerID != owner {
		return false, nil
	}

	delete(s.transactions, id)
	return true, nil
}

func (s *MemoryStore) AllTransactions(owner uint64) ([]Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Transaction, 0)
	for _, t := range s.transactions {
		if t.OwnerID == owner {
			all = append(all, t)
		}
	}

	sortTransactions(all)
	return all, nil
}

func (s *MemoryStore) Categories(owner uint64) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]Category, 0)
	for _, category := range s.categories {
		if category.OwnerID == owner {
			categories = append(categories, category)
		}
	}

	// Map iteration order is random, listing order must not be
	slices.SortFunc(categories, func(a, b Category) int {
		return int(a.ID) - int(b.ID)
	})

	return categories, nil
}

func (s *MemoryStore) CreateCategory(owner uint64, data CategoryEditable) (Category, error) {
	if err := data.validate(); err != nil {
		return Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createCategory(owner, data), nil
}

func (s *MemoryStore) SeedDefaultCategories(owner uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, data := range DefaultCategories() {
		s.createCategory(owner, data)
	}

	return nil
}

// createCategory inserts a category. The caller must hold the write lock.
func (s *MemoryStore) createCategory(owner uint64, data CategoryEditable) Category {
	category := Category{
		ID:               s.categoryIDs.Next(),
		OwnerID:          owner,
		CategoryEditable: data,
	}
	s.categories[category.ID] = category

	return category
}

// sortTransactions orders by date descending. Equal dates are broken by
// descending ID, so that of two transactions on the same day the
// newest-inserted one comes first.
func sortTransactions(transactions []Transaction) {
	slices.SortFunc(transactions, func(a, b Transaction) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}

		switch {
		case b.ID > a.ID:
			return 1
		case b.ID < a.ID:
			return -1
		default:
			return 0
		}
	})
}
