package ledger

import "sync"

// Sequence issues unique, strictly increasing identifiers starting at 1.
// Identifiers are never reused, not even after the record they were issued
// for has been deleted. Each entity type gets its own Sequence.
type Sequence struct {
	mu   sync.Mutex
	last uint64
}

// Next returns the next identifier.
func (s *Sequence) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	return s.last
}
