package bridge

import "sync"

const defaultCapacity = 100

// Store is a bounded, newest-first window of recent grabs.
type Store struct {
	mu       sync.Mutex
	grabs    []Grab
	capacity int
}

// NewStore creates a store keeping at most capacity grabs.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Store{capacity: capacity}
}

// Add records a grab, evicting the oldest entry once full.
func (s *Store) Add(grab Grab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grabs = append(s.grabs, grab)
	if len(s.grabs) > s.capacity {
		s.grabs = s.grabs[len(s.grabs)-s.capacity:]
	}
}

// Recent returns the stored grabs, newest first.
func (s *Store) Recent() []Grab {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Grab, len(s.grabs))
	for i, grab := range s.grabs {
		out[len(s.grabs)-1-i] = grab
	}
	return out
}

// Len reports the number of stored grabs.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.grabs)
}
