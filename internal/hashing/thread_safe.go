package hashing

import "sync"

// ThreadSafeTable wraps Table with mutex protection so perft workers can
// share one cache. A nil *ThreadSafeTable stores nothing.
type ThreadSafeTable struct {
	table *Table
	mu    sync.RWMutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{table: NewTable(maxCapacity)}
}

// Lookup returns the node count stored for key at depth.
func (t *ThreadSafeTable) Lookup(key uint64, depth int) (uint64, bool) {
	if t == nil {
		return 0, false
	}
	// Lookup counts hits, so it needs the write lock.
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(key, depth)
}

// Store records nodes for key at depth.
func (t *ThreadSafeTable) Store(key uint64, depth int, nodes uint64) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(key, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	if t == nil {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafeTable) Hits() int {
	if t == nil {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeTable) IsFull() bool {
	if t == nil {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
