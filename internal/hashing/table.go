package hashing

// Cache stores node counts by position key and remaining depth.
type Cache interface {
	Lookup(key uint64, depth int) (uint64, bool)
	Store(key uint64, depth int, nodes uint64)
}

type entryKey struct {
	key   uint64
	depth int
}

// Table is a transposition table of perft node counts. It is not safe for
// concurrent use; see ThreadSafeTable. A nil *Table stores nothing.
type Table struct {
	entries map[entryKey]uint64
	// maxCapacity is the maximum number of entries (0 = unlimited)
	maxCapacity int
	hits        int
}

// NewTable creates an empty table. maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the node count stored for key at depth.
func (t *Table) Lookup(key uint64, depth int) (uint64, bool) {
	if t == nil {
		return 0, false
	}
	nodes, ok := t.entries[entryKey{key, depth}]
	if ok {
		t.hits++
	}
	return nodes, ok
}

// Store records nodes for key at depth. Once the table is full new entries
// are dropped; existing ones are kept.
func (t *Table) Store(key uint64, depth int, nodes uint64) {
	if t == nil || t.IsFull() {
		return
	}
	t.entries[entryKey{key, depth}] = nodes
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t != nil && t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *Table) Hits() int {
	if t == nil {
		return 0
	}
	return t.hits
}
