package engine

import "github.com/miskibin/go-draughts/internal/board"

// Bound records whether a stored score is exact or a fail-high/fail-low
// bound (§4.G.4).
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// Entry is one transposition table slot. The full hash is kept for
// collision verification, per §4.G.4.
type Entry struct {
	Hash  uint64
	Move  board.Move
	Score int
	Depth int
	Bound Bound
	Age   uint8
}

// Table is a fixed-size, power-of-two-bucketed transposition table owned by
// a single Engine instance (§4.G.4, §5).
type Table struct {
	entries []Entry
	mask    uint64
	age     uint8
}

// NewTable allocates a table sized to hold roughly sizeMB megabytes of
// entries, rounded down to a power of two bucket count.
func NewTable(sizeMB int) *Table {
	if sizeMB < 1 {
		sizeMB = 1
	}
	entrySize := uint64(48)
	count := uint64(sizeMB) * 1024 * 1024 / entrySize
	count = roundDownPow2(count)
	if count == 0 {
		count = 1
	}
	return &Table{entries: make([]Entry, count), mask: count - 1}
}

func roundDownPow2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// NewSearch bumps the age counter, used by the replacement policy to favor
// entries from the in-progress search over stale ones.
func (t *Table) NewSearch() { t.age++ }

// Clear wipes every entry; the table is cleared at the start of each
// get_best_move call (§4.G.4).
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.age = 0
}

// Probe returns the entry stored for hash, if any.
func (t *Table) Probe(hash uint64) (Entry, bool) {
	e := t.entries[hash&t.mask]
	if e.Hash == hash && e.Depth > 0 {
		return e, true
	}
	return Entry{}, false
}

// Store records an entry, replacing a same-generation entry only when the
// new search is at least as deep (so a depth tie goes to the newer entry),
// and always overwriting an entry from a previous search generation.
func (t *Table) Store(hash uint64, move board.Move, score, depth int, bound Bound) {
	idx := hash & t.mask
	slot := &t.entries[idx]
	if slot.Age != t.age || depth >= slot.Depth {
		*slot = Entry{Hash: hash, Move: move, Score: score, Depth: depth, Bound: bound, Age: t.age}
	}
}
