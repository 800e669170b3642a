package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is an ordered sequence of visited squares plus the unordered set of
// captured squares and a promotion flag (§3.4). For a quiet move Path has
// exactly two entries; for a capture, Path has k+1 entries where k is the
// number of jumps.
type Move struct {
	Path      []Square
	Captured  []Square
	Promoted  bool
	capturedBB Bitboard // memoized for fast membership tests during generation
}

// NoMove is the zero value, never returned by the generator.
var NoMove = Move{}

// From returns the move's origin square.
func (m Move) From() Square { return m.Path[0] }

// To returns the move's destination square.
func (m Move) To() Square { return m.Path[len(m.Path)-1] }

// IsCapture reports whether the move captures at least one piece.
func (m Move) IsCapture() bool { return len(m.Captured) > 0 }

// Equal reports whether two moves have the same visited path and captured
// set, the duplicate-detection criterion from §4.D.3.
func (m Move) Equal(o Move) bool {
	if len(m.Path) != len(o.Path) || m.capturedBB != o.capturedBB {
		return false
	}
	for i := range m.Path {
		if m.Path[i] != o.Path[i] {
			return false
		}
	}
	return true
}

// String renders the move in the PDN visited-sequence dialect: "a-b" for a
// quiet move, "axbxc" for a capture (§4.F).
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	parts := make([]string, len(m.Path))
	for i, sq := range m.Path {
		parts[i] = strconv.Itoa(sq.Notation())
	}
	return strings.Join(parts, sep)
}

// key returns a canonical string used to deduplicate generated moves by
// (visited-sequence, captured-set).
func (m Move) key() string {
	var sb strings.Builder
	for _, sq := range m.Path {
		fmt.Fprintf(&sb, "%d,", sq)
	}
	sb.WriteByte('|')
	fmt.Fprintf(&sb, "%d", m.capturedBB)
	return sb.String()
}
