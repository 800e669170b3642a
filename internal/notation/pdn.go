package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/miskibin/go-draughts/internal/board"
	"github.com/miskibin/go-draughts/internal/variant"
)

// WritePDN renders moves as "N. WhiteMove BlackMove N+1. …", using the
// visited-sequence-only dialect for every ply (§4.F's bit-exact writer
// rule). startSide is the side that played moves[0].
func WritePDN(startSide board.Color, moves []board.Move) string {
	var sb strings.Builder
	side := startSide
	moveNo := 1
	for i, m := range moves {
		if side == board.White {
			fmt.Fprintf(&sb, "%d. %s", moveNo, m.String())
		} else {
			if i == 0 {
				fmt.Fprintf(&sb, "%d. ... %s", moveNo, m.String())
			} else {
				sb.WriteString(m.String())
			}
		}
		if side == board.Black {
			sb.WriteByte(' ')
			moveNo++
		} else if i < len(moves)-1 {
			sb.WriteByte(' ')
		}
		side = side.Other()
	}
	return sb.String()
}

// ParsePDN replays a PDN move list from the variant's starting position,
// reconstructing each ply by matching it against the legal moves generated
// at that point (§4.F). It accepts the visited-sequence-only dialect, the
// alternating captured/landing dialect, and a from-to shorthand for capture
// chains; a ply matching more than one legal move under any reading fails
// with an ambiguous-move error.
func ParsePDN(v variant.Variant, pdn string) (*board.Position, error) {
	pos := board.New(v)
	for _, tok := range strings.Fields(pdn) {
		if isMoveNumberToken(tok) || tok == "..." {
			continue
		}
		m, err := matchPly(pos, tok)
		if err != nil {
			return nil, err
		}
		if err := pos.Push(m); err != nil {
			return nil, fmt.Errorf("notation: %w", err)
		}
	}
	return pos, nil
}

func isMoveNumberToken(tok string) bool {
	if !strings.HasSuffix(tok, ".") {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSuffix(tok, "."))
	return err == nil
}

// matchPly parses one ply token and finds the unique legal move it denotes.
func matchPly(pos *board.Position, tok string) (board.Move, error) {
	sep := byte('-')
	if strings.Contains(tok, "x") {
		sep = 'x'
	} else if !strings.Contains(tok, "-") {
		return board.NoMove, fmt.Errorf("notation: invalid ply %q", tok)
	}

	fields := strings.Split(tok, string(sep))
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return board.NoMove, fmt.Errorf("notation: invalid ply %q: %w", tok, err)
		}
		nums[i] = n
	}

	candidates := pos.LegalMoves()
	var matches []board.Move
	for _, m := range candidates {
		if m.IsCapture() != (sep == 'x') {
			continue
		}
		if plyMatchesMove(nums, m) {
			matches = append(matches, m)
		}
	}

	deduped := dedupMoves(matches)
	switch len(deduped) {
	case 0:
		return board.NoMove, fmt.Errorf("notation: %q does not match a legal move", tok)
	case 1:
		return deduped[0], nil
	default:
		return board.NoMove, fmt.Errorf("notation: %q is ambiguous among %d legal moves", tok, len(deduped))
	}
}

// plyMatchesMove reports whether nums, the squares parsed from a ply token,
// denote m under the visited-sequence-only dialect (nums equals m.Path
// exactly), the alternating captured/landing dialect (nums is origin, then
// captured, landing, captured, landing, ... in step), or — for captures only
// — the origin-destination shorthand some PDN sources use for long capture
// chains (nums is just [from, to], every intermediate square elided). The
// shorthand is the one dialect under which a single token can legitimately
// match more than one legal move: it discards the route, so two different
// capture paths between the same two squares collide and ParsePDN reports
// AmbiguousNotation.
func plyMatchesMove(nums []int, m board.Move) bool {
	if sameSquares(nums, m.Path) {
		return true
	}
	if !m.IsCapture() {
		return false
	}
	if len(nums) == 2 && nums[0] == m.From().Notation() && nums[1] == m.To().Notation() {
		return true
	}
	if len(nums) != 1+2*len(m.Captured) {
		return false
	}
	if nums[0] != m.From().Notation() {
		return false
	}
	capSet := make(map[int]bool, len(m.Captured))
	for _, capSq := range m.Captured {
		capSet[capSq.Notation()] = true
	}
	for i := range m.Captured {
		if !capSet[nums[1+2*i]] {
			return false
		}
	}
	for i, landSq := range m.Path[1:] {
		if nums[2+2*i] != landSq.Notation() {
			return false
		}
	}
	return true
}

func sameSquares(nums []int, path []board.Square) bool {
	if len(nums) != len(path) {
		return false
	}
	for i, sq := range path {
		if nums[i] != sq.Notation() {
			return false
		}
	}
	return true
}

func dedupMoves(moves []board.Move) []board.Move {
	var out []board.Move
	for _, m := range moves {
		dup := false
		for _, o := range out {
			if m.Equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, m)
		}
	}
	return out
}
