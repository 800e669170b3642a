package engine

import (
	"errors"
	"time"

	"github.com/miskibin/go-draughts/internal/board"
)

// Score bounds. MateScore must stay well clear of Infinity so that
// mate-distance encoding (MateScore - ply) never overflows into it.
const (
	Infinity  = 1 << 20
	MateScore = 1 << 19
)

// errAborted unwinds the recursion when the deadline fires; it never
// escapes Searcher.Run (§7, SearchAborted).
var errAborted = errors.New("engine: search aborted")

// pvTable is a triangular principal-variation table: moves[ply] holds the
// best line found starting at ply, in entries ply..len[ply]-1.
type pvTable struct {
	moves [MaxPly][MaxPly]board.Move
	len   [MaxPly]int
}

func (t *pvTable) record(ply int, m board.Move) {
	t.moves[ply][ply] = m
	for j := ply + 1; j < t.len[ply+1]; j++ {
		t.moves[ply][j] = t.moves[ply+1][j]
	}
	t.len[ply] = t.len[ply+1]
}

// Searcher runs one negamax search against a single position. It is not
// safe for concurrent use; callers needing parallelism run one Searcher per
// goroutine, each against its own Position (§5).
type Searcher struct {
	pos      *board.Position
	tt       *Table
	ord      *orderer
	deadline time.Time
	nodes    uint64
	pv       pvTable
}

// NewSearcher builds a Searcher over pos, sharing tt (owned by the caller's
// Engine) and allocating an orderer sized to the position's variant.
func NewSearcher(pos *board.Position, tt *Table) *Searcher {
	return &Searcher{
		pos: pos,
		tt:  tt,
		ord: newOrderer(pos.Variant.S()),
	}
}

// Nodes returns the number of nodes visited by the most recent Run.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// PV returns the principal variation from the most recent Run.
func (s *Searcher) PV() []board.Move {
	out := make([]board.Move, s.pv.len[0])
	copy(out, s.pv.moves[0][:s.pv.len[0]])
	return out
}

// Run performs one fixed-depth negamax search and returns the best move and
// its score, or ok=false if the deadline fired during this depth (the
// partial result is discarded) or no best move was found.
func (s *Searcher) Run(depth int, deadline time.Time) (move board.Move, score int, ok bool) {
	s.deadline = deadline
	s.nodes = 0
	s.pv.len[0] = 0

	defer func() {
		if r := recover(); r != nil {
			if r == errAborted {
				ok = false
				return
			}
			panic(r)
		}
	}()

	score = s.negamax(depth, 0, -Infinity, Infinity)
	if s.pv.len[0] == 0 {
		return board.NoMove, score, false
	}
	return s.pv.moves[0][0], score, true
}

func (s *Searcher) checkDeadline() {
	if s.nodes&1023 != 1 {
		return
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		panic(errAborted)
	}
}

// negamax implements §4.G.2: TT probe, move generation and ordering, PVS
// with a null-window re-search and a shallow late-move reduction, killer
// and history updates on cutoff.
func (s *Searcher) negamax(depth, ply int, alpha, beta int) int {
	s.nodes++
	s.checkDeadline()
	s.pv.len[ply] = ply

	if s.pos.IsGameOver() {
		return terminalScore(s.pos, ply)
	}
	if depth <= 0 {
		return s.quiescence(ply, alpha, beta)
	}

	origAlpha := alpha
	var pvMove board.Move
	if entry, found := s.tt.Probe(s.pos.Hash); found {
		pvMove = entry.Move
		if entry.Depth >= depth {
			score := adjustFromTT(entry.Score, ply)
			switch entry.Bound {
			case BoundExact:
				return score
			case BoundLower:
				if score > alpha {
					alpha = score
				}
			case BoundUpper:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	moves := s.pos.LegalMoves()
	s.ord.orderMoves(moves, ply, pvMove)

	best := -Infinity
	bestMove := board.NoMove

	for i, m := range moves {
		if err := s.pos.Push(m); err != nil {
			continue
		}

		reduction := 0
		if i > 0 && depth >= 3 && !m.IsCapture() && !s.ord.isKiller(ply, m) {
			reduction = 1
		}

		// Pop is deferred, not sequential, so a deadline panic unwinding
		// through the recursive call still restores the position before
		// this frame returns (§4.E, §7 SearchAborted).
		score := func() int {
			defer s.pos.Pop()
			if i == 0 {
				return -s.negamax(depth-1, ply+1, -beta, -alpha)
			}
			sc := -s.negamax(depth-1-reduction, ply+1, -alpha-1, -alpha)
			if sc > alpha && sc < beta {
				sc = -s.negamax(depth-1, ply+1, -beta, -alpha)
			}
			return sc
		}()

		if score > best {
			best = score
			bestMove = m
			if score > alpha {
				alpha = score
				s.pv.record(ply, m)
			}
		}
		if alpha >= beta {
			if !m.IsCapture() {
				s.ord.recordKiller(ply, m)
				s.ord.recordHistory(m, depth)
			}
			s.tt.Store(s.pos.Hash, m, adjustToTT(score, ply), depth, BoundLower)
			return alpha
		}
	}

	bound := BoundUpper
	if alpha > origAlpha {
		bound = BoundExact
	}
	s.tt.Store(s.pos.Hash, bestMove, adjustToTT(best, ply), depth, bound)
	return best
}

// quiescence implements §4.G.3: stand-pat plus captures only.
func (s *Searcher) quiescence(ply int, alpha, beta int) int {
	s.nodes++
	s.checkDeadline()

	if s.pos.IsGameOver() {
		return terminalScore(s.pos, ply)
	}

	standPat := Evaluate(s.pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := s.pos.GenerateCaptures()
	s.ord.orderMoves(captures, ply, board.NoMove)

	for _, m := range captures {
		if err := s.pos.Push(m); err != nil {
			continue
		}
		score := func() int {
			defer s.pos.Pop()
			return -s.quiescence(ply+1, -beta, -alpha)
		}()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// terminalScore encodes mate distance so closer mates are preferred
// (§4.G.2): the side to move with no moves has lost.
func terminalScore(pos *board.Position, ply int) int {
	if pos.IsThreefoldRepetition() {
		return 0
	}
	if pos.HasNoPieces(pos.Side) || len(pos.LegalMoves()) == 0 {
		return -MateScore + ply
	}
	return 0
}

func adjustFromTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

func adjustToTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}
