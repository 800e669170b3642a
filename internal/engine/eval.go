package engine

import (
	"sync"

	"github.com/miskibin/go-draughts/internal/board"
	"github.com/miskibin/go-draughts/internal/variant"
)

// Material values in centipawns (§4.H). The ratio, not the absolute scale,
// is what move ordering and pruning margins are tuned against.
const (
	ManValue  = 100
	KingValue = 300
	TempoBonus = 5
)

// pstTable holds the man and king piece-square tables for one variant,
// indexed by playable square from White's perspective; Black's score is
// read by mirroring the rank.
type pstTable struct {
	man  []int
	king []int
}

var pstCache sync.Map // variant.Variant -> *pstTable

func pstFor(v variant.Variant) *pstTable {
	if t, ok := pstCache.Load(v); ok {
		return t.(*pstTable)
	}
	t := buildPST(v)
	actual, _ := pstCache.LoadOrStore(v, t)
	return actual.(*pstTable)
}

// buildPST scores men by advancement toward White's promotion row (rank 0)
// and kings by centralization, both scaled into ±30 per §4.H.
func buildPST(v variant.Variant) *pstTable {
	n := v.N
	half := v.Half()
	s := v.S()
	t := &pstTable{man: make([]int, s), king: make([]int, s)}

	center := float64(n-1) / 2
	maxDist := center // Chebyshev distance from center to an edge rank/file

	for i := 0; i < s; i++ {
		row, col := board.RowColOf(i, half)

		advancement := n - 1 - row // 0 at White's back rank, n-1 at promotion row
		t.man[i] = int(30 * float64(advancement) / float64(n-1))

		dr := absFloat(float64(row) - center)
		dc := absFloat(float64(col) - center)
		dist := dr
		if dc > dist {
			dist = dc
		}
		t.king[i] = int(30 * (1 - dist/maxDist))
	}
	return t
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// mirrorSquare rotates a square 180 degrees about the board center, so the
// same White-oriented PST can score Black: flipping only the row would land
// on the wrong dark-square color, since the two colors' playable columns
// alternate by rank.
func mirrorSquare(sq board.Square, half, n int) board.Square {
	row, col := board.RowColOf(int(sq), half)
	return board.SquareAt(n-1-row, n-1-col, n, half)
}

// Evaluate scores pos from the perspective of the side to move (§4.H):
// positive means the side to move stands better. It is static, fast, and
// makes no allocations.
func Evaluate(pos *board.Position) int {
	v := pos.Variant
	pst := pstFor(v)
	half := v.Half()

	own, opp := pos.Side, pos.Side.Other()

	ownScore := materialAndPST(pos, own, pst, half, v.N) + TempoBonus
	oppScore := materialAndPST(pos, opp, pst, half, v.N)

	return ownScore - oppScore
}

func materialAndPST(pos *board.Position, c board.Color, pst *pstTable, half, n int) int {
	score := 0
	for bb := pos.Men(c); bb != 0; {
		sq := bb.PopLSB()
		score += ManValue
		score += pstLookup(pst.man, sq, c, half, n)
	}
	for bb := pos.Kings(c); bb != 0; {
		sq := bb.PopLSB()
		score += KingValue
		score += pstLookup(pst.king, sq, c, half, n)
	}
	return score
}

// pstLookup reads the White-oriented table, mirroring the square for Black
// so both colors are scored from their own side's advancing direction.
func pstLookup(table []int, sq board.Square, c board.Color, half, n int) int {
	if c == board.Black {
		sq = mirrorSquare(sq, half, n)
	}
	return table[sq]
}
