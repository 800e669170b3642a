package board

import (
	"sync"

	"github.com/miskibin/go-draughts/internal/variant"
)

// Direction indexes the four diagonal (and, for Frisian, four orthogonal)
// travel directions used by the generator.
type Direction int

const (
	DirNW Direction = iota
	DirNE
	DirSW
	DirSE
)

var diagDelta = [4][2]int{
	DirNW: {-1, -1},
	DirNE: {-1, 1},
	DirSW: {1, -1},
	DirSE: {1, 1},
}

// Orthogonal directions step two rows/files at a time: consecutive dark
// squares sharing a rank or file are two absolute columns apart, exactly as
// consecutive dark squares sharing a diagonal are one row and one column
// apart.
var orthoDelta = [4][2]int{
	DirNW: {-2, 0}, // north
	DirNE: {0, 2},  // east
	DirSW: {0, -2}, // west
	DirSE: {2, 0},  // south
}

// Geometry holds the precomputed neighbor and ray tables for one variant's
// board side, built once per variant (§4.B).
type Geometry struct {
	N    int
	Half int
	S    int

	stepDiag  [4][]Square
	rayDiag   [4][][]Square
	stepOrtho [4][]Square
	rayOrtho  [4][][]Square
}

var geometryCache sync.Map // variant.Variant -> *Geometry

// GeometryFor returns the (cached) geometry tables for v, building them on
// first use.
func GeometryFor(v variant.Variant) *Geometry {
	if g, ok := geometryCache.Load(v); ok {
		return g.(*Geometry)
	}
	g := buildGeometry(v)
	actual, _ := geometryCache.LoadOrStore(v, g)
	return actual.(*Geometry)
}

func buildGeometry(v variant.Variant) *Geometry {
	n := v.N
	half := v.Half()
	s := v.S()

	g := &Geometry{N: n, Half: half, S: s}

	for d := 0; d < 4; d++ {
		g.stepDiag[d] = make([]Square, s)
		g.rayDiag[d] = make([][]Square, s)
		g.stepOrtho[d] = make([]Square, s)
		g.rayOrtho[d] = make([][]Square, s)
	}

	for i := 0; i < s; i++ {
		row, col := rowColOf(i, half)
		for d := 0; d < 4; d++ {
			g.stepDiag[d][i] = stepFrom(row, col, diagDelta[d], n, half)
			g.rayDiag[d][i] = rayFrom(row, col, diagDelta[d], n, half)
			g.stepOrtho[d][i] = stepFrom(row, col, orthoDelta[d], n, half)
			g.rayOrtho[d][i] = rayFrom(row, col, orthoDelta[d], n, half)
		}
	}

	return g
}

// rowColOf converts a playable-square index to (row, col) on the N x N
// grid, per §3.1's convention: col(i) = 2*file(i) + ((rank(i)+1) mod 2).
func rowColOf(i, half int) (row, col int) {
	row = i / half
	file := i % half
	col = 2*file + (row+1)%2
	return
}

// squareAt is the inverse of rowColOf: it returns the playable-square index
// for (row, col), or NoSquare if that grid cell is off-board or not a dark
// square.
func squareAt(row, col, n, half int) Square {
	if row < 0 || row >= n || col < 0 || col >= n {
		return NoSquare
	}
	offset := (row + 1) % 2
	if (col-offset)%2 != 0 {
		return NoSquare
	}
	file := (col - offset) / 2
	if file < 0 || file >= half {
		return NoSquare
	}
	return Square(row*half + file)
}

// RowColOf exposes rowColOf for packages scoring squares geometrically
// (piece-square tables).
func RowColOf(i, half int) (row, col int) { return rowColOf(i, half) }

// SquareAt exposes squareAt for packages that need the inverse mapping.
func SquareAt(row, col, n, half int) Square { return squareAt(row, col, n, half) }

func stepFrom(row, col int, delta [2]int, n, half int) Square {
	return squareAt(row+delta[0], col+delta[1], n, half)
}

func rayFrom(row, col int, delta [2]int, n, half int) []Square {
	var out []Square
	r, c := row+delta[0], col+delta[1]
	for {
		sq := squareAt(r, c, n, half)
		if sq == NoSquare {
			break
		}
		out = append(out, sq)
		r += delta[0]
		c += delta[1]
	}
	return out
}

// StepDiag returns the diagonal neighbor of sq in direction d, or NoSquare.
func (g *Geometry) StepDiag(d Direction, sq Square) Square {
	return g.stepDiag[d][sq]
}

// RayDiag returns the ordered list of squares reached by sliding from sq in
// direction d until leaving the board.
func (g *Geometry) RayDiag(d Direction, sq Square) []Square {
	return g.rayDiag[d][sq]
}

// StepOrtho returns the orthogonal neighbor of sq in direction d, or
// NoSquare. Only meaningful for Frisian-flagged variants.
func (g *Geometry) StepOrtho(d Direction, sq Square) Square {
	return g.stepOrtho[d][sq]
}

// RayOrtho returns the ordered list of squares reached by sliding from sq in
// orthogonal direction d until leaving the board.
func (g *Geometry) RayOrtho(d Direction, sq Square) []Square {
	return g.rayOrtho[d][sq]
}

// Between returns the squares strictly between a and b if they share a
// diagonal or (Frisian) orthogonal line, or nil otherwise.
func (g *Geometry) Between(a, b Square) []Square {
	for d := 0; d < 4; d++ {
		if between := betweenOnRay(g.rayDiag[d][a], b); between != nil {
			return between
		}
		if between := betweenOnRay(g.rayOrtho[d][a], b); between != nil {
			return between
		}
	}
	return nil
}

func betweenOnRay(ray []Square, b Square) []Square {
	for i, sq := range ray {
		if sq == b {
			out := make([]Square, i)
			copy(out, ray[:i])
			return out
		}
	}
	return nil
}

// forwardDirs returns the two diagonal directions a man of color c advances
// in: White moves toward decreasing rows (NW/NE), Black toward increasing
// rows (SW/SE).
func forwardDirs(c Color) [2]Direction {
	if c == White {
		return [2]Direction{DirNW, DirNE}
	}
	return [2]Direction{DirSW, DirSE}
}

// promotionRow returns the rank index (0-based) a man of color c promotes
// on.
func promotionRow(c Color, n int) int {
	if c == White {
		return 0
	}
	return n - 1
}

func isPromotionSquare(sq Square, c Color, half, n int) bool {
	row, _ := rowColOf(int(sq), half)
	return row == promotionRow(c, n)
}
