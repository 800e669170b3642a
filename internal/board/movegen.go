package board

import "github.com/miskibin/go-draughts/internal/variant"

// genFamily bundles the step/ray lookups for one direction family (diagonal
// or, for Frisian variants, orthogonal) so the capture search can walk both
// families with the same recursive code.
type genFamily struct {
	step         func(d Direction, sq Square) Square
	ray          func(d Direction, sq Square) []Square
	forwardOnly  bool // true for diagonal man captures when backward is disallowed
}

// captureCtx is the scratch state threaded through the capture recursion;
// it is built once per GenerateCaptures call and shared by every root
// piece's DFS, per
// §9's "avoid allocating a new captured-set per node".
type captureCtx struct {
	pos      *Position
	geom     *Geometry
	side     Color
	families []genFamily
	seen     map[string]bool
	out      *[]Move
}

// GenerateCaptures enumerates every maximal capture path for the side to
// move (§4.D.1, §4.D.2), before any maximum-capture filtering.
func (p *Position) GenerateCaptures() []Move {
	geom := p.geom
	ctx := &captureCtx{
		pos:  p,
		geom: geom,
		side: p.Side,
		seen: make(map[string]bool),
		out:  &[]Move{},
	}
	ctx.families = []genFamily{
		{step: geom.StepDiag, ray: geom.RayDiag, forwardOnly: !p.Variant.ManCaptureBackward},
	}
	if p.Variant.Frisian {
		ctx.families = append(ctx.families, genFamily{step: geom.StepOrtho, ray: geom.RayOrtho, forwardOnly: false})
	}

	for bb := p.Men(p.Side); bb != 0; {
		sq := bb.PopLSB()
		ctx.search(sq, false, sq, []Square{sq}, EmptyBB, false)
	}
	for bb := p.Kings(p.Side); bb != 0; {
		sq := bb.PopLSB()
		ctx.search(sq, true, sq, []Square{sq}, EmptyBB, false)
	}
	return *ctx.out
}

// search performs the depth-first capture recursion of §4.D.1. cur is the
// current square, isKing/promoted describe the piece's state at this node,
// start is the whole move's origin, path is the visited sequence so far and
// captured is the bitmask of enemy squares already captured in this chain.
func (c *captureCtx) search(cur Square, isKing bool, start Square, path []Square, captured Bitboard, promoted bool) {
	found := false

	for _, fam := range c.families {
		for d := Direction(0); d < 4; d++ {
			if !isKing && fam.forwardOnly && !isForward(d, c.side) {
				continue
			}
			if isKing && c.pos.Variant.FlyingKings {
				if c.flyingCapture(fam, d, cur, start, path, captured, promoted, &found) {
					// flyingCapture recurses internally
				}
				continue
			}
			c.shortCapture(fam, d, cur, isKing, start, path, captured, promoted, &found)
		}
	}

	if !found && captured.Any() {
		c.emit(path, captured, promoted)
	}
}

// isForward reports whether diagonal direction d is the man-advance
// direction for color side. Orthogonal captures are never direction
// restricted, so callers only consult this for the diagonal family.
func isForward(d Direction, side Color) bool {
	fwd := forwardDirs(side)
	return d == fwd[0] || d == fwd[1]
}

// shortCapture tries a single-hop capture (a man, or a short-range king) in
// direction d of family fam.
func (c *captureCtx) shortCapture(fam genFamily, d Direction, cur Square, isKing bool, start Square, path []Square, captured Bitboard, promoted bool, found *bool) {
	mid := fam.step(d, cur)
	if mid == NoSquare {
		return
	}
	midPiece := c.pos.PieceAt(mid)
	if midPiece == EmptyPiece || midPiece.Color() == c.side || captured.IsSet(mid) {
		return
	}
	land := fam.step(d, mid)
	if land == NoSquare {
		return
	}
	if land != start && !c.pos.IsEmpty(land) {
		return
	}
	if containsSquare(path, land) {
		return
	}

	*found = true
	newPath := appendSquare(path, land)
	newCaptured := captured.Set(mid)

	if !isKing && isPromotionSquare(land, c.side, c.geom.Half, c.geom.N) {
		if c.pos.Variant.PromotionContinues {
			c.search(land, true, start, newPath, newCaptured, true)
		} else {
			// American rule: the chain stops the instant the man promotes,
			// even if further captures remain available from land.
			c.emit(newPath, newCaptured, true)
		}
		return
	}
	c.search(land, isKing, start, newPath, newCaptured, promoted)
}

// flyingCapture tries every landing square behind the first enemy piece
// found along a flying king's ray in direction d of family fam.
func (c *captureCtx) flyingCapture(fam genFamily, d Direction, cur, start Square, path []Square, captured Bitboard, promoted bool, found *bool) bool {
	ray := fam.ray(d, cur)
	for idx, sq := range ray {
		if sq == start {
			// The moving king vacated its origin at the start of this
			// move; it no longer blocks its own line of sight.
			continue
		}
		pc := c.pos.PieceAt(sq)
		if pc == EmptyPiece {
			continue
		}
		if pc.Color() == c.side || captured.IsSet(sq) {
			return true
		}

		mid := sq
		for j := idx + 1; j < len(ray); j++ {
			land := ray[j]
			if land != start && !c.pos.IsEmpty(land) {
				break
			}
			if containsSquare(path, land) {
				continue
			}
			*found = true
			newPath := appendSquare(path, land)
			newCaptured := captured.Set(mid)
			c.search(land, true, start, newPath, newCaptured, promoted)
		}
		return true
	}
	return true
}

func (c *captureCtx) emit(path []Square, captured Bitboard, promoted bool) {
	m := Move{
		Path:       append([]Square(nil), path...),
		Captured:   captured.Squares(),
		Promoted:   promoted,
		capturedBB: captured,
	}
	k := m.key()
	if c.seen[k] {
		return
	}
	c.seen[k] = true
	*c.out = append(*c.out, m)
}

func containsSquare(path []Square, sq Square) bool {
	for _, s := range path {
		if s == sq {
			return true
		}
	}
	return false
}

func appendSquare(path []Square, sq Square) []Square {
	out := make([]Square, len(path)+1)
	copy(out, path)
	out[len(path)] = sq
	return out
}

// GenerateQuiet enumerates every quiet (non-capturing) move for the side to
// move (§4.D step 2).
func (p *Position) GenerateQuiet() []Move {
	var out []Move
	geom := p.geom
	side := p.Side

	for bb := p.Men(side); bb != 0; {
		sq := bb.PopLSB()
		for _, d := range forwardDirs(side) {
			to := geom.StepDiag(d, sq)
			if to == NoSquare || !p.IsEmpty(to) {
				continue
			}
			promoted := isPromotionSquare(to, side, geom.Half, geom.N)
			out = append(out, Move{Path: []Square{sq, to}, Promoted: promoted})
		}
	}

	for bb := p.Kings(side); bb != 0; {
		sq := bb.PopLSB()
		if p.Variant.FlyingKings {
			for d := Direction(0); d < 4; d++ {
				for _, to := range geom.RayDiag(d, sq) {
					if !p.IsEmpty(to) {
						break
					}
					out = append(out, Move{Path: []Square{sq, to}})
				}
			}
		} else {
			for d := Direction(0); d < 4; d++ {
				to := geom.StepDiag(d, sq)
				if to == NoSquare || !p.IsEmpty(to) {
					continue
				}
				out = append(out, Move{Path: []Square{sq, to}})
			}
		}
	}

	return out
}

// captureWeight2x returns twice the capture weight of m, so Frisian's
// man=1/king=1.5 weighting can be compared as integers.
func (p *Position) captureWeight2x(m Move) int {
	if p.Variant.Weighting == variant.CountWeighting {
		return 2 * len(m.Captured)
	}
	total := 0
	for _, sq := range m.Captured {
		if p.PieceAt(sq).IsKing() {
			total += 3 // 1.5 * 2
		} else {
			total += 2 // 1.0 * 2
		}
	}
	return total
}

// LegalMoves returns every legal move for the side to move (§4.D): captures
// are mandatory and exclusive whenever any exist, further restricted to the
// chains capturing the most pieces when the variant requires it, with ties
// between equal-length chains broken by capture weight; otherwise every
// quiet move is legal.
func (p *Position) LegalMoves() []Move {
	captures := p.GenerateCaptures()
	if len(captures) == 0 {
		return p.GenerateQuiet()
	}
	if !p.Variant.MustCaptureMax {
		return captures
	}

	best, bestWeight := 0, 0
	for _, m := range captures {
		n, w := len(m.Captured), p.captureWeight2x(m)
		if n > best || (n == best && w > bestWeight) {
			best, bestWeight = n, w
		}
	}
	out := captures[:0:0]
	for _, m := range captures {
		if len(m.Captured) == best && p.captureWeight2x(m) == bestWeight {
			out = append(out, m)
		}
	}
	return out
}

// IsGameOver reports whether the side to move has no legal moves, has no
// pieces left, or a variant draw rule has fired (§4.D.4).
func (p *Position) IsGameOver() bool {
	if p.HasNoPieces(p.Side) {
		return true
	}
	if len(p.LegalMoves()) == 0 {
		return true
	}
	if p.IsThreefoldRepetition() {
		return true
	}
	if p.Variant.KMovesRule > 0 && p.HalfmoveClock >= p.Variant.KMovesRule {
		return true
	}
	return false
}

// Result returns the game result as a PDN result string with White's score
// first: "1-0", "0-1", "1/2-1/2", or "-" if the game is not over.
func (p *Position) Result() string {
	if !p.IsGameOver() {
		return "-"
	}
	if p.HasNoPieces(p.Side) || len(p.LegalMoves()) == 0 {
		if p.IsThreefoldRepetition() {
			return "1/2-1/2"
		}
		// Side to move has lost: no moves or no pieces.
		if p.Side == White {
			return "0-1"
		}
		return "1-0"
	}
	return "1/2-1/2"
}
