package board

import (
	"fmt"
	"strings"

	"github.com/miskibin/go-draughts/internal/variant"
)

// Position is a complete draughts position: the four piece bitboards, side
// to move, draw-rule counters, repetition history and incremental Zobrist
// hash (§3.3).
type Position struct {
	Variant variant.Variant

	WM, WK, BM, BK Bitboard

	Side          Color
	HalfmoveClock int

	// repWindow holds the hash of the position each reversible move was
	// played from, since the last capture or man move; the current
	// position is not in it. It is reset (truncated to nil) on any
	// irreversible move.
	repWindow []uint64

	Hash uint64

	geom *Geometry
	zob  *zobristTable

	stack []undoFrame
}

// undoFrame carries everything push needs to restore a position bit for
// bit, mirroring the teacher's UndoInfo in board/move.go.
type undoFrame struct {
	move          Move
	capturedPiece []Piece // piece codes removed, parallel to move.Captured
	preHash       uint64
	preHalfmove   int
	preRepWindow  []uint64
	promotedPiece bool
}

// New creates the starting position for v.
func New(v variant.Variant) *Position {
	p := &Position{
		Variant: v,
		Side:    White,
		geom:    GeometryFor(v),
		zob:     zobristFor(v),
	}
	p.setupStartingPosition()
	p.Hash = p.ComputeHash()
	return p
}

// Empty creates an empty board of variant v with White to move. Used by the
// FEN reader, which places pieces itself.
func Empty(v variant.Variant) *Position {
	p := &Position{
		Variant: v,
		Side:    White,
		geom:    GeometryFor(v),
		zob:     zobristFor(v),
	}
	return p
}

func (p *Position) setupStartingPosition() {
	s := p.Variant.S()
	half := p.Variant.Half()
	n := p.Variant.N

	// Men fill every dark square on the N/2-1 ranks at each side's own end
	// of the board (three on 8x8, four on 10x10), leaving the middle two
	// ranks empty, the classic draughts starting array for any even N.
	rowsPerSide := n/2 - 1
	for i := 0; i < s; i++ {
		row := i / half
		if row < rowsPerSide {
			p.BM = p.BM.Set(Square(i))
		} else if row >= n-rowsPerSide {
			p.WM = p.WM.Set(Square(i))
		}
	}
}

// Geometry returns the variant's precomputed geometry tables.
func (p *Position) Geometry() *Geometry { return p.geom }

// ColorToMove returns the side to move.
func (p *Position) ColorToMove() Color { return p.Side }

// bitboardFor returns the bitboard a piece code lives in.
func (p *Position) bitboardFor(pc Piece) *Bitboard {
	switch pc {
	case WhiteMan:
		return &p.WM
	case WhiteKing:
		return &p.WK
	case BlackMan:
		return &p.BM
	case BlackKing:
		return &p.BK
	default:
		return nil
	}
}

// PieceAt returns the piece occupying sq, or EmptyPiece.
func (p *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	switch {
	case p.WM&bb != 0:
		return WhiteMan
	case p.WK&bb != 0:
		return WhiteKing
	case p.BM&bb != 0:
		return BlackMan
	case p.BK&bb != 0:
		return BlackKing
	default:
		return EmptyPiece
	}
}

// Men returns the man bitboard for c.
func (p *Position) Men(c Color) Bitboard {
	if c == White {
		return p.WM
	}
	return p.BM
}

// Kings returns the king bitboard for c.
func (p *Position) Kings(c Color) Bitboard {
	if c == White {
		return p.WK
	}
	return p.BK
}

// All returns every piece belonging to c.
func (p *Position) All(c Color) Bitboard {
	return p.Men(c) | p.Kings(c)
}

// Occupied returns every occupied square, of either color.
func (p *Position) Occupied() Bitboard {
	return p.WM | p.WK | p.BM | p.BK
}

// EmptySquares returns every unoccupied playable square.
func (p *Position) EmptySquares() Bitboard {
	full := Bitboard(1)<<uint(p.Variant.S()) - 1
	return full &^ p.Occupied()
}

// IsEmpty reports whether sq is unoccupied.
func (p *Position) IsEmpty(sq Square) bool {
	return !p.Occupied().IsSet(sq)
}

// PlacePiece sets pc on sq, used by the FEN reader to populate an empty
// board. It does not touch the hash; callers must call ComputeHash
// afterward.
func (p *Position) PlacePiece(pc Piece, sq Square) {
	p.setPiece(pc, sq)
}

func (p *Position) setPiece(pc Piece, sq Square) {
	if pc == EmptyPiece {
		return
	}
	bb := p.bitboardFor(pc)
	*bb = bb.Set(sq)
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.PieceAt(sq)
	if pc == EmptyPiece {
		return EmptyPiece
	}
	bb := p.bitboardFor(pc)
	*bb = bb.Clear(sq)
	return pc
}

// ComputeHash recomputes the Zobrist hash from scratch; used to validate the
// incremental hash maintained by push/pop.
func (p *Position) ComputeHash() uint64 {
	var h uint64
	for _, pc := range [4]Piece{WhiteMan, WhiteKing, BlackMan, BlackKing} {
		bb := *p.bitboardFor(pc)
		idx := pieceIndex(pc)
		for bb != 0 {
			sq := bb.PopLSB()
			h ^= p.zob.piece[idx][sq]
		}
	}
	if p.Side == Black {
		h ^= p.zob.sideToMove
	}
	return h
}

// HashKey returns the incrementally maintained Zobrist hash.
func (p *Position) HashKey() uint64 { return p.Hash }

// History returns the moves applied since this Position was created or last
// had its stack cleared, oldest first. Used by the PDN writer.
func (p *Position) History() []Move {
	out := make([]Move, len(p.stack))
	for i, f := range p.stack {
		out[i] = f.move
	}
	return out
}

// Copy returns a shallow copy: bitboards, counters and hash, with an empty
// move stack (§6, Board.copy).
func (p *Position) Copy() *Position {
	cp := *p
	cp.repWindow = append([]uint64(nil), p.repWindow...)
	cp.stack = nil
	return &cp
}

// IsThreefoldRepetition reports whether the current hash has occurred at
// least three times in the repetition window (including the current
// position itself).
func (p *Position) IsThreefoldRepetition() bool {
	count := 1 // the current position
	for _, e := range p.repWindow {
		if e == p.Hash {
			count++
		}
	}
	return count >= 3
}

// HasNoPieces reports whether c has no pieces left on the board.
func (p *Position) HasNoPieces(c Color) bool {
	return p.All(c) == EmptyBB
}

// String renders the position as an ASCII diagram for debugging, mirroring
// the teacher's Position.String in board/position.go.
func (p *Position) String() string {
	var sb strings.Builder
	n := p.Variant.N
	half := p.Variant.Half()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			sq := squareAt(row, col, n, half)
			if sq == NoSquare {
				sb.WriteString("  ")
				continue
			}
			sb.WriteString(p.PieceAt(sq).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "side to move: %s  halfmove: %d  hash: %016x\n", p.Side, p.HalfmoveClock, p.Hash)
	return sb.String()
}
