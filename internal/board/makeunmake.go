package board

import "fmt"

// Push applies move to the position, updating the piece bitboards, the
// incremental Zobrist hash, the draw-rule counters and the repetition
// window, and records an undo frame on the stack (§4.E).
func (p *Position) Push(move Move) error {
	mover := p.PieceAt(move.From())
	if mover == EmptyPiece {
		return fmt.Errorf("board: no piece on %s", move.From())
	}
	if mover.Color() != p.Side {
		return fmt.Errorf("board: piece on %s does not belong to side to move", move.From())
	}

	frame := undoFrame{
		move:         move,
		preHash:      p.Hash,
		preHalfmove:  p.HalfmoveClock,
		preRepWindow: p.repWindow,
	}

	idx := pieceIndex(mover)
	p.Hash ^= p.zob.piece[idx][move.From()]
	p.removePiece(move.From())

	for _, sq := range move.Captured {
		cap := p.removePiece(sq)
		frame.capturedPiece = append(frame.capturedPiece, cap)
		p.Hash ^= p.zob.piece[pieceIndex(cap)][sq]
	}

	finalPiece := mover
	if move.Promoted {
		frame.promotedPiece = true
		if mover == WhiteMan {
			finalPiece = WhiteKing
		} else if mover == BlackMan {
			finalPiece = BlackKing
		}
	}
	p.setPiece(finalPiece, move.To())
	p.Hash ^= p.zob.piece[pieceIndex(finalPiece)][move.To()]

	irreversible := move.IsCapture() || mover.IsMan()
	if irreversible {
		p.HalfmoveClock = 0
		p.repWindow = nil
	} else {
		p.HalfmoveClock++
		p.repWindow = append(append([]uint64(nil), p.repWindow...), frame.preHash)
	}

	p.Side = p.Side.Other()
	p.Hash ^= p.zob.sideToMove

	p.stack = append(p.stack, frame)
	return nil
}

// Pop reverts the most recently pushed move, restoring the exact prior
// bitboards, hash, counters and repetition window (§4.E).
func (p *Position) Pop() (Move, error) {
	if len(p.stack) == 0 {
		return NoMove, fmt.Errorf("board: pop on empty stack")
	}
	frame := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	move := frame.move

	p.Side = p.Side.Other()

	finalPiece := p.removePiece(move.To())
	originalPiece := finalPiece
	if frame.promotedPiece {
		if finalPiece == WhiteKing {
			originalPiece = WhiteMan
		} else if finalPiece == BlackKing {
			originalPiece = BlackMan
		}
	}
	p.setPiece(originalPiece, move.From())

	for i, sq := range move.Captured {
		p.setPiece(frame.capturedPiece[i], sq)
	}

	p.Hash = frame.preHash
	p.HalfmoveClock = frame.preHalfmove
	p.repWindow = frame.preRepWindow

	return move, nil
}

// PushNotation parses s as a visited-sequence move (§4.F dialect) and
// applies whichever generated legal move matches it.
func (p *Position) PushNotation(s string) error {
	moves := p.LegalMoves()
	for _, m := range moves {
		if m.String() == s {
			return p.Push(m)
		}
	}
	return fmt.Errorf("board: %q does not match a legal move", s)
}
