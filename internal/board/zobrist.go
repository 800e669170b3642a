package board

import (
	"sync"

	"github.com/miskibin/go-draughts/internal/variant"
)

// zobristTable holds the random keys used to incrementally hash a position,
// generated once per variant with a fixed-seed PRNG so hashes are
// reproducible across runs (mirrors the teacher's board/zobrist.go).
type zobristTable struct {
	piece      [4][]uint64 // indexed by pieceIndex(p), sized S
	sideToMove uint64
}

func pieceIndex(p Piece) int {
	switch p {
	case WhiteMan:
		return 0
	case WhiteKing:
		return 1
	case BlackMan:
		return 2
	case BlackKing:
		return 3
	default:
		return -1
	}
}

// xorshift64* is a small, fast, reproducible PRNG; the seed is fixed so
// Zobrist keys never change between processes.
type prng struct{ state uint64 }

func newPRNG(seed uint64) *prng { return &prng{state: seed} }

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

var zobristCache sync.Map // variant.Variant -> *zobristTable

func zobristFor(v variant.Variant) *zobristTable {
	if z, ok := zobristCache.Load(v); ok {
		return z.(*zobristTable)
	}
	z := buildZobrist(v)
	actual, _ := zobristCache.LoadOrStore(v, z)
	return actual.(*zobristTable)
}

func buildZobrist(v variant.Variant) *zobristTable {
	rng := newPRNG(0x9E3779B97F4A7C15 ^ uint64(v.N) ^ uint64(len(v.Name)))
	z := &zobristTable{}
	for k := 0; k < 4; k++ {
		z.piece[k] = make([]uint64, v.S())
		for sq := range z.piece[k] {
			z.piece[k][sq] = rng.next()
		}
	}
	z.sideToMove = rng.next()
	return z
}
