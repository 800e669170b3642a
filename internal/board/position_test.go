package board

import (
	"testing"

	"github.com/miskibin/go-draughts/internal/variant"
)

func TestStartingPositionMoveCounts(t *testing.T) {
	cases := []struct {
		name string
		v    variant.Variant
		want int
	}{
		{"international", variant.International, 9},
		{"american", variant.American, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos := New(c.v)
			moves := pos.LegalMoves()
			if len(moves) != c.want {
				t.Errorf("got %d legal moves, want %d", len(moves), c.want)
			}
		})
	}
}

func TestHashMatchesRecompute(t *testing.T) {
	for _, v := range []variant.Variant{variant.International, variant.American, variant.Russian, variant.Frisian} {
		pos := New(v)
		if pos.Hash != pos.ComputeHash() {
			t.Errorf("%s: incremental hash %x != recomputed %x", v.Name, pos.Hash, pos.ComputeHash())
		}
	}
}

func TestPushPopRestoresPosition(t *testing.T) {
	for _, v := range []variant.Variant{variant.International, variant.American, variant.Russian, variant.Frisian} {
		pos := New(v)
		for ply := 0; ply < 40; ply++ {
			moves := pos.LegalMoves()
			if len(moves) == 0 {
				break
			}
			before := pos.Copy()
			m := moves[ply%len(moves)]

			if err := pos.Push(m); err != nil {
				t.Fatalf("%s: push failed: %v", v.Name, err)
			}
			if pos.Hash != pos.ComputeHash() {
				t.Fatalf("%s: hash drifted after push: %x != %x", v.Name, pos.Hash, pos.ComputeHash())
			}
			if _, err := pos.Pop(); err != nil {
				t.Fatalf("%s: pop failed: %v", v.Name, err)
			}

			if pos.WM != before.WM || pos.WK != before.WK || pos.BM != before.BM || pos.BK != before.BK {
				t.Fatalf("%s: bitboards not restored after push/pop", v.Name)
			}
			if pos.Hash != before.Hash {
				t.Fatalf("%s: hash not restored after push/pop: %x != %x", v.Name, pos.Hash, before.Hash)
			}
			if pos.Side != before.Side {
				t.Fatalf("%s: side to move not restored", v.Name)
			}
			if pos.HalfmoveClock != before.HalfmoveClock {
				t.Fatalf("%s: halfmove clock not restored", v.Name)
			}

			if err := pos.Push(m); err != nil {
				t.Fatalf("%s: re-push failed: %v", v.Name, err)
			}
		}
	}
}

func TestPopOnEmptyStackReturnsError(t *testing.T) {
	pos := New(variant.American)
	if _, err := pos.Pop(); err == nil {
		t.Fatal("expected an error popping a position with no undo history")
	}
}

func TestLegalMovesNoDuplicates(t *testing.T) {
	for _, v := range []variant.Variant{variant.International, variant.American, variant.Russian, variant.Frisian} {
		pos := New(v)
		moves := pos.LegalMoves()
		for i := range moves {
			for j := i + 1; j < len(moves); j++ {
				if moves[i].Equal(moves[j]) {
					t.Errorf("%s: duplicate move %s at indices %d,%d", v.Name, moves[i], i, j)
				}
			}
		}
	}
}

func TestMaximumCaptureEnforced(t *testing.T) {
	// A position with two capture chains available: the man on 31 has a
	// double jump (31x22x13) and the man on 35 a single jump (35x24). Only
	// the double jump (cardinality 2) should be legal once MustCaptureMax
	// applies.
	v := variant.International
	pos := Empty(v)
	pos.PlacePiece(WhiteMan, FromNotation(31))
	pos.PlacePiece(BlackMan, FromNotation(27))
	pos.PlacePiece(BlackMan, FromNotation(18))
	pos.PlacePiece(WhiteMan, FromNotation(35))
	pos.PlacePiece(BlackMan, FromNotation(30))
	pos.Side = White
	pos.Hash = pos.ComputeHash()

	moves := pos.LegalMoves()
	for _, m := range moves {
		if len(m.Captured) < 2 {
			t.Errorf("expected only maximum-length captures, got %s with %d captures", m, len(m.Captured))
		}
	}
	if len(moves) == 0 {
		t.Fatal("expected at least one legal capture")
	}
}

func TestFlyingKingLongCapture(t *testing.T) {
	v := variant.International
	pos := Empty(v)
	pos.PlacePiece(WhiteKing, FromNotation(50))
	pos.PlacePiece(BlackMan, FromNotation(28))
	pos.Side = White
	pos.Hash = pos.ComputeHash()

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		t.Fatal("expected the flying king to capture")
	}
	for _, m := range moves {
		if !m.IsCapture() {
			t.Errorf("expected only captures to be legal, got quiet move %s", m)
		}
	}
}

func TestAmericanPromotionStopsChain(t *testing.T) {
	v := variant.American
	pos := Empty(v)
	pos.PlacePiece(WhiteMan, FromNotation(10))
	pos.PlacePiece(BlackMan, FromNotation(6))
	pos.PlacePiece(BlackMan, FromNotation(2))
	pos.Side = White
	pos.Hash = pos.ComputeHash()

	moves := pos.LegalMoves()
	for _, m := range moves {
		if m.Promoted && len(m.Captured) > 1 {
			t.Errorf("American rule should stop the chain on promotion, got %s with %d captures", m, len(m.Captured))
		}
	}
}

func TestThreefoldRepetition(t *testing.T) {
	v := variant.American
	pos := Empty(v)
	pos.PlacePiece(WhiteKing, FromNotation(1))
	pos.PlacePiece(BlackKing, FromNotation(32))
	pos.Side = White
	pos.Hash = pos.ComputeHash()

	if pos.IsThreefoldRepetition() {
		t.Fatal("fresh position should not be a repetition")
	}

	// The repetition window holds the hash of the position each reversible
	// move since the last irreversible one was played from; two prior
	// occurrences plus the current position make three.
	pos.repWindow = []uint64{pos.Hash, pos.Hash}
	if !pos.IsThreefoldRepetition() {
		t.Error("expected threefold repetition with two prior occurrences in the window")
	}
}

func TestIrreversibleMoveClearsRepetitionWindow(t *testing.T) {
	v := variant.American
	pos := New(v)
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		t.Fatal("expected legal moves from the starting position")
	}
	if err := pos.Push(moves[0]); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if pos.HalfmoveClock != 0 {
		t.Errorf("a man move must reset the halfmove clock, got %d", pos.HalfmoveClock)
	}
	if len(pos.repWindow) != 0 {
		t.Errorf("a man move must clear the repetition window, got %d entries", len(pos.repWindow))
	}
}
