package notation

import (
	"strings"
	"testing"

	"github.com/miskibin/go-draughts/internal/board"
	"github.com/miskibin/go-draughts/internal/variant"
)

func TestWritePDNRoundTrip(t *testing.T) {
	v := variant.American
	pos := board.New(v)

	for ply := 0; ply < 6; ply++ {
		moves := pos.LegalMoves()
		if len(moves) == 0 {
			break
		}
		if err := pos.Push(moves[0]); err != nil {
			t.Fatalf("push: %v", err)
		}
	}

	pdn := WritePDN(board.White, pos.History())
	replayed, err := ParsePDN(v, pdn)
	if err != nil {
		t.Fatalf("ParsePDN(%q): %v", pdn, err)
	}
	if replayed.Hash != pos.Hash {
		t.Errorf("replayed hash %x != original %x", replayed.Hash, pos.Hash)
	}
}

func TestWritePDNMoveNumbering(t *testing.T) {
	pdn := WritePDN(board.White, []board.Move{
		{Path: []board.Square{board.FromNotation(22), board.FromNotation(18)}},
		{Path: []board.Square{board.FromNotation(23), board.FromNotation(19)}},
		{Path: []board.Square{board.FromNotation(18), board.FromNotation(14)}},
	})
	if !strings.HasPrefix(pdn, "1. 22-18 23-19") {
		t.Errorf("unexpected move-number prefix in %q", pdn)
	}
	if !strings.Contains(pdn, "2. 18-14") {
		t.Errorf("expected move 2 to start a new number in %q", pdn)
	}
}

func TestParsePDNAlternatingCaptureDialect(t *testing.T) {
	// A single capture jumping 31 over 27 to land on 22 can be denoted
	// either "31x22" (visited-sequence) or "31x27x22" (alternating
	// captured/landing); both must resolve to the same legal move.
	v := variant.International
	pos := board.Empty(v)
	pos.PlacePiece(board.WhiteMan, board.FromNotation(31))
	pos.PlacePiece(board.BlackMan, board.FromNotation(27))
	pos.Side = board.White
	pos.Hash = pos.ComputeHash()

	visited, err := matchPly(pos, "31x22")
	if err != nil {
		t.Fatalf("visited-sequence dialect: %v", err)
	}
	alternating, err := matchPly(pos, "31x27x22")
	if err != nil {
		t.Fatalf("alternating dialect: %v", err)
	}
	if !visited.Equal(alternating) {
		t.Error("both dialects should resolve to the same move")
	}
}

func TestParsePDNNoMatchingMove(t *testing.T) {
	v := variant.American
	pos := board.New(v)
	if _, err := matchPly(pos, "1-99"); err == nil {
		t.Error("expected an error for a ply that matches no legal move")
	}
}

func TestParsePDNAmbiguousMove(t *testing.T) {
	// White's man on 31 can capture either black man first (27 then 19, or
	// 26 then 18) and both two-jump chains land on the same square, 15. The
	// from-to shorthand "31x15" elides the route, so it cannot disambiguate
	// between the two chains and must fail as ambiguous.
	v := variant.American
	pos := board.Empty(v)
	pos.PlacePiece(board.WhiteMan, board.FromNotation(31))
	pos.PlacePiece(board.BlackMan, board.FromNotation(27))
	pos.PlacePiece(board.BlackMan, board.FromNotation(19))
	pos.PlacePiece(board.BlackMan, board.FromNotation(26))
	pos.PlacePiece(board.BlackMan, board.FromNotation(18))
	pos.Side = board.White
	pos.Hash = pos.ComputeHash()

	moves := pos.LegalMoves()
	if len(moves) != 2 {
		t.Fatalf("expected exactly 2 legal two-jump chains, got %d: %v", len(moves), moves)
	}
	for _, m := range moves {
		if m.To().Notation() != 15 {
			t.Fatalf("expected both chains to land on 15, got %s", m)
		}
	}

	if _, err := matchPly(pos, "31x15"); err == nil {
		t.Error("expected an ambiguous-move error for a shorthand token matching two distinct capture chains")
	}

	// The fully-specified visited-sequence dialect still disambiguates.
	if _, err := matchPly(pos, "31x24x15"); err != nil {
		t.Errorf("fully-specified dialect should resolve unambiguously: %v", err)
	}
}

func TestIsMoveNumberToken(t *testing.T) {
	cases := map[string]bool{
		"1.":   true,
		"12.":  true,
		"...":  false,
		"31x22": false,
		"a.":   false,
	}
	for tok, want := range cases {
		if got := isMoveNumberToken(tok); got != want {
			t.Errorf("isMoveNumberToken(%q) = %v, want %v", tok, got, want)
		}
	}
}
