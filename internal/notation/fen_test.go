package notation

import (
	"testing"

	"github.com/miskibin/go-draughts/internal/board"
	"github.com/miskibin/go-draughts/internal/variant"
)

func TestWriteFENRoundTrip(t *testing.T) {
	for _, v := range []variant.Variant{variant.International, variant.American, variant.Russian, variant.Frisian} {
		pos := board.New(v)
		fen := WriteFEN(pos)

		parsed, err := ParseFEN(v, fen)
		if err != nil {
			t.Fatalf("%s: ParseFEN(%q): %v", v.Name, fen, err)
		}
		if parsed.Hash != pos.Hash {
			t.Errorf("%s: round-tripped hash %x != original %x", v.Name, parsed.Hash, pos.Hash)
		}
		if WriteFEN(parsed) != fen {
			t.Errorf("%s: round-tripped FEN %q != original %q", v.Name, WriteFEN(parsed), fen)
		}
	}
}

func TestParseFENThreeFields(t *testing.T) {
	pos, err := ParseFEN(variant.International, "W:1,2,3:48,49,50")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.Side != board.White {
		t.Errorf("expected White to move, got %s", pos.Side)
	}
	if pos.HalfmoveClock != 0 {
		t.Errorf("expected halfmove clock to default to 0, got %d", pos.HalfmoveClock)
	}
}

func TestParseFENKings(t *testing.T) {
	pos, err := ParseFEN(variant.International, "0:W:K1,2:K50")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.PieceAt(board.FromNotation(1)) != board.WhiteKing {
		t.Error("expected a white king on square 1")
	}
	if pos.PieceAt(board.FromNotation(2)) != board.WhiteMan {
		t.Error("expected a plain white man on square 2")
	}
	if pos.PieceAt(board.FromNotation(50)) != board.BlackKing {
		t.Error("expected a black king on square 50")
	}
}

func TestParseFENInvalidFieldCount(t *testing.T) {
	if _, err := ParseFEN(variant.International, "W:W1:B2:extra:field"); err == nil {
		t.Error("expected an error for a malformed FEN with too many fields")
	}
}

func TestParseFENInvalidSide(t *testing.T) {
	if _, err := ParseFEN(variant.International, "X:W1:B2"); err == nil {
		t.Error("expected an error for an invalid side to move")
	}
}
