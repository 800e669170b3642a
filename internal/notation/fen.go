// Package notation implements the textual FEN and PDN boundary between
// draughts positions/move lists and their string form (§4.F). It is the
// only package in this module that deals in text.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/miskibin/go-draughts/internal/board"
	"github.com/miskibin/go-draughts/internal/variant"
)

// ParseFEN parses a position string of the shape
// "[H]:[Side]:[WhiteList]:[BlackList]" for variant v (§4.F).
func ParseFEN(v variant.Variant, fen string) (*board.Position, error) {
	parts := strings.Split(strings.TrimSpace(fen), ":")

	var halfmove int
	var sideField, whiteField, blackField string

	switch len(parts) {
	case 4:
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("notation: invalid FEN halfmove clock %q: %w", parts[0], err)
		}
		halfmove = h
		sideField, whiteField, blackField = parts[1], parts[2], parts[3]
	case 3:
		sideField, whiteField, blackField = parts[0], parts[1], parts[2]
	default:
		return nil, fmt.Errorf("notation: invalid FEN %q: need 3 or 4 colon-separated fields, got %d", fen, len(parts))
	}

	pos := board.Empty(v)

	switch strings.ToUpper(sideField) {
	case "W":
		pos.Side = board.White
	case "B":
		pos.Side = board.Black
	default:
		return nil, fmt.Errorf("notation: invalid FEN side to move %q", sideField)
	}

	if err := placeList(pos, whiteField, board.White); err != nil {
		return nil, err
	}
	if err := placeList(pos, blackField, board.Black); err != nil {
		return nil, err
	}

	pos.HalfmoveClock = halfmove
	pos.Hash = pos.ComputeHash()
	return pos, nil
}

// placeList parses one comma-separated "K?<number>" list and places pieces
// of color c onto pos.
func placeList(pos *board.Position, list string, c board.Color) error {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil
	}
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		isKing := false
		if strings.HasPrefix(strings.ToUpper(entry), "K") {
			isKing = true
			entry = entry[1:]
		}
		n, err := strconv.Atoi(entry)
		if err != nil {
			return fmt.Errorf("notation: invalid FEN square %q: %w", entry, err)
		}
		sq := board.FromNotation(n)
		piece := manOf(c)
		if isKing {
			piece = kingOf(c)
		}
		pos.PlacePiece(piece, sq)
	}
	return nil
}

func manOf(c board.Color) board.Piece {
	if c == board.White {
		return board.WhiteMan
	}
	return board.BlackMan
}

func kingOf(c board.Color) board.Piece {
	if c == board.White {
		return board.WhiteKing
	}
	return board.BlackKing
}

// WriteFEN renders pos in the "[H]:[Side]:[WhiteList]:[BlackList]" shape,
// always with all four fields (the bit-exact writer dialect from §4.F).
func WriteFEN(pos *board.Position) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:", pos.HalfmoveClock)
	if pos.Side == board.White {
		sb.WriteString("W:")
	} else {
		sb.WriteString("B:")
	}
	sb.WriteString(listFor(pos, board.White))
	sb.WriteByte(':')
	sb.WriteString(listFor(pos, board.Black))
	return sb.String()
}

func listFor(pos *board.Position, c board.Color) string {
	s := pos.Variant.S()
	var entries []string
	for i := 0; i < s; i++ {
		sq := board.Square(i)
		pc := pos.PieceAt(sq)
		if pc == board.EmptyPiece || pc.Color() != c {
			continue
		}
		if pc.IsKing() {
			entries = append(entries, "K"+strconv.Itoa(sq.Notation()))
		} else {
			entries = append(entries, strconv.Itoa(sq.Notation()))
		}
	}
	return strings.Join(entries, ",")
}
