// Package render draws a draughts position as an SVG diagram and, on
// request, rasterizes that SVG to an RGBA image, grounded on the teacher's
// oksvg/rasterx sprite pipeline (internal/ui/sprites.go).
package render

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/miskibin/go-draughts/internal/board"
)

const squarePx = 48

var (
	lightSquare = "#e8c99b"
	darkSquare  = "#7a4a2b"
	whitePiece  = "#f5f5f0"
	blackPiece  = "#202020"
	highlight   = "#5fbf5f"
)

// BuildSVG renders pos as a standalone SVG document. Squares in
// highlighted (the visited and captured squares of the last move, if any)
// are outlined so a consuming web frontend can show the move that was just
// played.
func BuildSVG(pos *board.Position, highlighted []board.Square) string {
	n := pos.Variant.N
	half := pos.Variant.Half()
	size := n * squarePx

	set := make(map[board.Square]bool, len(highlighted))
	for _, sq := range highlighted {
		set[sq] = true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, size, size, size, size)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x, y := col*squarePx, row*squarePx
			color := lightSquare
			if (row+col)%2 == 1 {
				color = darkSquare
			}
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`, x, y, squarePx, squarePx, color)

			sq := board.SquareAt(row, col, n, half)
			if sq == board.NoSquare {
				continue
			}
			if set[sq] {
				fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="3"/>`,
					x, y, squarePx, squarePx, highlight)
			}
			writePiece(&sb, pos.PieceAt(sq), x, y)
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

func writePiece(sb *strings.Builder, p board.Piece, x, y int) {
	if p == board.EmptyPiece {
		return
	}
	cx, cy := x+squarePx/2, y+squarePx/2
	r := squarePx/2 - 4
	fill := whitePiece
	if p.Color() == board.Black {
		fill = blackPiece
	}
	fmt.Fprintf(sb, `<circle cx="%d" cy="%d" r="%d" fill="%s" stroke="#000" stroke-width="1.5"/>`, cx, cy, r, fill)
	if p.IsKing() {
		crownFill := blackPiece
		if p.Color() == board.Black {
			crownFill = whitePiece
		}
		fmt.Fprintf(sb, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="%s" stroke-width="2"/>`, cx, cy, r/2, crownFill)
	}
}

// RenderPNG rasterizes an SVG document (as produced by BuildSVG) into an RGBA
// image sizePx square, using the same oksvg/rasterx pipeline the teacher
// uses to rasterize piece sprites.
func RenderPNG(svg string, sizePx int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
	if err != nil {
		return nil, fmt.Errorf("render: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(sizePx), float64(sizePx))

	rgba := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	scanner := rasterx.NewScannerGV(sizePx, sizePx, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(sizePx, sizePx, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}
