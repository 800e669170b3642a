package render

import (
	"strings"
	"testing"

	"github.com/miskibin/go-draughts/internal/board"
	"github.com/miskibin/go-draughts/internal/variant"
)

func TestBuildSVGContainsAllPieces(t *testing.T) {
	pos := board.New(variant.International)
	svg := BuildSVG(pos, nil)

	if !strings.HasPrefix(svg, "<svg") {
		t.Fatal("expected an SVG document")
	}
	count := strings.Count(svg, "<circle")
	want := pos.Occupied().PopCount()
	if count != want {
		t.Errorf("expected %d piece circles, got %d", want, count)
	}
}

func TestBuildSVGHighlightsSquares(t *testing.T) {
	pos := board.New(variant.American)
	highlighted := []board.Square{board.FromNotation(22), board.FromNotation(18)}
	svg := BuildSVG(pos, highlighted)

	if strings.Count(svg, `stroke="`+highlight+`"`) != len(highlighted) {
		t.Errorf("expected one highlight rect per highlighted square")
	}
}

func TestRenderPNGProducesSizedImage(t *testing.T) {
	pos := board.New(variant.American)
	svg := BuildSVG(pos, nil)

	img, err := RenderPNG(svg, 256)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 256 || b.Dy() != 256 {
		t.Errorf("expected a 256x256 image, got %dx%d", b.Dx(), b.Dy())
	}
}
