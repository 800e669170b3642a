package hub

import (
	"bytes"
	"strings"
	"testing"

	"github.com/miskibin/go-draughts/internal/engine"
)

func runHub(t *testing.T, commands string) string {
	t.Helper()
	eng := engine.NewEngine(engine.Config{DepthLimit: 3, TimeLimit: 0, TableSizeMB: 1})
	var out bytes.Buffer
	h := New(eng, &out)
	h.Run(strings.NewReader(commands))
	return out.String()
}

func TestInit(t *testing.T) {
	out := runHub(t, "init\nquit\n")
	if !strings.Contains(out, "initok") {
		t.Errorf("expected initok in output, got %q", out)
	}
}

func TestSetGameUnknownVariant(t *testing.T) {
	out := runHub(t, "set-game nonexistent\nquit\n")
	if !strings.Contains(out, "error") {
		t.Errorf("expected an error for an unknown variant, got %q", out)
	}
}

func TestPosStartAndMove(t *testing.T) {
	out := runHub(t, "set-game american\npos start\nmove 22-18\nquit\n")
	if !strings.Contains(out, "moveok") {
		t.Errorf("expected moveok after applying a legal move, got %q", out)
	}
}

func TestPosMoveIllegal(t *testing.T) {
	out := runHub(t, "set-game american\npos start\nmove 99-98\nquit\n")
	if !strings.Contains(out, "error") {
		t.Errorf("expected an error for an illegal move, got %q", out)
	}
}

func TestGoReturnsBestMove(t *testing.T) {
	out := runHub(t, "set-game american\npos start\ngo depth 2\nquit\n")
	if !strings.Contains(out, "bestmove") {
		t.Errorf("expected a bestmove line, got %q", out)
	}
}
