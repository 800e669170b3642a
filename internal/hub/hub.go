// Package hub implements a line-oriented stdio protocol for driving an
// engine from a parent process, grounded on the teacher's UCI handler
// (internal/uci/uci.go): a bufio.Scanner main loop dispatching on the first
// whitespace-separated token of each line.
package hub

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/miskibin/go-draughts/internal/board"
	"github.com/miskibin/go-draughts/internal/engine"
	"github.com/miskibin/go-draughts/internal/notation"
	"github.com/miskibin/go-draughts/internal/variant"
)

// Hub reads commands from an input stream and writes responses to an
// output stream. It owns one Engine and one Position, mirroring the
// teacher's UCI type: neither is shared across concurrent Hub instances.
type Hub struct {
	eng *engine.Engine
	pos *board.Position
	v   variant.Variant

	out io.Writer
}

// New builds a Hub around eng, defaulting to international draughts until
// a "set-game" command selects another variant.
func New(eng *engine.Engine, out io.Writer) *Hub {
	v := variant.International
	return &Hub{
		eng: eng,
		pos: board.New(v),
		v:   v,
		out: out,
	}
}

// Run reads commands from in until EOF or a "quit" command, writing
// responses to the Hub's output stream.
func (h *Hub) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "init":
			h.handleInit()
		case "set-game":
			h.handleSetGame(args)
		case "pos":
			h.handlePos(args)
		case "go":
			h.handleGo(args)
		case "move":
			h.handleMove(args)
		case "quit":
			return
		default:
			fmt.Fprintf(h.out, "error unknown command %q\n", cmd)
		}
	}
}

func (h *Hub) handleInit() {
	fmt.Fprintln(h.out, "id name go-draughts")
	fmt.Fprintln(h.out, "id author go-draughts")
	fmt.Fprintln(h.out, "initok")
}

// handleSetGame selects a variant by name: "set-game international".
func (h *Hub) handleSetGame(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "error set-game requires exactly one variant name")
		return
	}
	v, ok := variant.ByName(args[0])
	if !ok {
		fmt.Fprintf(h.out, "error unknown variant %q\n", args[0])
		return
	}
	h.v = v
	h.pos = board.New(v)
	h.eng.Clear()
}

// handlePos sets up a position, either from the starting array or a FEN
// string: "pos start", "pos fen <fen>", "pos fen <fen> moves <pdn...>".
func (h *Hub) handlePos(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(h.out, "error pos requires an argument")
		return
	}

	switch args[0] {
	case "start":
		h.pos = board.New(h.v)
	case "fen":
		fenEnd := len(args)
		for i, a := range args[1:] {
			if a == "moves" {
				fenEnd = i + 1
				break
			}
		}
		fen := strings.Join(args[1:fenEnd], " ")
		pos, err := notation.ParseFEN(h.v, fen)
		if err != nil {
			fmt.Fprintf(h.out, "error %v\n", err)
			return
		}
		h.pos = pos
	default:
		fmt.Fprintf(h.out, "error unknown pos subcommand %q\n", args[0])
		return
	}

	moveStart := -1
	for i, a := range args {
		if a == "moves" {
			moveStart = i + 1
			break
		}
	}
	if moveStart < 0 {
		return
	}
	for _, tok := range args[moveStart:] {
		if err := h.pos.PushNotation(tok); err != nil {
			fmt.Fprintf(h.out, "error applying move %q: %v\n", tok, err)
			return
		}
	}
}

// handleGo runs a search and prints the result: "bestmove <ply>". Optional
// arguments "depth <n>" and "movetime <ms>" override the engine's default
// configuration for this search only.
func (h *Hub) handleGo(args []string) {
	cfg := engine.DefaultConfig()
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					cfg.DepthLimit = n
				}
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				if ms, err := strconv.Atoi(args[i+1]); err == nil {
					cfg.TimeLimit = time.Duration(ms) * time.Millisecond
				}
				i++
			}
		}
	}

	e := engine.NewEngine(cfg)
	e.OnInfo = func(info engine.Info) {
		h.sendInfo(info)
	}

	move, _ := e.GetBestMove(h.pos, false)
	if move.Equal(board.NoMove) {
		fmt.Fprintln(h.out, "bestmove none")
		return
	}
	fmt.Fprintf(h.out, "bestmove %s\n", move.String())
}

// handleMove applies a single ply to the current position: "move <ply>".
func (h *Hub) handleMove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "error move requires exactly one ply")
		return
	}
	if err := h.pos.PushNotation(args[0]); err != nil {
		fmt.Fprintf(h.out, "error %v\n", err)
		return
	}
	fmt.Fprintln(h.out, "moveok")
}

func (h *Hub) sendInfo(info engine.Info) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %d score %d nodes %d time %d",
		info.Depth, info.Score, info.Nodes, info.Time.Milliseconds())
	if len(info.PV) > 0 {
		parts := make([]string, len(info.PV))
		for i, m := range info.PV {
			parts[i] = m.String()
		}
		fmt.Fprintf(&sb, " pv %s", strings.Join(parts, " "))
	}
	fmt.Fprintln(h.out, sb.String())
}
