// Package engine implements the negamax search engine: iterative deepening,
// alpha-beta with PVS and late-move reductions, quiescence search, a
// transposition table and killer/history move ordering (§4.G).
package engine

import (
	"time"

	"github.com/miskibin/go-draughts/internal/board"
)

// Config configures one Engine instance.
type Config struct {
	// DepthLimit bounds iterative deepening. Zero or less means MaxPly-1.
	DepthLimit int
	// TimeLimit bounds wall-clock search time per get_best_move call. Zero
	// means no deadline; search runs to DepthLimit.
	TimeLimit time.Duration
	// TableSizeMB sizes the transposition table.
	TableSizeMB int
}

// DefaultConfig returns sensible defaults for interactive play.
func DefaultConfig() Config {
	return Config{DepthLimit: 12, TimeLimit: 2 * time.Second, TableSizeMB: 32}
}

// Info reports progress after each completed iterative-deepening depth.
type Info struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []board.Move
}

// Engine owns a transposition table and runs searches against positions
// handed to it by the caller. An Engine is not safe for concurrent use; the
// caller runs one Engine per goroutine for parallel search (§5).
type Engine struct {
	cfg Config
	tt  *Table

	// OnInfo, if set, is called after every completed depth during
	// GetBestMove.
	OnInfo func(Info)
}

// NewEngine builds an Engine with cfg.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg, tt: NewTable(cfg.TableSizeMB)}
}

// GetBestMove performs iterative deepening from depth 1 to the configured
// depth limit, bounded by the configured time limit (§4.G.1). It returns the
// best move found at the deepest completed depth and its score; withEvaluation
// is kept for callers that want to name their intent at the call site, but
// the score is always the real value regardless of its setting.
func (e *Engine) GetBestMove(pos *board.Position, withEvaluation bool) (board.Move, int) {
	e.tt.Clear()
	e.tt.NewSearch()

	searcher := NewSearcher(pos, e.tt)

	maxDepth := e.cfg.DepthLimit
	if maxDepth <= 0 {
		maxDepth = MaxPly - 1
	}

	var deadline time.Time
	start := time.Now()
	if e.cfg.TimeLimit > 0 {
		deadline = start.Add(e.cfg.TimeLimit)
	}

	var bestMove board.Move
	var bestScore int

	for depth := 1; depth <= maxDepth; depth++ {
		move, score, ok := searcher.Run(depth, deadline)
		if !ok {
			break
		}
		bestMove, bestScore = move, score

		if e.OnInfo != nil {
			e.OnInfo(Info{
				Depth: depth,
				Score: score,
				Nodes: searcher.Nodes(),
				Time:  time.Since(start),
				PV:    searcher.PV(),
			})
		}

		if score > MateScore-MaxPly || score < -MateScore+MaxPly {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
	}

	_ = withEvaluation // score is always returned; callers that don't want it ignore it
	return bestMove, bestScore
}

// Clear resets the transposition table, discarding all cached scores.
func (e *Engine) Clear() { e.tt.Clear() }
