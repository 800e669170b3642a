package engine

import "github.com/miskibin/go-draughts/internal/board"

// MaxPly bounds the killer table and the recursion depth the search will
// ever reach within one get_best_move call.
const MaxPly = 128

// orderer carries the killer and history move-ordering heuristics across
// one search (§4.G.5). Both are cleared alongside the transposition table.
type orderer struct {
	killers [MaxPly][2]board.Move
	history [][]int // [from][to], sized to the variant's S at construction
}

func newOrderer(s int) *orderer {
	o := &orderer{}
	o.history = make([][]int, s)
	for i := range o.history {
		o.history[i] = make([]int, s)
	}
	return o
}

func (o *orderer) clear() {
	for i := range o.killers {
		o.killers[i][0] = board.NoMove
		o.killers[i][1] = board.NoMove
	}
	for i := range o.history {
		for j := range o.history[i] {
			o.history[i][j] = 0
		}
	}
}

func (o *orderer) recordKiller(ply int, m board.Move) {
	if o.killers[ply][0].Equal(m) {
		return
	}
	o.killers[ply][1] = o.killers[ply][0]
	o.killers[ply][0] = m
}

func (o *orderer) isKiller(ply int, m board.Move) bool {
	return o.killers[ply][0].Equal(m) || o.killers[ply][1].Equal(m)
}

func (o *orderer) recordHistory(m board.Move, depth int) {
	o.history[m.From()][m.To()] += depth * depth
}

func (o *orderer) historyScore(m board.Move) int {
	return o.history[m.From()][m.To()]
}

// orderMoves sorts moves in place for the negamax loop (§4.G.2): the TT/PV
// move first, then captures by captured-set cardinality descending, then
// killers, then quiet moves by history score descending. Legal-move
// generation already put every capture ahead of every quiet move when
// captures are mandatory, so within each of those two groups a stable
// insertion sort on the combined key is enough — move lists are short.
func (o *orderer) orderMoves(moves []board.Move, ply int, pv board.Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = o.scoreMove(m, ply, pv)
	}
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && scores[j] > scores[j-1]; j-- {
			scores[j], scores[j-1] = scores[j-1], scores[j]
			moves[j], moves[j-1] = moves[j-1], moves[j]
		}
	}
}

const (
	pvScore     = 1 << 30
	captureBase = 1 << 20
	killerScore = 1 << 10
)

func (o *orderer) scoreMove(m board.Move, ply int, pv board.Move) int {
	if len(pv.Path) > 0 && m.Equal(pv) {
		return pvScore
	}
	if m.IsCapture() {
		return captureBase + len(m.Captured)
	}
	if o.isKiller(ply, m) {
		return killerScore
	}
	return o.historyScore(m)
}
