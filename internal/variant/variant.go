// Package variant declares the static per-variant constants that parameterize
// board geometry, move generation and the draw rules. Nothing outside this
// package branches on a variant's name: the generator and evaluator only ever
// consult the fields of a Variant value.
package variant

// Weighting selects how the maximum-capture rule breaks ties between chains
// of equal length.
type Weighting int

const (
	// CountWeighting scores every captured piece as 1, regardless of rank.
	CountWeighting Weighting = iota
	// FrisianWeighting scores a man as 1 and a king as 1.5 (tracked as a
	// fixed-point value scaled by 2 to avoid floating point comparisons).
	FrisianWeighting
)

// Variant is the fixed record consulted by the generator, the evaluator and
// the serializer. It is immutable once constructed.
type Variant struct {
	Name string

	// N is the board side. Only 8 and 10 are supported.
	N int

	// FlyingKings makes kings slide any number of empty squares and capture
	// over a single enemy with any number of empty landing squares beyond
	// it. When false, kings move and capture exactly one square like a man.
	FlyingKings bool

	// ManCaptureBackward allows a man to capture in any diagonal direction,
	// not just the direction it advances in.
	ManCaptureBackward bool

	// MustCaptureMax restricts legal captures to those chains capturing the
	// most pieces, with ties broken by capture weight (see Weighting).
	MustCaptureMax bool

	// Weighting controls how capture weight is computed when MustCaptureMax
	// is set.
	Weighting Weighting

	// Frisian enables orthogonal (rank/file) captures in addition to
	// diagonal ones. Orthogonal moves are never quiet moves, only captures.
	Frisian bool

	// PromotionContinues selects the mid-chain promotion rule: true means a
	// man that lands on the promotion row mid-capture continues the chain
	// as a king (Standard/Frisian/Russian rule); false means the chain
	// terminates immediately on promotion (American rule).
	PromotionContinues bool

	// KMovesRule is the number of consecutive king-only reversible moves
	// (by both sides combined) after which the game is drawn. Zero means
	// the rule is not used by this variant.
	KMovesRule int
}

// S returns the number of playable (dark) squares: N^2/2.
func (v Variant) S() int {
	return v.N * v.N / 2
}

// Half returns the number of playable squares per rank: N/2.
func (v Variant) Half() int {
	return v.N / 2
}

// International is standard 10x10 international draughts: flying kings,
// mandatory maximum capture, forward-only man captures.
var International = Variant{
	Name:               "international",
	N:                  10,
	FlyingKings:        true,
	ManCaptureBackward: false,
	MustCaptureMax:     true,
	Weighting:          CountWeighting,
	Frisian:            false,
	PromotionContinues: true,
}

// American is English draughts / checkers: 8x8, short-range kings, capture
// is mandatory but not maximum.
var American = Variant{
	Name:               "american",
	N:                  8,
	FlyingKings:        false,
	ManCaptureBackward: false,
	MustCaptureMax:     false,
	Weighting:          CountWeighting,
	Frisian:            false,
	PromotionContinues: false,
}

// Russian is 8x8 with flying kings, men capturing in any direction, and no
// maximum-capture rule.
var Russian = Variant{
	Name:               "russian",
	N:                  8,
	FlyingKings:        true,
	ManCaptureBackward: true,
	MustCaptureMax:     false,
	Weighting:          CountWeighting,
	Frisian:            false,
	PromotionContinues: true,
}

// Frisian is 10x10 with flying kings, mandatory maximum capture weighted
// man=1/king=1.5, and orthogonal captures.
var Frisian = Variant{
	Name:               "frisian",
	N:                  10,
	FlyingKings:        true,
	ManCaptureBackward: false,
	MustCaptureMax:     true,
	Weighting:          FrisianWeighting,
	Frisian:            true,
	PromotionContinues: true,
}

// ByName resolves a variant by its Name field. Used by the FEN/PDN readers
// and the Hub protocol, which select a board class from a string.
func ByName(name string) (Variant, bool) {
	switch name {
	case International.Name:
		return International, true
	case American.Name:
		return American, true
	case Russian.Name:
		return Russian, true
	case Frisian.Name:
		return Frisian, true
	default:
		return Variant{}, false
	}
}
