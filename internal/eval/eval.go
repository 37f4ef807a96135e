// Package eval scores chess positions with a weighted sum of positional
// terms. An Evaluator only reads the board; legality questions go through
// the engine's Rules and Generator.
package eval

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
)

// Terms holds the unweighted positional terms from one colour's perspective.
type Terms struct {
	Material      float64
	Mobility      float64
	PawnStructure float64
	KingSafety    float64
	CenterControl float64
}

// Weighted returns the linear combination of the terms under w.
func (t Terms) Weighted(w config.Weights) float64 {
	return w.Material*t.Material +
		w.Mobility*t.Mobility +
		w.PawnStructure*t.PawnStructure +
		w.KingSafety*t.KingSafety +
		w.CenterControl*t.CenterControl
}

// Evaluator scores the position on one board.
type Evaluator struct {
	board *chess.Board
	rules *engine.Rules
	gen   *engine.Generator
}

// New creates an evaluator over board using rules and gen, which must both
// operate on board.
func New(board *chess.Board, rules *engine.Rules, gen *engine.Generator) *Evaluator {
	return &Evaluator{board: board, rules: rules, gen: gen}
}

// ForBoard creates an evaluator with fresh rules and generator for board.
func ForBoard(board *chess.Board) *Evaluator {
	rules := engine.NewRules(board)
	return New(board, rules, engine.NewGenerator(rules))
}

// Score returns the evaluation of the position for colour. A checkmated
// colour scores -w.Mate, a checkmated opponent +w.Mate and a drawn position
// exactly 0; otherwise the weighted positional terms are summed.
func (e *Evaluator) Score(colour chess.Colour, w config.Weights) float64 {
	if score, ok := e.terminal(colour, w); ok {
		return score
	}
	return e.Breakdown(colour, w).Weighted(w)
}

// terminal reports the score of a finished game.
func (e *Evaluator) terminal(colour chess.Colour, w config.Weights) (float64, bool) {
	switch {
	case e.rules.IsCheckmate(colour):
		return -w.Mate, true
	case e.rules.IsCheckmate(colour.Opposite()):
		return w.Mate, true
	case e.rules.IsDraw():
		return 0, true
	}
	return 0, false
}

// Breakdown returns the unweighted terms for colour. Terminal states are not
// considered. Only w's mobility scale is used.
func (e *Evaluator) Breakdown(colour chess.Colour, w config.Weights) Terms {
	return Terms{
		Material:      e.material(colour),
		Mobility:      e.mobility(colour, w.MobilityScale()),
		PawnStructure: e.pawnStructure(colour),
		KingSafety:    e.kingSafety(colour),
		CenterControl: e.centerControl(colour),
	}
}
