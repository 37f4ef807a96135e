package engine

import "github.com/lgbarn/chesscore/internal/chess"

// attackResult is the outcome of asking one candidate piece whether it
// attacks a square.
type attackResult int

const (
	notAttacking attackResult = iota
	attacking
	// unevaluable covers a candidate whose kind has no movement rule or whose
	// recorded position disagrees with its square. It counts as not attacking.
	unevaluable
)

// evaluateAttacker asks a single candidate whether its movement rule reaches target.
func evaluateAttacker(board *chess.Board, candidate *chess.Piece, target chess.Position) attackResult {
	if candidate == nil || board.At(candidate.Pos) != candidate {
		return unevaluable
	}
	if _, ok := predicates[candidate.Kind]; !ok {
		return unevaluable
	}
	if CanPieceMove(board, candidate, target) {
		return attacking
	}
	return notAttacking
}

// IsInCheck returns true if the given colour's king is attacked by any
// opposing piece's movement rule. A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.King(colour)
	if king == nil {
		return false
	}
	return IsSquareAttacked(board, king.Pos, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour can reach pos by its
// movement rule. A candidate that cannot be evaluated is skipped and the scan
// moves on to the next one.
func IsSquareAttacked(board *chess.Board, pos chess.Position, byColour chess.Colour) bool {
	found := false
	for _, candidate := range board.Pieces(byColour) {
		if evaluateAttacker(board, candidate, pos) == attacking {
			found = true
			break
		}
	}
	return found
}

// IsInCheck returns true if colour's king is in check on the rules' board.
func (r *Rules) IsInCheck(colour chess.Colour) bool {
	return IsInCheck(r.board, colour)
}
