package engine

import "github.com/lgbarn/chesscore/internal/chess"

// GameStatus summarises the state of the game for one side.
type GameStatus int

const (
	InProgress GameStatus = iota
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	}
	return "in progress"
}

// IsCheckmate returns true if colour is in check and has no legal move.
func (r *Rules) IsCheckmate(colour chess.Colour) bool {
	return r.IsInCheck(colour) && !r.HasLegalMoves(colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func (r *Rules) IsStalemate(colour chess.Colour) bool {
	return !r.IsInCheck(colour) && !r.HasLegalMoves(colour)
}

// IsDraw returns true if either side is stalemated or neither side has
// enough material to mate. Fifty-move and repetition draws are not detected.
func (r *Rules) IsDraw() bool {
	if HasInsufficientMaterial(r.board) {
		return true
	}
	return r.IsStalemate(chess.White) || r.IsStalemate(chess.Black)
}

// Status returns the state of the game from colour's point of view.
func (r *Rules) Status(colour chess.Colour) GameStatus {
	switch {
	case r.IsCheckmate(colour):
		return Checkmate
	case r.IsStalemate(colour):
		return Stalemate
	case r.IsDraw():
		return Draw
	}
	return InProgress
}

// HasLegalMoves returns true if colour has at least one legal move: an
// ordinary move to any square, an en passant capture or a castle.
func (r *Rules) HasLegalMoves(colour chess.Colour) bool {
	n := r.board.Size()
	for _, piece := range r.board.Pieces(colour) {
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if r.IsLegalMove(piece, chess.Pos(row, col)) {
					return true
				}
			}
		}
		if piece.Kind == chess.Pawn {
			if _, ok := r.EnPassantMove(piece); ok {
				return true
			}
		}
	}
	return r.CanCastle(colour, chess.Kingside) || r.CanCastle(colour, chess.Queenside)
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - bare kings
// - exactly three pieces, the third being a single bishop or knight
func HasInsufficientMaterial(board *chess.Board) bool {
	pieces := board.AllPieces()

	minors := 0
	for _, p := range pieces {
		switch p.Kind {
		case chess.King:
		case chess.Bishop, chess.Knight:
			minors++
		default:
			// Any pawn, rook, or queen means sufficient material
			return false
		}
	}

	if minors == 0 {
		return true
	}
	return len(pieces) == 3 && minors == 1
}
