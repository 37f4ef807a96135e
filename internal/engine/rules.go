// Package engine provides chess move validation, move generation and game
// state detection on top of the chess board model.
package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Rules answers legality and game-state questions about one board.
// It only reads the board; hypothetical moves are played on clones.
type Rules struct {
	board *chess.Board
}

// NewRules creates a rules engine for board.
func NewRules(board *chess.Board) *Rules {
	return &Rules{board: board}
}

// Board returns the board the rules operate on.
func (r *Rules) Board() *chess.Board {
	return r.board
}

// owns reports whether piece is the piece standing on its recorded square.
func (r *Rules) owns(piece *chess.Piece) bool {
	return piece != nil && r.board.At(piece.Pos) == piece
}

// IsLegalMove returns true if piece may move to dest by its movement rule and
// the move does not leave the mover's own king in check. Every other legality
// query goes through here.
func (r *Rules) IsLegalMove(piece *chess.Piece, dest chess.Position) bool {
	if !r.owns(piece) {
		return false
	}
	if !CanPieceMove(r.board, piece, dest) {
		return false
	}
	return !IsInCheck(r.SimulateMove(piece, dest), piece.Colour)
}

// SimulateMove returns a deep copy of the board with piece moved to dest.
// The origin is cleared and any occupant of dest is dropped. The board the
// rules operate on is never touched and the copy's history is not extended.
func (r *Rules) SimulateMove(piece *chess.Piece, dest chess.Position) *chess.Board {
	sim := r.board.Clone()
	moved := sim.Remove(piece.Pos)
	if moved == nil {
		moved = piece.Clone()
	}
	moved.Pos = dest
	sim.Remove(dest)
	sim.Place(moved)
	return sim
}

// simulate returns a deep copy of the board with m fully applied, including
// the rook hop of a castle and the victim of an en passant capture.
func (r *Rules) simulate(m chess.Move) *chess.Board {
	sim := r.board.Clone()
	sim.Apply(m)
	return sim
}
