package engine

import "github.com/lgbarn/chesscore/internal/chess"

// minCastlingRookDistance is the smallest king-rook file gap that leaves
// room for the king's two-square journey.
const minCastlingRookDistance = 3

// castlingRook finds the rook the king would castle with on the given side:
// the nearest unmoved rook of the king's colour walking from the king toward
// that edge, at least minCastlingRookDistance files away. Pieces in between
// are not checked here.
func castlingRook(board *chess.Board, king *chess.Piece, side chess.CastleSide) *chess.Piece {
	dir := side.Direction()
	for sq := king.Pos.Add(0, dir); board.InBounds(sq); sq = sq.Add(0, dir) {
		p := board.At(sq)
		if p == nil || p.Kind != chess.Rook || p.Colour != king.Colour || p.Moved {
			continue
		}
		if abs(p.Pos.Col-king.Pos.Col) < minCastlingRookDistance {
			return nil
		}
		return p
	}
	return nil
}

// CanCastle returns true if colour may castle on side: king and rook have
// never moved, every square between them is empty, and neither the king's
// square nor the two squares it passes to reach its destination are attacked.
func (r *Rules) CanCastle(colour chess.Colour, side chess.CastleSide) bool {
	king := r.board.King(colour)
	if king == nil || king.Moved {
		return false
	}
	rook := castlingRook(r.board, king, side)
	if rook == nil {
		return false
	}
	for _, sq := range squaresBetween(king.Pos, rook.Pos) {
		if !r.board.IsEmpty(sq) {
			return false
		}
	}

	if r.IsInCheck(colour) {
		return false
	}
	dir := side.Direction()
	for step := 1; step <= 2; step++ {
		transit := king.Pos.Add(0, step*dir)
		if IsInCheck(r.SimulateMove(king, transit), colour) {
			return false
		}
	}
	return true
}

// CastleMove returns the king move for castling on side, if allowed.
func (r *Rules) CastleMove(colour chess.Colour, side chess.CastleSide) (chess.Move, bool) {
	if !r.CanCastle(colour, side) {
		return chess.Move{}, false
	}
	king := r.board.King(colour)
	return chess.Move{
		Piece:  king,
		From:   king.Pos,
		To:     king.Pos.Add(0, 2*side.Direction()),
		Castle: true,
	}, true
}
