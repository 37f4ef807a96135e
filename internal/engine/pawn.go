package engine

import "github.com/lgbarn/chesscore/internal/chess"

// EnPassantTarget returns the square pawn would land on capturing en passant.
// It reports false unless the last move was an opposing pawn's two-square
// advance ending on pawn's row in an adjacent file, and the square behind
// that pawn (in pawn's direction of travel) is on the board and empty.
func (r *Rules) EnPassantTarget(pawn *chess.Piece) (chess.Position, bool) {
	if !r.owns(pawn) || pawn.Kind != chess.Pawn {
		return chess.Position{}, false
	}
	last, ok := r.board.LastMove()
	if !ok || last.Colour == pawn.Colour || !last.IsDoublePawnPush() {
		return chess.Position{}, false
	}
	if last.To.Row != pawn.Pos.Row || abs(last.To.Col-pawn.Pos.Col) != 1 {
		return chess.Position{}, false
	}
	if passed := r.board.At(last.To); passed == nil || passed.Kind != chess.Pawn || passed.Colour == pawn.Colour {
		return chess.Position{}, false
	}
	target := chess.Pos(pawn.Pos.Row+pawn.Colour.Forward(), last.To.Col)
	if !r.board.IsEmpty(target) {
		return chess.Position{}, false
	}
	return target, true
}

// CanCaptureEnPassant returns true if pawn may capture the pawn that has
// just advanced two squares alongside it.
func (r *Rules) CanCaptureEnPassant(pawn *chess.Piece) bool {
	_, ok := r.EnPassantTarget(pawn)
	return ok
}

// EnPassantMove returns the en passant capture for pawn if it is available
// and does not leave pawn's own king in check.
func (r *Rules) EnPassantMove(pawn *chess.Piece) (chess.Move, bool) {
	target, ok := r.EnPassantTarget(pawn)
	if !ok {
		return chess.Move{}, false
	}
	m := chess.Move{
		Piece:     pawn,
		From:      pawn.Pos,
		To:        target,
		Capture:   true,
		EnPassant: true,
	}
	if IsInCheck(r.simulate(m), pawn.Colour) {
		return chess.Move{}, false
	}
	return m, true
}

// isPromotionMove reports whether piece moving to dest reaches the last row.
func isPromotionMove(board *chess.Board, piece *chess.Piece, dest chess.Position) bool {
	return piece.Kind == chess.Pawn && dest.Row == promotionRow(board, piece.Colour)
}

// isPromotionKind reports whether a pawn may become kind.
func isPromotionKind(kind chess.PieceKind) bool {
	for _, k := range chess.PromotionKinds {
		if k == kind {
			return true
		}
	}
	return false
}
