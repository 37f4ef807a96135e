package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// ApplyMove plays piece to dest on the rules' board. The move is classified
// as a castle (king moving two files), an en passant capture, a promotion or
// an ordinary move, and must be legal. promotion selects the piece a pawn
// becomes on the last row; NoKind means Queen. The applied move is returned.
func (r *Rules) ApplyMove(piece *chess.Piece, dest chess.Position, promotion chess.PieceKind) (chess.Move, error) {
	m, err := r.classify(piece, dest, promotion)
	if err != nil {
		return chess.Move{}, err
	}
	if !r.board.Apply(m) {
		return chess.Move{}, r.illegal(piece, m)
	}
	return m, nil
}

// Apply plays a generated move. The piece is looked up on m.From, so m may
// have been generated on a clone of the board.
func (r *Rules) Apply(m chess.Move) (chess.Move, error) {
	return r.ApplyMove(r.board.At(m.From), m.To, m.Promotion)
}

// ApplyText plays a move given in coordinate notation, such as "e2e4" or
// "e7e8n", on the rules' board.
func (r *Rules) ApplyText(text string) (chess.Move, error) {
	from, to, promotion, ok := chess.ParseCoordinates(text)
	piece := r.board.At(from)
	if !ok || piece == nil {
		return chess.Move{}, &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Ply:  r.board.HistoryLen() + 1,
			Move: text,
		}
	}
	return r.ApplyMove(piece, to, promotion)
}

// classify builds the flagged move for piece to dest and checks its legality.
func (r *Rules) classify(piece *chess.Piece, dest chess.Position, promotion chess.PieceKind) (chess.Move, error) {
	if !r.owns(piece) {
		return chess.Move{}, r.illegal(piece, chess.Move{To: dest})
	}
	m := chess.Move{Piece: piece, From: piece.Pos, To: dest}
	colDiff := dest.Col - piece.Pos.Col

	switch {
	case piece.Kind == chess.King && dest.Row == piece.Pos.Row && abs(colDiff) == 2:
		side := chess.Kingside
		if colDiff < 0 {
			side = chess.Queenside
		}
		castle, ok := r.CastleMove(piece.Colour, side)
		if !ok {
			return chess.Move{}, r.illegal(piece, m)
		}
		return castle, nil

	case piece.Kind == chess.Pawn && abs(colDiff) == 1 && r.board.IsEmpty(dest):
		ep, ok := r.EnPassantMove(piece)
		if !ok || ep.To != dest {
			return chess.Move{}, r.illegal(piece, m)
		}
		return ep, nil
	}

	if !r.IsLegalMove(piece, dest) {
		return chess.Move{}, r.illegal(piece, m)
	}
	m.Capture = r.board.At(dest) != nil

	if isPromotionMove(r.board, piece, dest) {
		switch {
		case promotion == chess.NoKind:
			m.Promotion = chess.Queen
		case isPromotionKind(promotion):
			m.Promotion = promotion
		default:
			return chess.Move{}, r.illegal(piece, m)
		}
	}
	return m, nil
}

// illegal builds the error reported for a rejected move.
func (r *Rules) illegal(piece *chess.Piece, m chess.Move) error {
	e := &errors.MoveError{
		Err: errors.ErrIllegalMove,
		Ply: r.board.HistoryLen() + 1,
	}
	if piece != nil {
		e.Piece = piece.String()
		m.From = piece.Pos
		e.Move = m.String()
	}
	return e
}
