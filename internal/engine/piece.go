package engine

import "github.com/lgbarn/chesscore/internal/chess"

// movePredicate reports whether a piece of one kind may move geometrically
// to dest. It is only called once the common preconditions hold.
type movePredicate func(board *chess.Board, piece *chess.Piece, dest chess.Position) bool

// predicates maps every piece kind to its movement rule.
var predicates = map[chess.PieceKind]movePredicate{
	chess.Pawn:   canPawnMove,
	chess.Knight: canKnightMove,
	chess.Bishop: canBishopMove,
	chess.Rook:   canRookMove,
	chess.Queen:  canQueenMove,
	chess.King:   canKingMove,
}

// CanPieceMove checks whether piece may move to dest by its own movement
// rule, ignoring check. Castling and en passant are not covered here.
// It never mutates the board.
func CanPieceMove(board *chess.Board, piece *chess.Piece, dest chess.Position) bool {
	if piece == nil {
		return false
	}
	pred, ok := predicates[piece.Kind]
	if !ok {
		return false
	}
	if dest == piece.Pos || !board.InBounds(dest) || !board.InBounds(piece.Pos) {
		return false
	}
	if occupant := board.At(dest); occupant != nil && occupant.Colour == piece.Colour {
		return false
	}
	return pred(board, piece, dest)
}

// pawnStartRow returns the row a pawn of the given colour starts on.
func pawnStartRow(board *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return board.Size() - 2
}

// promotionRow returns the last row in the colour's direction of advance.
func promotionRow(board *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return board.Size() - 1
	}
	return 0
}

func canPawnMove(board *chess.Board, pawn *chess.Piece, dest chess.Position) bool {
	dir := pawn.Colour.Forward()
	rowDiff := dest.Row - pawn.Pos.Row
	colDiff := dest.Col - pawn.Pos.Col

	if colDiff == 0 {
		// Single push
		if rowDiff == dir {
			return board.IsEmpty(dest)
		}
		// Double push from the starting row through two empty squares
		if rowDiff == 2*dir && pawn.Pos.Row == pawnStartRow(board, pawn.Colour) {
			return board.IsEmpty(pawn.Pos.Add(dir, 0)) && board.IsEmpty(dest)
		}
		return false
	}

	// Diagonal capture onto an opposing piece
	if abs(colDiff) == 1 && rowDiff == dir {
		target := board.At(dest)
		return target != nil && target.Colour != pawn.Colour
	}
	return false
}

func canKnightMove(_ *chess.Board, knight *chess.Piece, dest chess.Position) bool {
	rowDiff := abs(dest.Row - knight.Pos.Row)
	colDiff := abs(dest.Col - knight.Pos.Col)
	return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)
}

func canBishopMove(board *chess.Board, bishop *chess.Piece, dest chess.Position) bool {
	if abs(dest.Row-bishop.Pos.Row) != abs(dest.Col-bishop.Pos.Col) {
		return false
	}
	return isPathClear(board, bishop.Pos, dest)
}

func canRookMove(board *chess.Board, rook *chess.Piece, dest chess.Position) bool {
	if (dest.Row == rook.Pos.Row) == (dest.Col == rook.Pos.Col) {
		return false
	}
	return isPathClear(board, rook.Pos, dest)
}

func canQueenMove(board *chess.Board, queen *chess.Piece, dest chess.Position) bool {
	return canBishopMove(board, queen, dest) || canRookMove(board, queen, dest)
}

func canKingMove(_ *chess.Board, king *chess.Piece, dest chess.Position) bool {
	return abs(dest.Row-king.Pos.Row) <= 1 && abs(dest.Col-king.Pos.Col) <= 1
}
