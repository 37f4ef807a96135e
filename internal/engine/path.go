package engine

import "github.com/lgbarn/chesscore/internal/chess"

// isPathClear checks that every square strictly between from and to is empty.
// from and to must share a row, a column or a diagonal.
func isPathClear(board *chess.Board, from, to chess.Position) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	for sq := from.Add(rowDir, colDir); sq != to; sq = sq.Add(rowDir, colDir) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// squaresBetween returns the squares strictly between from and to on a
// shared row, column or diagonal.
func squaresBetween(from, to chess.Position) []chess.Position {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	var squares []chess.Position
	for sq := from.Add(rowDir, colDir); sq != to; sq = sq.Add(rowDir, colDir) {
		squares = append(squares, sq)
	}
	return squares
}
