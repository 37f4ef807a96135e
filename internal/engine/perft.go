package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth,
// starting with the side to move. Every move is played on a clone.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := NewGenerator(NewRules(board)).AllMoves(board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Clone()
		child.Apply(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move in coordinate notation.
func PerftDivide(board *chess.Board, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range NewGenerator(NewRules(board)).AllMoves(board.ToMove) {
		child := board.Clone()
		child.Apply(m)
		div[m.String()] = Perft(child, depth-1)
	}
	return div
}
