package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// Common positions used across package tests.
const (
	// After 1.f3 e5 2.g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	// Black to move with no legal move and not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	BareKingsFEN = "8/8/8/3k4/8/8/8/K7 w - - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

// MustBoard builds a board from fen, calling t.Fatal if it does not parse.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse test position %q: %v", fen, err)
	}
	return board
}

// PlayMoves applies moves in coordinate notation to board, calling t.Fatal
// on the first illegal one.
func PlayMoves(t *testing.T, board *chess.Board, moves ...string) {
	t.Helper()
	rules := engine.NewRules(board)
	for _, text := range moves {
		if _, err := rules.ApplyText(text); err != nil {
			t.Fatalf("failed to play %s: %v", text, err)
		}
	}
}

// FEN renders board for comparisons in tests.
func FEN(board *chess.Board) string {
	return engine.BoardToFEN(board)
}
