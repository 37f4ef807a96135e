// Package processing provides game analysis and validation of recorded games.
package processing

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/store"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard *chess.Board
	FinalState engine.GameStatus

	Captures        int
	Checks          int
	Castles         int
	EnPassants      int
	Promotions      int
	Underpromotions int

	HasInsufficientMaterial bool

	// IllegalPly is the 1-based ply of the first move that could not be
	// played, or zero when every move was replayed.
	IllegalPly int
}

// Complete returns true if every recorded move was replayed.
func (ga *GameAnalysis) Complete() bool {
	return ga.IllegalPly == 0
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.Underpromotions > 0
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// AnalyzeGame replays a game and counts its notable moves. The replay stops
// at the first move that cannot be played and records its ply in IllegalPly;
// the counts and final position then cover only the moves before it.
func AnalyzeGame(rec *store.GameRecord) (*GameAnalysis, error) {
	board, err := engine.NewBoardFromFEN(rec.StartFEN)
	if err != nil {
		return nil, err
	}
	rules := engine.NewRules(board)
	analysis := &GameAnalysis{}

	for i, text := range rec.Moves {
		m, err := rules.ApplyText(text)
		if err != nil {
			analysis.IllegalPly = i + 1
			break
		}

		if m.Capture {
			analysis.Captures++
		}
		if m.Castle {
			analysis.Castles++
		}
		if m.EnPassant {
			analysis.EnPassants++
		}
		if m.IsPromotion() {
			analysis.Promotions++
			if m.Promotion != chess.Queen {
				analysis.Underpromotions++
			}
		}
		if rules.IsInCheck(board.ToMove) {
			analysis.Checks++
		}
	}

	analysis.FinalBoard = board
	analysis.FinalState = rules.Status(board.ToMove)
	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(board)
	return analysis, nil
}

// ValidateGame validates all moves in a game are legal and that the
// recorded result agrees with the final position.
func ValidateGame(rec *store.GameRecord) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if !isValidResult(rec.Result) {
		result.Valid = false
		result.ErrorMsg = fmt.Sprintf("invalid result: %s", rec.Result)
		return result
	}

	board, err := engine.NewBoardFromFEN(rec.StartFEN)
	if err != nil {
		result.Valid = false
		result.ErrorMsg = fmt.Sprintf("invalid FEN: %s", rec.StartFEN)
		return result
	}

	rules := engine.NewRules(board)
	for i, text := range rec.Moves {
		if _, err := rules.ApplyText(text); err != nil {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", i+1, text)
			return result
		}
	}

	if want := expectedResult(rules.Status(board.ToMove), board.ToMove); want != "" && want != rec.Result {
		result.Valid = false
		result.ErrorMsg = fmt.Sprintf("result %s, but the final position gives %s", rec.Result, want)
	}
	return result
}

// expectedResult returns the result forced by status, or "" while the game
// is still in progress.
func expectedResult(status engine.GameStatus, toMove chess.Colour) string {
	switch status {
	case engine.Checkmate:
		if toMove == chess.White {
			return store.BlackWins
		}
		return store.WhiteWins
	case engine.Stalemate, engine.Draw:
		return store.Draw
	}
	return ""
}

// isValidResult checks if a result string is a valid PGN result.
func isValidResult(result string) bool {
	switch result {
	case store.WhiteWins, store.BlackWins, store.Draw, store.Unfinished:
		return true
	default:
		return false
	}
}
