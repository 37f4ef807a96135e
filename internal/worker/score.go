package worker

import (
	"context"
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// ScoreFunc scores the position child reached after mover played a move.
type ScoreFunc func(child *chess.Board, mover chess.Colour) float64

// scoreItem plays the item's move on its clone and scores the result.
func scoreItem(score ScoreFunc) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Move: item.Move, Index: item.Index}
		piece := item.Board.At(item.Move.From)
		if piece == nil || !item.Board.Apply(item.Move) {
			res.Error = fmt.Errorf("move %v: %w", item.Move, errors.ErrIllegalMove)
			return res
		}
		res.Board = item.Board
		res.Score = score(item.Board, piece.Colour)
		return res
	}
}

// ScoreMoves scores every move in moves, played from board, using the given
// number of workers. board is only cloned, never modified. Results are
// returned in the order of moves. If ctx is cancelled, moves not yet scored
// are skipped and the context error is returned with the partial results.
func ScoreMoves(ctx context.Context, board *chess.Board, moves []chess.Move, workers int, score ScoreFunc) ([]ProcessResult, error) {
	results := make([]ProcessResult, len(moves))
	done := make([]bool, len(moves))
	if err := ctx.Err(); err != nil {
		markSkipped(results, done, moves, err)
		return results, err
	}
	if len(moves) == 0 {
		return results, nil
	}

	pool := NewPool(scoreItem(score), WithWorkers(workers), WithBufferSize(len(moves)))
	pool.Start()

	for i, m := range moves {
		pool.Submit(WorkItem{Move: m, Board: board.Clone(), Index: i})
	}
	go pool.Close()

	for {
		select {
		case <-ctx.Done():
			pool.Stop()
			for res := range pool.Results() {
				results[res.Index], done[res.Index] = res, true
			}
			markSkipped(results, done, moves, ctx.Err())
			return results, ctx.Err()
		case res, ok := <-pool.Results():
			if !ok {
				return results, nil
			}
			results[res.Index], done[res.Index] = res, true
		}
	}
}

// markSkipped fills the results of moves that were never scored.
func markSkipped(results []ProcessResult, done []bool, moves []chess.Move, err error) {
	for i := range results {
		if !done[i] {
			results[i] = ProcessResult{Move: moves[i], Index: i, Error: err}
		}
	}
}

// Best returns the highest scoring result without an error. Ties go to the
// lowest index. It reports false if every result failed.
func Best(results []ProcessResult) (ProcessResult, bool) {
	var best ProcessResult
	found := false
	for _, res := range results {
		if res.Error != nil {
			continue
		}
		if !found || res.Score > best.Score || (res.Score == best.Score && res.Index < best.Index) {
			best, found = res, true
		}
	}
	return best, found
}
