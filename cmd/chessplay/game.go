// game.go - Self-play game loop and move selection
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/eval"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/store"
	"github.com/lgbarn/chesscore/internal/worker"
)

// Termination reasons recorded with each game.
const (
	termCheckmate = "checkmate"
	termStalemate = "stalemate"
	termDraw      = "insufficient material"
	termDeadSide  = "opponent stalemated"
	termMaxPlies  = "ply limit"
)

// playContext holds everything shared by the games of one run.
type playContext struct {
	cfg      *config.GameConfig
	writer   output.GameWriter
	db       *store.Store
	detector *hashing.DuplicateDetector
}

// runGames plays n games, writing each to the output and saving it to the
// store when there is one. Game i is played with seed base+i, where base is
// cfg.Seed or, when that is zero, the clock. With a detector, games already
// seen are counted but neither written nor saved.
func runGames(ctx context.Context, pc *playContext, n int) (played, duplicates int, err error) {
	cfg := pc.cfg
	base := resolveSeed(cfg.Seed)
	for i := 0; i < n; i++ {
		gameCfg := *cfg
		gameCfg.Seed = base + int64(i)

		rec, board, err := playGame(ctx, &gameCfg)
		if err != nil {
			return played, duplicates, errors.Wrapf(err, "game %d", i+1)
		}
		played++

		if pc.detector != nil && pc.detector.CheckAndAdd(rec.Moves, board) {
			duplicates++
			if cfg.Verbosity > 0 {
				fmt.Fprintf(cfg.LogFile, "Game %d: duplicate, skipped\n", i+1)
			}
			continue
		}

		if pc.db != nil {
			if err := pc.db.SaveGame(rec); err != nil {
				return played, duplicates, errors.Wrapf(err, "save game %d", i+1)
			}
		}
		if err := pc.writer.WriteGame(rec); err != nil {
			return played, duplicates, errors.Wrapf(err, "write game %d", i+1)
		}

		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "Game %d: %s (%s) after %d plies\n", i+1, rec.Result, rec.Termination, rec.Plies())
		}
	}
	return played, duplicates, nil
}

// resolveSeed returns seed, or a clock-derived seed when seed is zero. The
// resolved value is stored with each game so it can be replayed.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	if now := time.Now().UnixNano(); now != 0 {
		return now
	}
	return 1
}

// playGame plays one game from the standard position until it ends or
// cfg.MaxPlies plies have been played. It returns the record and the final
// position.
func playGame(ctx context.Context, cfg *config.GameConfig) (*store.GameRecord, *chess.Board, error) {
	board, err := chess.NewStandardBoard(cfg.BoardSize)
	if err != nil {
		return nil, nil, err
	}
	rules := engine.NewRules(board)
	gen := engine.NewGenerator(rules)
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // G404: reproducible self-play, not security

	rec := &store.GameRecord{
		BoardSize: cfg.BoardSize,
		StartFEN:  engine.BoardToFEN(board),
		Mode:      cfg.Mode.String(),
		Seed:      cfg.Seed,
	}

	for {
		mover := board.ToMove
		if status := rules.Status(mover); status != engine.InProgress {
			finish(rec, status, mover, board)
			return rec, board, nil
		}
		if rec.Plies() >= cfg.MaxPlies {
			rec.Result = store.Unfinished
			rec.Termination = termMaxPlies
			return rec, board, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		moves := gen.AllMoves(mover)
		m, err := chooseMove(ctx, cfg, board, moves, rng)
		if err != nil {
			return nil, nil, err
		}
		played, err := rules.Apply(m)
		if err != nil {
			return nil, nil, err
		}
		rec.Moves = append(rec.Moves, played.String())

		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "ply %d: %s %s\n", rec.Plies(), mover, played)
		}
	}
}

// finish records the result of a game that ended with status for mover on
// board.
func finish(rec *store.GameRecord, status engine.GameStatus, mover chess.Colour, board *chess.Board) {
	switch status {
	case engine.Checkmate:
		rec.Termination = termCheckmate
		rec.Result = store.WhiteWins
		if mover == chess.White {
			rec.Result = store.BlackWins
		}
	case engine.Stalemate:
		rec.Termination = termStalemate
		rec.Result = store.Draw
	default:
		rec.Termination = termDeadSide
		if engine.HasInsufficientMaterial(board) {
			rec.Termination = termDraw
		}
		rec.Result = store.Draw
	}
}

// chooseMove picks one of moves according to cfg.Mode.
func chooseMove(ctx context.Context, cfg *config.GameConfig, board *chess.Board, moves []chess.Move, rng *rand.Rand) (chess.Move, error) {
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrNoMoves
	}

	switch cfg.Mode {
	case config.First:
		return moves[0], nil
	case config.Random:
		return moves[rng.Intn(len(moves))], nil
	}

	weights := cfg.Weights
	results, err := worker.ScoreMoves(ctx, board, moves, cfg.Workers, func(child *chess.Board, mover chess.Colour) float64 {
		return eval.ForBoard(child).Score(mover, weights)
	})
	if err != nil {
		return chess.Move{}, err
	}
	best, ok := worker.Best(results)
	if !ok {
		return chess.Move{}, errors.ErrNoMoves
	}
	return best.Move, nil
}
