// divide.go - Parallel perft divide and the reference cross-check
package main

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// parallelDivide counts leaf nodes below each root move, searching the root
// moves on up to workers goroutines. Each root move gets its own clone.
func parallelDivide(ctx context.Context, board *chess.Board, depth, workers int) (map[string]uint64, error) {
	div := make(map[string]uint64)
	if depth < 1 {
		return div, nil
	}

	moves := engine.NewGenerator(engine.NewRules(board)).AllMoves(board.ToMove)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for _, m := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := board.Clone()
			if _, err := engine.NewRules(child).Apply(m); err != nil {
				return err
			}
			nodes := engine.Perft(child, depth-1)

			mu.Lock()
			div[m.String()] = nodes
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return div, nil
}

// referenceDivide computes the same divide with dragontoothmg. It only
// understands standard 8x8 positions.
func referenceDivide(fen string, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth < 1 {
		return div
	}

	b := dragontoothmg.ParseFen(fen)
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		div[m.String()] = referencePerft(&b, depth-1)
		undo()
	}
	return div
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		undo()
	}
	return nodes
}

// Mismatch is a root move whose counts disagree. A count of -1 means the
// move was not generated on that side.
type Mismatch struct {
	Move      string
	Got, Want int64
}

// compareDivides lists the root moves where got and want differ, sorted
// by move.
func compareDivides(got, want map[string]uint64) []Mismatch {
	keys := make(map[string]struct{}, len(got)+len(want))
	for k := range got {
		keys[k] = struct{}{}
	}
	for k := range want {
		keys[k] = struct{}{}
	}

	var out []Mismatch
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		g, gok := got[k]
		w, wok := want[k]
		if gok && wok && g == w {
			continue
		}
		out = append(out, Mismatch{Move: k, Got: count(g, gok), Want: count(w, wok)})
	}
	return out
}

func count(n uint64, ok bool) int64 {
	if !ok {
		return -1
	}
	return int64(n)
}

// total sums a divide.
func total(div map[string]uint64) uint64 {
	var sum uint64
	for _, n := range div {
		sum += n
	}
	return sum
}
