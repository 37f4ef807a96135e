// perft counts move-generation leaf nodes from a position.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"time"

	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

const programVersion = "0.1.0"

var (
	fenFlag = flag.String("fen", engine.InitialFEN, "Position to count from")
	depth   = flag.Int("depth", 3, "Search depth in plies")
	divide  = flag.Bool("divide", false, "Print the node count below each root move")
	compare = flag.Bool("compare", false, "Cross-check the divide against dragontoothmg (8x8 only)")
	workers = flag.Int("workers", 0, "Goroutines for root moves (0 = number of CPUs)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// options is the parsed command line.
type options struct {
	fen     string
	depth   int
	divide  bool
	compare bool
	workers int
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	opts := options{
		fen:     *fenFlag,
		depth:   *depth,
		divide:  *divide,
		compare: *compare,
		workers: *workers,
	}
	if opts.workers <= 0 {
		opts.workers = runtime.NumCPU()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mismatches, err := run(ctx, os.Stdout, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if mismatches > 0 {
		os.Exit(2)
	}
}

// run counts nodes for opts and writes the report to w. It returns the
// number of root moves that disagreed with the reference generator.
func run(ctx context.Context, w io.Writer, opts options) (int, error) {
	if opts.depth < 1 {
		return 0, errors.Wrapf(errors.ErrInvalidConfig, "depth %d", opts.depth)
	}
	board, err := engine.NewBoardFromFEN(opts.fen)
	if err != nil {
		return 0, err
	}
	if opts.compare && board.Size() != 8 {
		return 0, errors.Wrapf(errors.ErrInvalidConfig, "-compare needs an 8x8 position, got %dx%d", board.Size(), board.Size())
	}

	start := time.Now()
	div, err := parallelDivide(ctx, board, opts.depth, opts.workers)
	if err != nil {
		return 0, err
	}
	elapsed := time.Since(start)

	if opts.divide {
		for _, move := range slices.Sorted(maps.Keys(div)) {
			fmt.Fprintf(w, "%s: %d\n", move, div[move])
		}
		fmt.Fprintln(w)
	}
	nodes := total(div)
	fmt.Fprintf(w, "Nodes searched: %d\n", nodes)
	fmt.Fprintf(w, "Time: %v\n", elapsed.Round(time.Millisecond))

	if !opts.compare {
		return 0, nil
	}

	want := referenceDivide(engine.BoardToFEN(board), opts.depth)
	mismatches := compareDivides(div, want)
	for _, m := range mismatches {
		fmt.Fprintf(w, "MISMATCH %s: got %d, reference %d\n", m.Move, m.Got, m.Want)
	}
	if len(mismatches) == 0 {
		fmt.Fprintf(w, "Reference agrees: %d nodes\n", total(want))
	}
	return len(mismatches), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the leaf nodes of the legal move tree from a FEN position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
