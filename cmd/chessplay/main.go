// chessplay plays self-play games with the rules engine and evaluator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/processing"
	"github.com/lgbarn/chesscore/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, found, err := config.LoadFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config %s: %v\n", *configFile, err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if found && cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "Loaded configuration from %s\n", *configFile)
	}

	db := openStore(cfg)
	if db != nil {
		defer db.Close() //nolint:errcheck // G104: cleanup on exit
	}

	if *showStats {
		if db == nil {
			fmt.Fprintf(os.Stderr, "Error: -stats needs a store directory\n")
			os.Exit(1)
		}
		if err := reportStatistics(cfg.OutputFile, db); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading store: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pc := &playContext{
		cfg:      cfg,
		writer:   setupGameWriter(cfg),
		db:       db,
		detector: setupDuplicateDetector(),
	}
	played, duplicates, err := runGames(ctx, pc, *games)
	if cerr := pc.writer.Close(); err == nil {
		err = cerr
	}
	if cfg.Verbosity > 0 {
		reportPlayed(cfg, pc.detector, played, duplicates)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.GameConfig) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.GameConfig) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// openStore opens the game store, or returns nil when persistence is off.
func openStore(cfg *config.GameConfig) *store.Store {
	if cfg.StoreDir == "" {
		return nil
	}

	db, err := store.Open(cfg.StoreDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %s: %v\n", cfg.StoreDir, err)
		os.Exit(1)
	}
	return db
}

// setupGameWriter picks the writer for finished games.
func setupGameWriter(cfg *config.GameConfig) output.GameWriter {
	if *jsonOutput {
		return output.NewJSONWriter(cfg.OutputFile)
	}
	return output.NewTextWriter(cfg.OutputFile, *lineLength)
}

// setupDuplicateDetector creates the duplicate detector when -D is given.
func setupDuplicateDetector() *hashing.DuplicateDetector {
	if !*suppressDuplicates {
		return nil
	}
	return hashing.NewDuplicateDetector(*exactDuplicates, *duplicateCapacity)
}

// reportPlayed prints the run summary to the log.
func reportPlayed(cfg *config.GameConfig, detector *hashing.DuplicateDetector, played, duplicates int) {
	if detector != nil {
		fmt.Fprintf(cfg.LogFile, "%d game(s) output, %d duplicate(s) out of %d.\n", played-duplicates, duplicates, played)
	} else {
		fmt.Fprintf(cfg.LogFile, "%d game(s) played.\n", played)
	}
}

// reportStatistics prints a summary of the stored games, then replays each
// one to total its notable moves and flag records that fail validation.
func reportStatistics(w io.Writer, db *store.Store) error {
	stats, err := db.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d game(s): %d white win(s), %d black win(s), %d draw(s), %d unfinished\n",
		stats.Games, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.Unfinished)
	fmt.Fprintf(w, "average length %.1f plies\n", stats.AveragePlies())

	recs, err := db.ListGames()
	if err != nil {
		return err
	}
	var totals processing.GameAnalysis
	for _, rec := range recs {
		if v := processing.ValidateGame(rec); !v.Valid {
			fmt.Fprintf(w, "game %d invalid: %s\n", rec.ID, v.ErrorMsg)
			continue
		}
		analysis, err := processing.AnalyzeGame(rec)
		if err != nil {
			return err
		}
		totals.Captures += analysis.Captures
		totals.Checks += analysis.Checks
		totals.Castles += analysis.Castles
		totals.EnPassants += analysis.EnPassants
		totals.Promotions += analysis.Promotions
		totals.Underpromotions += analysis.Underpromotions
	}
	fmt.Fprintf(w, "captures %d, checks %d, castles %d, en passant %d, promotions %d (%d under)\n",
		totals.Captures, totals.Checks, totals.Castles, totals.EnPassants, totals.Promotions, totals.Underpromotions)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays self-play chess games and prints them in coordinate notation.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  greedy  Play the move whose resulting position scores best\n")
	fmt.Fprintf(os.Stderr, "  random  Play a uniformly random legal move\n")
	fmt.Fprintf(os.Stderr, "  first   Play the first legal move in generation order\n")
}
