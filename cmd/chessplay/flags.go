// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesscore/internal/config"
)

var (
	// Configuration
	configFile = flag.String("c", "chessplay.conf", "Configuration file (key = value lines)")

	// Game options
	boardSize = flag.Int("n", 0, "Board dimension (0 = use config)")
	modeFlag  = flag.String("mode", "", "Move selection: greedy, random, first (empty = use config)")
	seed      = flag.Int64("seed", -1, "Random seed (-1 = use config)")
	maxPlies  = flag.Int("plies", 0, "Maximum plies per game (0 = use config)")
	games     = flag.Int("games", 1, "Number of games to play")
	workers   = flag.Int("workers", 0, "Workers scoring candidate moves (0 = use config)")

	// Persistence
	storeDir  = flag.String("store", "", "Badger directory for finished games (empty = use config)")
	showStats = flag.Bool("stats", false, "Print stored game statistics and exit")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must repeat the move sequence, not just the final position")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered games (0 = unlimited)")

	// Output and logging
	outputFile = flag.String("o", "", "Output file for finished games (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	lineLength = flag.Int("w", 80, "Maximum line length of move text")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	appendLog  = flag.String("L", "", "Append diagnostics to log file")
	verbose    = flag.Bool("v", false, "Log every ply")
	quiet      = flag.Bool("s", false, "Silent mode (no diagnostics)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags lays command-line flags over the loaded configuration.
// Flags left at their zero value keep what the config file said.
func applyFlags(cfg *config.GameConfig) error {
	if *boardSize > 0 {
		cfg.BoardSize = *boardSize
	}
	if *modeFlag != "" {
		mode, err := config.ParseMode(*modeFlag)
		if err != nil {
			return err
		}
		cfg.Mode = mode
	}
	if *seed >= 0 {
		cfg.Seed = *seed
	}
	if *maxPlies > 0 {
		cfg.MaxPlies = *maxPlies
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *storeDir != "" {
		cfg.StoreDir = *storeDir
	}

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}
