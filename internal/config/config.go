// Package config provides configuration for the chess drivers: evaluation
// weights, game settings and their file format.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Mode selects how a self-play driver picks a move.
type Mode int

const (
	Greedy Mode = iota // Best evaluation after the move
	Random             // Uniformly random legal move
	First              // First legal move in generation order
)

// String returns the configuration name of a mode.
func (m Mode) String() string {
	switch m {
	case Greedy:
		return "greedy"
	case Random:
		return "random"
	case First:
		return "first"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a configuration name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "greedy":
		return Greedy, nil
	case "random":
		return Random, nil
	case "first":
		return First, nil
	}
	return Greedy, fmt.Errorf("unknown mode %q: %w", s, errors.ErrInvalidConfig)
}

// DefaultMaxPlies caps a self-play game when no limit is configured.
const DefaultMaxPlies = 200

// GameConfig holds all settings for a self-play run.
type GameConfig struct {
	// Board dimension; the standard setup needs at least 8.
	BoardSize int

	Mode Mode

	// Seed for random mode. Zero means seed from the clock.
	Seed int64

	// Stop after this many plies.
	MaxPlies int

	// Workers scoring candidate moves in greedy mode.
	Workers int

	// Badger directory for finished games; empty disables persistence.
	StoreDir string

	Verbosity int // 0=nothing, 1=result, 2=every move

	Weights Weights

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		BoardSize:  chess.DefaultBoardSize,
		Mode:       Greedy,
		MaxPlies:   DefaultMaxPlies,
		Workers:    1,
		Verbosity:  1,
		Weights:    DefaultWeights(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream the move log is written to.
func (c *GameConfig) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the game configuration is usable.
func (c *GameConfig) Validate() error {
	if c.BoardSize < chess.DefaultBoardSize {
		return fmt.Errorf("board size %d below %d: %w",
			c.BoardSize, chess.DefaultBoardSize, errors.ErrInvalidConfig)
	}
	if c.MaxPlies < 1 {
		return fmt.Errorf("max plies %d: %w", c.MaxPlies, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return c.Weights.Validate()
}
