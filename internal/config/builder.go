package config

import "io"

// Builder provides a fluent API for building GameConfig instances.
type Builder struct {
	cfg *GameConfig
}

// NewBuilder creates a new Builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: NewGameConfig(),
	}
}

// Build returns the built GameConfig.
func (b *Builder) Build() *GameConfig {
	return b.cfg
}

// WithBoardSize sets the board dimension.
func (b *Builder) WithBoardSize(n int) *Builder {
	b.cfg.BoardSize = n
	return b
}

// WithMode sets the move selection mode.
func (b *Builder) WithMode(mode Mode) *Builder {
	b.cfg.Mode = mode
	return b
}

// WithSeed sets the random seed.
func (b *Builder) WithSeed(seed int64) *Builder {
	b.cfg.Seed = seed
	return b
}

// WithMaxPlies sets the ply limit.
func (b *Builder) WithMaxPlies(n int) *Builder {
	b.cfg.MaxPlies = n
	return b
}

// WithWorkers sets the number of scoring workers.
func (b *Builder) WithWorkers(n int) *Builder {
	b.cfg.Workers = n
	return b
}

// WithStoreDir enables game persistence under dir.
func (b *Builder) WithStoreDir(dir string) *Builder {
	b.cfg.StoreDir = dir
	return b
}

// WithWeights replaces the evaluation weights.
func (b *Builder) WithWeights(w Weights) *Builder {
	b.cfg.Weights = w
	return b
}

// WithOutput sets the output writer.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *Builder) WithLog(w io.Writer) *Builder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *Builder) WithVerbosity(level int) *Builder {
	b.cfg.Verbosity = level
	return b
}
