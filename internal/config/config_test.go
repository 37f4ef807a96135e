package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesscore/internal/errors"
)

// TestDefaultWeights verifies the standard weights
func TestDefaultWeights(t *testing.T) {
	want := Weights{
		Material:      1.0,
		Mobility:      0.05,
		PawnStructure: 0.2,
		KingSafety:    0.5,
		CenterControl: 0.1,
		Mate:          1000000,
		MaxMobility:   40,
	}
	if diff := cmp.Diff(want, DefaultWeights()); diff != "" {
		t.Errorf("DefaultWeights() mismatch (-want +got):\n%s", diff)
	}
}

func TestWeights_MobilityScale(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{40, 40},
		{0, 1},
		{12.5, 12.5},
	}
	for _, tt := range tests {
		w := DefaultWeights()
		w.MaxMobility = tt.max
		if got := w.MobilityScale(); got != tt.want {
			t.Errorf("MobilityScale() with MaxMobility %g = %g, want %g", tt.max, got, tt.want)
		}
	}
}

func TestWeightsFromMap(t *testing.T) {
	w := WeightsFromMap(map[string]float64{
		"material":    2,
		"king_safety": 0,
		"unknown":     99,
	})
	want := DefaultWeights()
	want.Material = 2
	want.KingSafety = 0
	if diff := cmp.Diff(want, w); diff != "" {
		t.Errorf("WeightsFromMap() mismatch (-want +got):\n%s", diff)
	}
}

// TestGameConfig_Defaults verifies GameConfig has sensible defaults
func TestGameConfig_Defaults(t *testing.T) {
	cfg := NewGameConfig()

	if cfg.BoardSize != 8 {
		t.Errorf("BoardSize = %d, want 8", cfg.BoardSize)
	}
	if cfg.Mode != Greedy {
		t.Errorf("Mode = %v, want greedy", cfg.Mode)
	}
	if cfg.MaxPlies != 200 {
		t.Errorf("MaxPlies = %d, want 200", cfg.MaxPlies)
	}
	if cfg.StoreDir != "" {
		t.Errorf("StoreDir = %q, want empty", cfg.StoreDir)
	}
	if cfg.OutputFile != os.Stdout || cfg.LogFile != os.Stderr {
		t.Error("default streams should be stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}
}

func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*GameConfig)
		wantErr bool
	}{
		{"defaults", func(*GameConfig) {}, false},
		{"larger board", func(c *GameConfig) { c.BoardSize = 10 }, false},
		{"board too small", func(c *GameConfig) { c.BoardSize = 6 }, true},
		{"no plies", func(c *GameConfig) { c.MaxPlies = 0 }, true},
		{"no workers", func(c *GameConfig) { c.Workers = 0 }, true},
		{"zero mate score", func(c *GameConfig) { c.Weights.Mate = 0 }, true},
		{"negative max mobility", func(c *GameConfig) { c.Weights.MaxMobility = -1 }, true},
		{"zero max mobility", func(c *GameConfig) { c.Weights.MaxMobility = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewGameConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range []Mode{Greedy, Random, First} {
		got, err := ParseMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseMode(%q) = %v, %v, want %v", mode.String(), got, err, mode)
		}
	}
	if _, err := ParseMode("manual"); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("ParseMode(manual) error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoad(t *testing.T) {
	input := `
# self-play settings
board_size = 10
mode = random
seed=42
max_plies = 80
workers = 4
store_dir = /tmp/games

# weights
material = 1.5
max_mobility = 0
colour_scheme = dark
this line has no separator
`
	cfg, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.BoardSize != 10 {
		t.Errorf("BoardSize = %d, want 10", cfg.BoardSize)
	}
	if cfg.Mode != Random {
		t.Errorf("Mode = %v, want random", cfg.Mode)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.MaxPlies != 80 {
		t.Errorf("MaxPlies = %d, want 80", cfg.MaxPlies)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.StoreDir != "/tmp/games" {
		t.Errorf("StoreDir = %q, want /tmp/games", cfg.StoreDir)
	}

	want := DefaultWeights()
	want.Material = 1.5
	want.MaxMobility = 0
	if diff := cmp.Diff(want, cfg.Weights); diff != "" {
		t.Errorf("Weights mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(DefaultWeights(), cfg.Weights); diff != "" {
		t.Errorf("Weights mismatch (-want +got):\n%s", diff)
	}
	if cfg.BoardSize != 8 || cfg.MaxPlies != 200 {
		t.Errorf("BoardSize, MaxPlies = %d, %d, want 8, 200", cfg.BoardSize, cfg.MaxPlies)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"bad weight", "material = heavy", "line 1"},
		{"bad size", "# size\nboard_size = eight", "line 2"},
		{"bad seed", "seed = 1.5", "line 1"},
		{"bad mode", "mode = manual", "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			if !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("Load() error = %q, want mention of %q", err, tt.line)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, found, err := LoadFile(filepath.Join(dir, "absent.txt"))
		if err != nil {
			t.Fatalf("LoadFile() error: %v", err)
		}
		if found {
			t.Error("found = true for a missing file")
		}
		if cfg.Mode != Greedy {
			t.Errorf("Mode = %v, want greedy", cfg.Mode)
		}
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(dir, "config.txt")
		if err := os.WriteFile(path, []byte("mode = first\nmobility = 0.1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, found, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error: %v", err)
		}
		if !found {
			t.Error("found = false for an existing file")
		}
		if cfg.Mode != First || cfg.Weights.Mobility != 0.1 {
			t.Errorf("Mode, Mobility = %v, %g, want first, 0.1", cfg.Mode, cfg.Weights.Mobility)
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.txt")
		if err := os.WriteFile(path, []byte("max_plies = lots\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, err := LoadFile(path); !stderrors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("LoadFile() error = %v, want ErrInvalidConfig", err)
		}
	})
}

// TestGameConfig_SetOutput verifies output stream setting
func TestGameConfig_SetOutput(t *testing.T) {
	cfg := NewGameConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestBuilder verifies the builder pattern works correctly
func TestBuilder(t *testing.T) {
	var log bytes.Buffer
	w := DefaultWeights()
	w.CenterControl = 0.3

	cfg := NewBuilder().
		WithBoardSize(12).
		WithMode(First).
		WithSeed(7).
		WithMaxPlies(30).
		WithWorkers(3).
		WithStoreDir("games").
		WithWeights(w).
		WithLog(&log).
		WithVerbosity(2).
		Build()

	if cfg.BoardSize != 12 || cfg.Mode != First || cfg.Seed != 7 {
		t.Errorf("BoardSize, Mode, Seed = %d, %v, %d", cfg.BoardSize, cfg.Mode, cfg.Seed)
	}
	if cfg.MaxPlies != 30 || cfg.Workers != 3 || cfg.StoreDir != "games" {
		t.Errorf("MaxPlies, Workers, StoreDir = %d, %d, %q", cfg.MaxPlies, cfg.Workers, cfg.StoreDir)
	}
	if cfg.Weights.CenterControl != 0.3 {
		t.Errorf("CenterControl = %g, want 0.3", cfg.Weights.CenterControl)
	}
	if cfg.LogFile != &log || cfg.Verbosity != 2 {
		t.Error("WithLog/WithVerbosity not applied")
	}
}
