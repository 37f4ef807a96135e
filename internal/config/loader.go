package config

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Game setting keys recognised in configuration files.
const (
	KeyBoardSize = "board_size"
	KeyMode      = "mode"
	KeySeed      = "seed"
	KeyMaxPlies  = "max_plies"
	KeyWorkers   = "workers"
	KeyStoreDir  = "store_dir"
	KeyVerbosity = "verbosity"
)

// Load reads "key = value" lines from r on top of the defaults. Blank lines
// and lines starting with # are skipped, as are lines without '=' and
// unknown keys. A value that does not parse is an error.
func Load(r io.Reader) (*GameConfig, error) {
	cfg := NewGameConfig()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if err := cfg.set(key, value); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	return cfg, nil
}

// LoadFile reads the configuration file at path. A missing file yields the
// defaults; found reports whether the file existed.
func LoadFile(path string) (cfg *GameConfig, found bool, err error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return NewGameConfig(), false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	cfg, err = Load(f)
	if err != nil {
		return nil, true, errors.Wrapf(err, "config %s", path)
	}
	return cfg, true, nil
}

// set applies one key/value pair. Unknown keys are ignored.
func (c *GameConfig) set(key, value string) error {
	var err error
	switch key {
	case KeyBoardSize:
		c.BoardSize, err = parseInt(key, value)
	case KeyMode:
		c.Mode, err = ParseMode(value)
	case KeySeed:
		c.Seed, err = strconv.ParseInt(value, 10, 64)
		if err != nil {
			err = invalidValue(key, value)
		}
	case KeyMaxPlies:
		c.MaxPlies, err = parseInt(key, value)
	case KeyWorkers:
		c.Workers, err = parseInt(key, value)
	case KeyStoreDir:
		c.StoreDir = value
	case KeyVerbosity:
		c.Verbosity, err = parseInt(key, value)
	default:
		var w Weights
		if !w.Set(key, 0) {
			return nil
		}
		f, perr := strconv.ParseFloat(value, 64)
		if perr != nil {
			return invalidValue(key, value)
		}
		c.Weights.Set(key, f)
	}
	return err
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, invalidValue(key, value)
	}
	return n, nil
}

func invalidValue(key, value string) error {
	return fmt.Errorf("invalid value %q for %s: %w", value, key, errors.ErrInvalidConfig)
}
