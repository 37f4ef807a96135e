// Package store keeps finished self-play games in a badger database.
package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Storage keys
const (
	gamePrefix = "game/"
	keyNextID  = "meta/next_id"
)

// Game results, written the way PGN writes them.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// GameRecord is one finished game.
type GameRecord struct {
	ID          uint64    `json:"id"`
	BoardSize   int       `json:"board_size"`
	StartFEN    string    `json:"start_fen"`
	Moves       []string  `json:"moves"`
	Result      string    `json:"result"`
	Termination string    `json:"termination"`
	Mode        string    `json:"mode"`
	Seed        int64     `json:"seed"`
	Finished    time.Time `json:"finished"`
}

// Plies returns the number of half-moves in the game.
func (r *GameRecord) Plies() int {
	return len(r.Moves)
}

// Replay rebuilds the final position by playing the recorded moves from
// the start position.
func (r *GameRecord) Replay() (*chess.Board, error) {
	board, err := engine.NewBoardFromFEN(r.StartFEN)
	if err != nil {
		return nil, errors.Wrapf(err, "game %d", r.ID)
	}
	rules := engine.NewRules(board)
	for _, text := range r.Moves {
		if _, err := rules.ApplyText(text); err != nil {
			return nil, errors.Wrapf(err, "game %d", r.ID)
		}
	}
	return board, nil
}

// Stats summarises the stored games.
type Stats struct {
	Games      int
	WhiteWins  int
	BlackWins  int
	Draws      int
	Unfinished int
	TotalPlies int
}

// AveragePlies returns the mean game length, or 0 with no games.
func (s Stats) AveragePlies() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.Games)
}

// Store wraps BadgerDB for persistent storage
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", dir)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open in-memory store")
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id uint64) []byte {
	// Zero padding keeps keys in id order during iteration.
	return []byte(fmt.Sprintf("%s%020d", gamePrefix, id))
}

// SaveGame stores rec. A record with ID 0 is assigned the next free id,
// which is written back into rec.
func (s *Store) SaveGame(rec *GameRecord) error {
	if rec.Finished.IsZero() {
		rec.Finished = time.Now()
	}
	if rec.Result == "" {
		rec.Result = Unfinished
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if rec.ID == 0 {
			id, err := nextID(txn)
			if err != nil {
				return err
			}
			rec.ID = id
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return txn.Set(gameKey(rec.ID), data)
	})
}

// nextID reserves an id inside txn.
func nextID(txn *badger.Txn) (uint64, error) {
	var last uint64
	item, err := txn.Get([]byte(keyNextID))
	switch {
	case err == badger.ErrKeyNotFound:
	case err != nil:
		return 0, err
	default:
		err = item.Value(func(val []byte) error {
			var perr error
			last, perr = strconv.ParseUint(string(val), 10, 64)
			return perr
		})
		if err != nil {
			return 0, err
		}
	}

	id := last + 1
	if err := txn.Set([]byte(keyNextID), []byte(strconv.FormatUint(id, 10))); err != nil {
		return 0, err
	}
	return id, nil
}

// LoadGame loads the record with the given id.
func (s *Store) LoadGame(id uint64) (*GameRecord, error) {
	rec := &GameRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrGameNotFound, "id %d", id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteGame removes the record with the given id.
func (s *Store) DeleteGame(id uint64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(id)); err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrGameNotFound, "id %d", id)
		} else if err != nil {
			return err
		}
		return txn.Delete(gameKey(id))
	})
}

// ListGames returns every stored record in id order.
func (s *Store) ListGames() ([]*GameRecord, error) {
	var games []*GameRecord
	err := s.eachGame(func(rec *GameRecord) {
		games = append(games, rec)
	})
	return games, err
}

// Stats tallies results over every stored record.
func (s *Store) Stats() (Stats, error) {
	var stats Stats
	err := s.eachGame(func(rec *GameRecord) {
		stats.Games++
		stats.TotalPlies += rec.Plies()
		switch rec.Result {
		case WhiteWins:
			stats.WhiteWins++
		case BlackWins:
			stats.BlackWins++
		case Draw:
			stats.Draws++
		default:
			stats.Unfinished++
		}
	})
	return stats, err
}

func (s *Store) eachGame(fn func(*GameRecord)) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rec := &GameRecord{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			})
			if err != nil {
				return errors.Wrapf(err, "decode %s", it.Item().Key())
			}
			fn(rec)
		}
		return nil
	})
}
