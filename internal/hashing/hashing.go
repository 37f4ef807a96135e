// Package hashing provides duplicate detection for self-play games.
package hashing

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/chesscore/internal/chess"
)

// zobristKey derives the key for kind/colour on pos. Keys are computed
// rather than tabled so that any board dimension hashes the same way.
func zobristKey(kind chess.PieceKind, colour chess.Colour, pos chess.Position) uint64 {
	var buf [10]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(pos.Row))
	binary.LittleEndian.PutUint32(buf[4:], uint32(pos.Col))
	buf[8] = byte(kind)
	buf[9] = byte(colour)
	return xxhash.Sum64(buf[:])
}

var blackToMoveKey = xxhash.Sum64String("black to move")

// GenerateZobristHash hashes the placement and side to move of board.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for _, p := range board.AllPieces() {
		hash ^= zobristKey(p.Kind, p.Colour, p.Pos)
	}
	if board.ToMove == chess.Black {
		hash ^= blackToMoveKey
	}
	return hash
}

// WeakHash is a cheap secondary hash: material weighted by square index.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	n := board.Size()
	for _, p := range board.AllPieces() {
		square := uint32(p.Pos.Row*n + p.Pos.Col + 1)
		hash += square * uint32(p.Kind.Value()+1) * uint32(p.Colour+1)
	}
	return hash
}

// HashMoveSequence hashes the coordinate text of a move list.
func HashMoveSequence(moves []string) uint64 {
	d := xxhash.New()
	for _, m := range moves {
		_, _ = d.WriteString(m)
		_, _ = d.WriteString(" ")
	}
	return d.Sum64()
}

// DuplicateDetector tracks seen games for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures keyed by final position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also compares the move sequence
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	// size is the number of stored signatures
	size int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// MoveCount is the number of half-moves in the game
	MoveCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// Sequence hashes the moves themselves
	Sequence uint64
}

// NewDuplicateDetector creates a new duplicate detector. maxCapacity of 0
// means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature builds the signature of a game ending on board.
func Signature(moves []string, board *chess.Board) GameSignature {
	return GameSignature{
		Hash:      GenerateZobristHash(board),
		MoveCount: len(moves),
		WeakHash:  WeakHash(board),
		Sequence:  HashMoveSequence(moves),
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the detector is full, new
// games are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(moves []string, board *chess.Board) bool {
	if board == nil {
		return false
	}
	sig := Signature(moves, board)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch {
		return a.MoveCount == b.MoveCount && a.Sequence == b.Sequence
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.size = 0
}
