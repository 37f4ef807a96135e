package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Piece is a chess piece owned by the board square it occupies.
type Piece struct {
	Kind   PieceKind
	Colour Colour
	Pos    Position

	// Moved is set once the piece has left its starting square.
	// Castling eligibility depends on it.
	Moved bool
}

// NewPiece creates a piece, failing fast on an invalid colour or kind.
func NewPiece(kind PieceKind, colour Colour, pos Position) (*Piece, error) {
	if !colour.Valid() {
		return nil, fmt.Errorf("colour %d: %w", int(colour), errors.ErrInvalidColour)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("kind %d: %w", int(kind), errors.ErrInvalidPieceKind)
	}
	return &Piece{Kind: kind, Colour: colour, Pos: pos}, nil
}

// MustPiece is like NewPiece but panics on error. Intended for fixed setups.
func MustPiece(kind PieceKind, colour Colour, pos Position) *Piece {
	p, err := NewPiece(kind, colour, pos)
	if err != nil {
		panic(err)
	}
	return p
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Value returns the material value of the piece.
func (p *Piece) Value() int {
	return p.Kind.Value()
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String describes the piece, e.g. "White Knight on g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v on %v", p.Colour, p.Kind, p.Pos)
}
