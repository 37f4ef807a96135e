package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Board is a square grid of optionally occupied squares plus the ordered
// history of applied moves. Each occupied square owns its Piece.
type Board struct {
	// squares[row][col]; nil means empty.
	squares [][]*Piece

	// Dimension fixed at construction.
	size int

	// Append-only record of applied moves, used for en passant.
	history []HistoryEntry

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint
}

// backRank is the standard piece order on files 0-7.
var backRank = [DefaultBoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewEmptyBoard creates an empty board of dimension n.
func NewEmptyBoard(n int) (*Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("dimension %d: %w", n, errors.ErrInvalidDimension)
	}
	b := &Board{
		size:       n,
		squares:    make([][]*Piece, n),
		ToMove:     White,
		MoveNumber: 1,
	}
	for row := range b.squares {
		b.squares[row] = make([]*Piece, n)
	}
	return b, nil
}

// NewStandardBoard creates a board of dimension n with the standard starting
// position. The eight standard files occupy columns 0-7; any further columns
// start empty. n must be at least 8.
func NewStandardBoard(n int) (*Board, error) {
	if n < DefaultBoardSize {
		return nil, fmt.Errorf("standard setup needs %d files, got %d: %w",
			DefaultBoardSize, n, errors.ErrInvalidDimension)
	}
	b, err := NewEmptyBoard(n)
	if err != nil {
		return nil, err
	}
	b.SetupInitialPosition()
	return b, nil
}

// NewBoard creates a standard 8x8 board in the starting position.
func NewBoard() *Board {
	b, err := NewStandardBoard(DefaultBoardSize)
	if err != nil {
		panic(err)
	}
	return b
}

// SetupInitialPosition clears the board and sets up the standard chess
// starting position. History is discarded.
func (b *Board) SetupInitialPosition() {
	for row := range b.squares {
		for col := range b.squares[row] {
			b.squares[row][col] = nil
		}
	}
	last := b.size - 1
	if last >= DefaultBoardSize-1 {
		for col := 0; col < DefaultBoardSize; col++ {
			b.Place(MustPiece(backRank[col], White, Pos(0, col)))
			b.Place(MustPiece(Pawn, White, Pos(1, col)))
			b.Place(MustPiece(Pawn, Black, Pos(last-1, col)))
			b.Place(MustPiece(backRank[col], Black, Pos(last, col)))
		}
	}
	b.history = nil
	b.ToMove = White
	b.MoveNumber = 1
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether pos lies on the board.
func (b *Board) InBounds(pos Position) bool {
	return pos.InBounds(b.size)
}

// At returns the piece on pos, or nil if the square is empty or off the board.
func (b *Board) At(pos Position) *Piece {
	if !b.InBounds(pos) {
		return nil
	}
	return b.squares[pos.Row][pos.Col]
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	return b.InBounds(pos) && b.squares[pos.Row][pos.Col] == nil
}

// Place puts p on the square given by p.Pos, replacing any occupant.
// It returns false if p.Pos is off the board.
func (b *Board) Place(p *Piece) bool {
	if p == nil || !b.InBounds(p.Pos) {
		return false
	}
	b.squares[p.Pos.Row][p.Pos.Col] = p
	return true
}

// Remove clears pos and returns the piece that stood there, if any.
func (b *Board) Remove(pos Position) *Piece {
	if !b.InBounds(pos) {
		return nil
	}
	p := b.squares[pos.Row][pos.Col]
	b.squares[pos.Row][pos.Col] = nil
	return p
}

// Pieces returns the pieces of the given colour in row-major board order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var pieces []*Piece
	for _, rank := range b.squares {
		for _, p := range rank {
			if p != nil && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// AllPieces returns every piece on the board in row-major order.
func (b *Board) AllPieces() []*Piece {
	var pieces []*Piece
	for _, rank := range b.squares {
		for _, p := range rank {
			if p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// PieceCount returns the number of pieces on the board.
func (b *Board) PieceCount() int {
	n := 0
	for _, rank := range b.squares {
		for _, p := range rank {
			if p != nil {
				n++
			}
		}
	}
	return n
}

// King returns the first king of the given colour in row-major order, or nil.
func (b *Board) King(colour Colour) *Piece {
	for _, rank := range b.squares {
		for _, p := range rank {
			if p != nil && p.Kind == King && p.Colour == colour {
				return p
			}
		}
	}
	return nil
}

// History returns a copy of the applied move history, oldest first.
func (b *Board) History() []HistoryEntry {
	h := make([]HistoryEntry, len(b.history))
	copy(h, b.history)
	return h
}

// HistoryLen returns the number of recorded moves.
func (b *Board) HistoryLen() int {
	return len(b.history)
}

// LastMove returns the most recent history entry.
func (b *Board) LastMove() (HistoryEntry, bool) {
	if len(b.history) == 0 {
		return HistoryEntry{}, false
	}
	return b.history[len(b.history)-1], true
}

// RecordHistory appends an entry without moving any piece. It lets a
// position loaded from FEN carry its en passant context.
func (b *Board) RecordHistory(h HistoryEntry) {
	b.history = append(b.history, h)
}

// Clone creates a deep copy of the board. The copy shares no squares, pieces
// or history storage with b.
func (b *Board) Clone() *Board {
	c := &Board{
		size:       b.size,
		squares:    make([][]*Piece, b.size),
		ToMove:     b.ToMove,
		MoveNumber: b.MoveNumber,
	}
	for row, rank := range b.squares {
		c.squares[row] = make([]*Piece, b.size)
		for col, p := range rank {
			if p != nil {
				c.squares[row][col] = p.Clone()
			}
		}
	}
	if len(b.history) > 0 {
		c.history = make([]HistoryEntry, len(b.history))
		copy(c.history, b.history)
	}
	return c
}

// Apply performs m on the board without any legality checking. The moving
// piece is taken from m.From, so m may have been generated on a clone.
// Castling also moves the rook, en passant removes the passed pawn and a
// promotion replaces the pawn. It returns false if m.From is empty or either
// square is off the board.
func (b *Board) Apply(m Move) bool {
	piece := b.At(m.From)
	if piece == nil || !b.InBounds(m.To) {
		return false
	}
	colour := piece.Colour
	movedKind := piece.Kind

	if m.EnPassant {
		b.Remove(Pos(m.From.Row, m.To.Col))
	}
	if m.Castle {
		b.hopCastlingRook(m.From, m.To)
	}

	b.Remove(m.From)
	piece.Pos = m.To
	piece.Moved = true
	if m.IsPromotion() {
		piece = &Piece{Kind: m.Promotion, Colour: colour, Pos: m.To, Moved: true}
	}
	b.Place(piece)

	b.history = append(b.history, HistoryEntry{Kind: movedKind, Colour: colour, From: m.From, To: m.To})
	if colour == Black {
		b.MoveNumber++
	}
	b.ToMove = colour.Opposite()
	return true
}

// hopCastlingRook moves the rook nearest to the king in the castling
// direction onto the square the king crosses.
func (b *Board) hopCastlingRook(kingFrom, kingTo Position) {
	dir := 1
	if kingTo.Col < kingFrom.Col {
		dir = -1
	}
	for sq := kingFrom.Add(0, dir); b.InBounds(sq); sq = sq.Add(0, dir) {
		if rook := b.At(sq); rook != nil {
			if rook.Kind == Rook && rook.Colour == b.At(kingFrom).Colour {
				b.Remove(sq)
				rook.Pos = kingFrom.Add(0, dir)
				rook.Moved = true
				b.Place(rook)
			}
			return
		}
	}
}
