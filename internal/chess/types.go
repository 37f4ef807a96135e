// Package chess provides the core chess data model: colours, piece kinds,
// positions, pieces, moves and the board that owns them.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return fmt.Sprintf("Colour(%d)", int(c))
}

// Valid reports whether c is White or Black.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance: +1 for White, -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceKind is the closed set of chess piece types.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	if k >= NoKind && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Valid reports whether k is one of the six piece kinds.
func (k PieceKind) Valid() bool {
	return k >= Pawn && k <= King
}

// Value returns the relative material value of the kind. Kings are worth 0.
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// Letter returns the single letter representation of a kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := [NumKinds]byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= NoKind && k < NumKinds {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = []PieceKind{Queen, Rook, Bishop, Knight}

// DefaultBoardSize is the dimension of a standard chess board.
const DefaultBoardSize = 8

// Position is a (row, column) square coordinate. Row 0 is White's back rank.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for constructing a Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether the position lies on a board of dimension n.
func (p Position) InBounds(n int) bool {
	return p.Row >= 0 && p.Row < n && p.Col >= 0 && p.Col < n
}

// Add returns the position offset by the given row and column deltas.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns the algebraic name of the square (e.g. "e4").
// Files beyond 'z' fall back to a numeric form.
func (p Position) String() string {
	if p.Col >= 0 && p.Col < 26 && p.Row >= 0 {
		return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
	}
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ParsePosition parses an algebraic square name such as "e4" or "c10".
func ParsePosition(s string) (Position, bool) {
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return Position{}, false
	}
	row := 0
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Position{}, false
		}
		row = row*10 + int(s[i]-'0')
	}
	if row < 1 {
		return Position{}, false
	}
	return Position{Row: row - 1, Col: int(s[0] - 'a')}, true
}

// CastleSide selects kingside or queenside castling.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// Direction returns the column direction the king travels when castling.
func (s CastleSide) Direction() int {
	if s == Kingside {
		return 1
	}
	return -1
}
