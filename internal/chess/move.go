package chess

import "strings"

// Move represents a single move of one piece with its derived flags.
type Move struct {
	// The piece being moved, as it stood on the board the move was generated from.
	Piece *Piece

	// Source and destination squares.
	From Position
	To   Position

	// Capture is set when the destination holds an opposing piece,
	// or for an en passant capture.
	Capture bool

	// Castle is set for the king's two-square castling move.
	Castle bool

	// EnPassant is set for a pawn capturing en passant.
	EnPassant bool

	// Promotion is the kind a pawn becomes on the last rank (NoKind otherwise).
	Promotion PieceKind
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(m.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// ParseCoordinates parses a move in coordinate notation such as "e2e4",
// "a7a8q" or "b10b12" on larger boards. A trailing piece letter selects the
// promotion kind.
func ParseCoordinates(s string) (from, to Position, promotion PieceKind, ok bool) {
	split := squareEnd(s, 0)
	if split < 0 {
		return from, to, NoKind, false
	}
	end := squareEnd(s, split)
	if end < 0 {
		return from, to, NoKind, false
	}
	from, _ = ParsePosition(s[:split])
	to, _ = ParsePosition(s[split:end])

	switch rest := s[end:]; len(rest) {
	case 0:
	case 1:
		promotion = KindFromLetter(rest[0])
		if promotion == NoKind {
			return from, to, NoKind, false
		}
	default:
		return from, to, NoKind, false
	}
	return from, to, promotion, true
}

// squareEnd returns the index just past the square starting at s[i], or -1.
func squareEnd(s string, i int) int {
	if i >= len(s) || s[i] < 'a' || s[i] > 'z' {
		return -1
	}
	j := i + 1
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i+1 {
		return -1
	}
	if _, ok := ParsePosition(s[i:j]); !ok {
		return -1
	}
	return j
}

// HistoryEntry records one applied move. It is a value snapshot and never
// refers to a live piece.
type HistoryEntry struct {
	Kind   PieceKind
	Colour Colour
	From   Position
	To     Position
}

// IsDoublePawnPush reports whether the entry is a pawn's two-square advance.
func (h HistoryEntry) IsDoublePawnPush() bool {
	if h.Kind != Pawn || h.From.Col != h.To.Col {
		return false
	}
	d := h.To.Row - h.From.Row
	return d == 2 || d == -2
}
