package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialBoard returns a standard 8x8 board in the starting position.
func NewInitialBoard() *chess.Board {
	return chess.NewBoard()
}

// NewBoardFromFEN creates a board from a FEN string. The number of ranks in
// the placement field sets the board dimension, and every rank must span that
// many files. Kings and rooks without a matching castling right are marked as
// moved; an en passant square is recorded as the preceding double pawn push.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	ranks := strings.Split(parts[0], "/")
	board, err := chess.NewEmptyBoard(len(ranks))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}

	if err := parsePiecePositions(board, ranks); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	parseMoveNumber(board, parts)

	return board, nil
}

// MustFEN is like NewBoardFromFEN but panics on error.
func MustFEN(fen string) *chess.Board {
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePiecePositions parses the piece placement field of a FEN string.
// The first rank listed is the highest row.
func parsePiecePositions(board *chess.Board, ranks []string) error {
	n := board.Size()
	for i, rankText := range ranks {
		row := n - 1 - i
		col := 0
		skip := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			if c >= '0' && c <= '9' {
				skip = skip*10 + int(c-'0')
				continue
			}
			col += skip
			skip = 0

			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= n {
				return fmt.Errorf("rank %d overflows %d files: %w", row+1, n, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			piece := chess.MustPiece(kind, colour, chess.Pos(row, col))
			if kind == chess.Pawn && row != pawnStartRow(board, colour) {
				piece.Moved = true
			}
			board.Place(piece)
			col++
		}
		col += skip
		if col != n {
			return fmt.Errorf("rank %d spans %d files, want %d: %w", row+1, col, n, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A king with no
// right left, and every back-row rook whose side has no right, is marked moved.
func parseCastlingRights(board *chess.Board, parts []string) error {
	rights := "-"
	if len(parts) >= 3 {
		rights = parts[2]
	}

	var has [chess.NumColours][2]bool
	if rights != "-" {
		for _, c := range rights {
			switch c {
			case 'K':
				has[chess.White][chess.Kingside] = true
			case 'Q':
				has[chess.White][chess.Queenside] = true
			case 'k':
				has[chess.Black][chess.Kingside] = true
			case 'q':
				has[chess.Black][chess.Queenside] = true
			default:
				return fmt.Errorf("invalid castling field: %s: %w", rights, errors.ErrInvalidFEN)
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := board.King(colour)
		if king == nil {
			continue
		}
		kingside, queenside := has[colour][chess.Kingside], has[colour][chess.Queenside]
		if !kingside && !queenside {
			king.Moved = true
		}
		for _, p := range board.Pieces(colour) {
			if p.Kind != chess.Rook {
				continue
			}
			if p.Pos.Row != king.Pos.Row ||
				(p.Pos.Col > king.Pos.Col && !kingside) ||
				(p.Pos.Col < king.Pos.Col && !queenside) {
				p.Moved = true
			}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field and records the
// double pawn push that produced it.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, ok := chess.ParsePosition(parts[3])
	if !ok || !board.InBounds(target) {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := board.ToMove.Opposite()
	dir := mover.Forward()
	from, to := target.Add(-dir, 0), target.Add(dir, 0)
	pawn := board.At(to)
	if pawn == nil || pawn.Kind != chess.Pawn || pawn.Colour != mover || !board.IsEmpty(from) {
		// Inconsistent with the placement; ignore as other tools do.
		return nil
	}
	board.RecordHistory(chess.HistoryEntry{Kind: chess.Pawn, Colour: mover, From: from, To: to})
	return nil
}

// parseMoveNumber parses the fullmove number field. The halfmove clock is
// accepted but not tracked.
func parseMoveNumber(board *chess.Board, parts []string) {
	if len(parts) < 6 {
		return
	}
	if n, err := strconv.ParseUint(parts[5], 10, 32); err == nil && n > 0 {
		board.MoveNumber = uint(n)
	}
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	n := board.Size()

	for row := n - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < n; col++ {
			p := board.At(chess.Pos(row, col))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if board.ToMove == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	sb.WriteString(castlingField(board))
	sb.WriteByte(' ')
	sb.WriteString(enPassantField(board))
	fmt.Fprintf(&sb, " 0 %d", board.MoveNumber)

	return sb.String()
}

// castlingField renders the castling rights still held, ignoring attacks.
func castlingField(board *chess.Board) string {
	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := board.King(colour)
		if king == nil || king.Moved {
			continue
		}
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			if castlingRook(board, king, side) == nil {
				continue
			}
			letter := byte('K')
			if side == chess.Queenside {
				letter = 'Q'
			}
			if colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// enPassantField renders the square behind a pawn that just advanced two squares.
func enPassantField(board *chess.Board) string {
	last, ok := board.LastMove()
	if !ok || !last.IsDoublePawnPush() {
		return "-"
	}
	return chess.Pos((last.From.Row+last.To.Row)/2, last.To.Col).String()
}
