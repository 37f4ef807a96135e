package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Generator enumerates legal moves. Output order is deterministic: pieces and
// destinations are both visited in row-major board order.
type Generator struct {
	rules *Rules
}

// NewGenerator creates a move generator backed by rules.
func NewGenerator(rules *Rules) *Generator {
	return &Generator{rules: rules}
}

// Rules returns the rules engine the generator consults.
func (g *Generator) Rules() *Rules {
	return g.rules
}

// MovesFor returns every square piece can legally move to, in row-major order.
// A piece that is not on the board yields an empty slice.
func (g *Generator) MovesFor(piece *chess.Piece) []chess.Position {
	if !g.rules.owns(piece) {
		return nil
	}
	board := g.rules.board
	n := board.Size()
	var dests []chess.Position
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dest := chess.Pos(row, col)
			if g.rules.IsLegalMove(piece, dest) {
				dests = append(dests, dest)
			}
		}
	}
	return dests
}

// MovesFrom returns the legal destinations of whatever piece stands on pos.
// An empty or off-board square yields an empty slice.
func (g *Generator) MovesFrom(pos chess.Position) []chess.Position {
	piece := g.rules.board.At(pos)
	if piece == nil {
		return nil
	}
	return g.MovesFor(piece)
}

// LegalMoves returns all legal moves for colour: for each piece of that colour
// in row-major order, its destinations from MovesFor. Castling and en passant
// are not included; see AllMoves. Pawn moves onto the last row carry a Queen
// promotion by default.
func (g *Generator) LegalMoves(colour chess.Colour) []chess.Move {
	board := g.rules.board
	var moves []chess.Move
	for _, piece := range board.Pieces(colour) {
		for _, dest := range g.MovesFor(piece) {
			m := chess.Move{
				Piece:   piece,
				From:    piece.Pos,
				To:      dest,
				Capture: board.At(dest) != nil,
			}
			if isPromotionMove(board, piece, dest) {
				m.Promotion = chess.Queen
			}
			moves = append(moves, m)
		}
	}
	return moves
}

// Captures returns the legal moves of colour whose destination holds an
// opposing piece.
func (g *Generator) Captures(colour chess.Colour) []chess.Move {
	var captures []chess.Move
	for _, m := range g.LegalMoves(colour) {
		if m.Capture {
			captures = append(captures, m)
		}
	}
	return captures
}

// CountLegalMoves returns the number of moves LegalMoves would return.
func (g *Generator) CountLegalMoves(colour chess.Colour) int {
	count := 0
	for _, piece := range g.rules.board.Pieces(colour) {
		count += len(g.MovesFor(piece))
	}
	return count
}

// AllMoves returns every legal move for colour including special moves:
// LegalMoves with each promotion expanded to all promotion kinds, followed by
// en passant captures and then castles.
func (g *Generator) AllMoves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, m := range g.LegalMoves(colour) {
		if !m.IsPromotion() {
			moves = append(moves, m)
			continue
		}
		for _, kind := range chess.PromotionKinds {
			m.Promotion = kind
			moves = append(moves, m)
		}
	}

	for _, piece := range g.rules.board.Pieces(colour) {
		if piece.Kind != chess.Pawn {
			continue
		}
		if m, ok := g.rules.EnPassantMove(piece); ok {
			moves = append(moves, m)
		}
	}

	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if m, ok := g.rules.CastleMove(colour, side); ok {
			moves = append(moves, m)
		}
	}
	return moves
}
