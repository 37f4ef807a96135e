package eval

import "github.com/lgbarn/chesscore/internal/chess"

// Pawn structure and king safety constants.
const (
	passedPawnBonus  = 1.0
	doubledPenalty   = 0.5
	isolatedPenalty  = 0.5
	shieldBonus      = 0.25
	attackerPenalty  = 0.6
	centralKingMalus = 0.5
)

// material is own piece value minus opposing piece value.
func (e *Evaluator) material(colour chess.Colour) float64 {
	total := 0
	for _, p := range e.board.Pieces(colour) {
		total += p.Value()
	}
	for _, p := range e.board.Pieces(colour.Opposite()) {
		total -= p.Value()
	}
	return float64(total)
}

// mobility is the legal move count difference divided by scale.
func (e *Evaluator) mobility(colour chess.Colour, scale float64) float64 {
	own := e.gen.CountLegalMoves(colour)
	opp := e.gen.CountLegalMoves(colour.Opposite())
	return float64(own-opp) / scale
}

// pawnsOf returns colour's pawns.
func (e *Evaluator) pawnsOf(colour chess.Colour) []*chess.Piece {
	var pawns []*chess.Piece
	for _, p := range e.board.Pieces(colour) {
		if p.Kind == chess.Pawn {
			pawns = append(pawns, p)
		}
	}
	return pawns
}

// pawnStructure rewards passed pawns and penalises doubled and isolated ones.
func (e *Evaluator) pawnStructure(colour chess.Colour) float64 {
	own := e.pawnsOf(colour)
	enemy := e.pawnsOf(colour.Opposite())

	files := make(map[int]int)
	for _, p := range own {
		files[p.Pos.Col]++
	}

	doubled, isolated := 0, 0
	for file, count := range files {
		if count > 1 {
			doubled += count - 1
		}
		if files[file-1] == 0 && files[file+1] == 0 {
			isolated += count
		}
	}

	passed := 0
	for _, p := range own {
		if isPassed(p, enemy) {
			passed++
		}
	}

	return passedPawnBonus*float64(passed) -
		doubledPenalty*float64(doubled) -
		isolatedPenalty*float64(isolated)
}

// isPassed reports whether no enemy pawn on pawn's file or an adjacent file
// stands further along pawn's direction of advance.
func isPassed(pawn *chess.Piece, enemy []*chess.Piece) bool {
	dir := pawn.Colour.Forward()
	for _, ep := range enemy {
		fileGap := ep.Pos.Col - pawn.Pos.Col
		if fileGap < -1 || fileGap > 1 {
			continue
		}
		if (ep.Pos.Row-pawn.Pos.Row)*dir > 0 {
			return false
		}
	}
	return true
}

// kingSafety rewards pawn shields next to the king and penalises opposing
// pieces able to reach the king's neighbourhood and a king off the edge.
func (e *Evaluator) kingSafety(colour chess.Colour) float64 {
	king := e.board.King(colour)
	if king == nil {
		return 0
	}
	n := e.board.Size()

	central := 0.0
	if king.Pos.Row > 0 && king.Pos.Row < n-1 && king.Pos.Col > 0 && king.Pos.Col < n-1 {
		central = centralKingMalus
	}

	zone := make([]chess.Position, 0, 9)
	shields := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			sq := king.Pos.Add(dr, dc)
			if !e.board.InBounds(sq) {
				continue
			}
			zone = append(zone, sq)
			if sq == king.Pos {
				continue
			}
			if p := e.board.At(sq); p != nil && p.Kind == chess.Pawn && p.Colour == colour {
				shields++
			}
		}
	}

	attackers := 0
	for _, p := range e.board.Pieces(colour.Opposite()) {
		for _, sq := range zone {
			if e.rules.IsLegalMove(p, sq) {
				attackers++
				break
			}
		}
	}

	return shieldBonus*float64(shields) - attackerPenalty*float64(attackers) - central
}

// centralSquares returns the inner 2x2 block of an even board or the inner
// 3x3 block of an odd one, clipped to the board.
func centralSquares(n int) []chess.Position {
	lo, hi := n/2-1, n/2
	if n%2 == 1 {
		hi = n/2 + 1
	}
	lo = max(lo, 0)
	hi = min(hi, n-1)

	var squares []chess.Position
	for row := lo; row <= hi; row++ {
		for col := lo; col <= hi; col++ {
			squares = append(squares, chess.Pos(row, col))
		}
	}
	return squares
}

// controls reports whether colour occupies sq or has a piece that can
// legally move there.
func (e *Evaluator) controls(colour chess.Colour, sq chess.Position) bool {
	if p := e.board.At(sq); p != nil && p.Colour == colour {
		return true
	}
	for _, p := range e.board.Pieces(colour) {
		if e.rules.IsLegalMove(p, sq) {
			return true
		}
	}
	return false
}

// centerControl is the controlled central square difference as a fraction
// of the central squares.
func (e *Evaluator) centerControl(colour chess.Colour) float64 {
	squares := centralSquares(e.board.Size())
	if len(squares) == 0 {
		return 0
	}
	own, opp := 0, 0
	for _, sq := range squares {
		if e.controls(colour, sq) {
			own++
		}
		if e.controls(colour.Opposite(), sq) {
			opp++
		}
	}
	return float64(own-opp) / float64(len(squares))
}
