// Package errors provides sentinel errors and error types for the chess core.
// Construction-time problems are reported through these sentinels; query-time
// problems inside the rules engine are never errors and resolve to false or
// an empty result instead.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidColour indicates a piece was created with a colour other than
	// White or Black.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidPieceKind indicates a piece was created with an unknown kind.
	ErrInvalidPieceKind = errors.New("invalid piece kind")

	// ErrInvalidDimension indicates a board dimension that cannot hold the
	// requested setup.
	ErrInvalidDimension = errors.New("invalid board dimension")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoMoves indicates the side to move has no legal move.
	ErrNoMoves = errors.New("no legal moves")

	// ErrGameNotFound indicates a game record missing from the store.
	ErrGameNotFound = errors.New("game not found")
)

// MoveError wraps errors with move context. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // 1-based ply number (0 if not applicable)
	Move  string // Coordinate notation of the move (if known)
	Piece string // Description of the moving piece (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
