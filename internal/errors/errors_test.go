package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidColour", ErrInvalidColour, ErrInvalidColour},
		{"ErrInvalidPieceKind", ErrInvalidPieceKind, ErrInvalidPieceKind},
		{"ErrInvalidDimension", ErrInvalidDimension, ErrInvalidDimension},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrNoMoves", ErrNoMoves, ErrNoMoves},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies that no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrInvalidColour, ErrInvalidPieceKind, ErrInvalidDimension,
		ErrInvalidFEN, ErrIllegalMove, ErrInvalidConfig, ErrNoMoves,
		ErrGameNotFound,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to create piece: %w", ErrInvalidColour)

	if !errors.Is(wrapped, ErrInvalidColour) {
		t.Errorf("errors.Is(wrapped, ErrInvalidColour) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:   ErrIllegalMove,
				Ply:   12,
				Move:  "e1g1",
				Piece: "White King",
			},
			contains: []string{"ply 12", "e1g1", "White King", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrNoMoves},
			contains: []string{"no legal moves"},
		},
		{
			name:     "no underlying error",
			err:      &MoveError{Ply: 3},
			contains: []string{"ply 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, Ply: 7, Move: "a2a5"}
	wrapped := fmt.Errorf("driver failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 7 {
		t.Errorf("extracted.Ply = %d, want 7", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidDimension, "dimension %d", 5)

	if !errors.Is(wrapped, ErrInvalidDimension) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "dimension 5") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
