package config

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Weights holds the evaluator's term weights and scaling constants.
type Weights struct {
	// Material is the weight of the piece value difference.
	Material float64

	// Mobility is the weight of the legal move count difference.
	Mobility float64

	// PawnStructure weights passed, doubled and isolated pawns.
	PawnStructure float64

	// KingSafety weights pawn shields, attackers and king centralisation.
	KingSafety float64

	// CenterControl weights control of the central squares.
	CenterControl float64

	// Mate is the magnitude returned for a checkmated side.
	Mate float64

	// MaxMobility normalises the mobility difference.
	MaxMobility float64
}

// Weight keys recognised in configuration files.
const (
	KeyMaterial      = "material"
	KeyMobility      = "mobility"
	KeyPawnStructure = "pawn_structure"
	KeyKingSafety    = "king_safety"
	KeyCenterControl = "center_control"
	KeyMate          = "mate"
	KeyMaxMobility   = "max_mobility"
)

// DefaultWeights returns the standard evaluation weights.
func DefaultWeights() Weights {
	return Weights{
		Material:      1.0,
		Mobility:      0.05,
		PawnStructure: 0.2,
		KingSafety:    0.5,
		CenterControl: 0.1,
		Mate:          1e6,
		MaxMobility:   40,
	}
}

// WeightsFromMap returns the defaults overridden by any recognised keys in m.
// Unknown keys are ignored.
func WeightsFromMap(m map[string]float64) Weights {
	w := DefaultWeights()
	for k, v := range m {
		w.Set(k, v)
	}
	return w
}

// Set assigns the weight named by key and reports whether key was recognised.
func (w *Weights) Set(key string, value float64) bool {
	switch key {
	case KeyMaterial:
		w.Material = value
	case KeyMobility:
		w.Mobility = value
	case KeyPawnStructure:
		w.PawnStructure = value
	case KeyKingSafety:
		w.KingSafety = value
	case KeyCenterControl:
		w.CenterControl = value
	case KeyMate:
		w.Mate = value
	case KeyMaxMobility:
		w.MaxMobility = value
	default:
		return false
	}
	return true
}

// MobilityScale returns the divisor for the mobility term: MaxMobility, or
// 1.0 when it is zero.
func (w Weights) MobilityScale() float64 {
	if w.MaxMobility == 0 {
		return 1.0
	}
	return w.MaxMobility
}

// Validate checks that the weights are usable.
func (w Weights) Validate() error {
	if w.Mate <= 0 {
		return fmt.Errorf("mate score %g must be positive: %w", w.Mate, errors.ErrInvalidConfig)
	}
	if w.MaxMobility < 0 {
		return fmt.Errorf("max mobility %g is negative: %w", w.MaxMobility, errors.ErrInvalidConfig)
	}
	return nil
}
