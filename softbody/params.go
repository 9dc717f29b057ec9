package softbody

import (
	"fmt"

	"github.com/milk9111/blobdrop/common"
)

// Params tunes body construction and the per-tick integrator.
type Params struct {
	Nodes      int
	Attraction float64
	Repulsion  float64
	// CrossBraceStride connects node i to node i+stride with a plain spring.
	// Zero disables cross-braces.
	CrossBraceStride int

	Substeps        int
	Gravity         common.Vec2
	Pressure        float64
	Friction        float64
	SettleThreshold float64

	WallMargin    float64
	Restitution   float64
	RepulsionGain float64
}

// DefaultParams returns the tuning the game ships with.
func DefaultParams() Params {
	return Params{
		Nodes:           40,
		Attraction:      0.6,
		Repulsion:       0.6,
		Substeps:        10,
		Gravity:         common.V(0, 0.2),
		Pressure:        0.001,
		Friction:        0.99,
		SettleThreshold: 0.1,
		WallMargin:      4,
		Restitution:     0.3,
		RepulsionGain:   0.1,
	}
}

// Validate reports the first parameter that would break the integrator.
func (p Params) Validate() error {
	switch {
	case p.Nodes < 3:
		return fmt.Errorf("softbody: %d nodes: %w", p.Nodes, ErrTooFewNodes)
	case p.Substeps < 1:
		return fmt.Errorf("softbody: substeps %d: %w", p.Substeps, ErrInvalidParams)
	case p.Friction <= 0 || p.Friction > 1:
		return fmt.Errorf("softbody: friction %v: %w", p.Friction, ErrInvalidParams)
	case p.CrossBraceStride < 0:
		return fmt.Errorf("softbody: cross brace stride %d: %w", p.CrossBraceStride, ErrInvalidParams)
	case p.SettleThreshold < 0 || p.WallMargin < 0 || p.Restitution < 0:
		return fmt.Errorf("softbody: negative threshold, margin or restitution: %w", ErrInvalidParams)
	}
	return nil
}
