package mesh

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is wrapped by every parameter validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// SphereParams describes a UV sphere: longitude divisions (segments),
// latitude divisions (rings), and a multiplier that scales both uniformly.
// The multiplier exists so the stress scenarios can inflate the default
// 16x8 sphere without touching the base shape.
type SphereParams struct {
	Radius     float64
	Segments   int
	Rings      int
	Multiplier int
}

// DefaultSphereParams match the playground scenario's defaults.
func DefaultSphereParams() SphereParams {
	return SphereParams{Radius: 1.0, Segments: 16, Rings: 8, Multiplier: 1}
}

// EffectiveSegments returns the segment count after applying the multiplier.
func (p SphereParams) EffectiveSegments() int { return p.Segments * p.Multiplier }

// EffectiveRings returns the ring count after applying the multiplier.
func (p SphereParams) EffectiveRings() int { return p.Rings * p.Multiplier }

// ExpectedVertexCount returns 2 + (R-1)*S for effective counts R and S:
// one vertex per pole plus R-1 interior rings of S vertices.
func (p SphereParams) ExpectedVertexCount() int {
	return 2 + (p.EffectiveRings()-1)*p.EffectiveSegments()
}

// ExpectedTriangleCount returns 2*S*(R-1): two pole fans of S triangles
// plus R-2 quad bands of 2*S triangles.
func (p SphereParams) ExpectedTriangleCount() int {
	return 2 * p.EffectiveSegments() * (p.EffectiveRings() - 1)
}

// Validate reports the first out-of-range field. Multiplied counts can only
// grow, so checking the base fields also covers the effective counts.
func (p SphereParams) Validate() error {
	if p.Radius <= 0 {
		return fmt.Errorf("%w: radius must be > 0, not %v", ErrInvalidParameter, p.Radius)
	}
	if p.Segments < 3 {
		return fmt.Errorf("%w: segments must be >= 3, not %d", ErrInvalidParameter, p.Segments)
	}
	if p.Rings < 2 {
		return fmt.Errorf("%w: rings must be >= 2, not %d", ErrInvalidParameter, p.Rings)
	}
	if p.Multiplier < 1 {
		return fmt.Errorf("%w: multiplier must be >= 1, not %d", ErrInvalidParameter, p.Multiplier)
	}
	return nil
}
