package physics

import (
	"fmt"
	"math"
)

// QuadraticDrag is the aerodynamic drag model: F = 0.5 * rho * v^2 * CdA.
// Drag depends on instantaneous speed and the caller-supplied drag-area
// parameter, never on time directly.
type QuadraticDrag struct {
	Density float64
}

func NewQuadraticDrag() *QuadraticDrag {
	return &QuadraticDrag{Density: AirDensity}
}

// ForceAt returns the drag force in newtons for speed v. Negative speeds
// clamp to zero; the model does not represent reverse motion.
func (d *QuadraticDrag) ForceAt(v, cda float64) float64 {
	if v < 0 {
		v = 0
	}
	return 0.5 * d.Density * v * v * cda
}

// Over evaluates the drag force over a velocity series.
func (d *QuadraticDrag) Over(vs []float64, cda float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = d.ForceAt(v, cda)
	}
	return out
}

// Drag implements the engine's drag collaborator.
func (d *QuadraticDrag) Drag(vs []float64, cda float64) []float64 {
	return d.Over(vs, cda)
}

// ValidateCdA checks a drag-area value against the plausibility band
// before a run starts. It is a precondition check, not part of the
// integration itself.
func ValidateCdA(cda float64) error {
	if math.IsNaN(cda) || math.IsInf(cda, 0) {
		return fmt.Errorf("CdA must be a finite number")
	}
	if cda <= 0 {
		return fmt.Errorf("CdA must be positive")
	}
	if cda < MinCdA {
		return fmt.Errorf("CdA value too small (minimum %g)", MinCdA)
	}
	if cda > MaxCdA {
		return fmt.Errorf("CdA value too large (maximum %g)", MaxCdA)
	}
	return nil
}
