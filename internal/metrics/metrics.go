// Package metrics derives scalar summary statistics from a completed
// run's series.
package metrics

import (
	"math"

	"github.com/san-kum/cansim/internal/physics"
	"github.com/san-kum/cansim/internal/sim"
	"github.com/san-kum/cansim/internal/solver"
)

// Metric is one scalar statistic computed over a run.
type Metric interface {
	Name() string
	Compute(res *solver.Result) float64
}

type PeakAcceleration struct{}

func (PeakAcceleration) Name() string { return "peak_acceleration" }

func (PeakAcceleration) Compute(res *solver.Result) float64 {
	peak := 0.0
	for _, a := range res.Accel {
		if a > peak {
			peak = a
		}
	}
	return peak
}

// PeakKineticEnergy uses the instantaneous mass at each sample, not the
// dry mass, since the propellant has not fully vented at top speed.
type PeakKineticEnergy struct{}

func (PeakKineticEnergy) Name() string { return "peak_kinetic_energy" }

func (PeakKineticEnergy) Compute(res *solver.Result) float64 {
	peak := 0.0
	for i, v := range res.V {
		if i >= len(res.Mass) {
			break
		}
		ke := 0.5 * res.Mass[i] * v * v
		if ke > peak {
			peak = ke
		}
	}
	return peak
}

// TotalImpulse integrates the thrust series over the full run. Thrust
// is zero after burn end, so this converges to the canister's impulse.
type TotalImpulse struct{}

func (TotalImpulse) Name() string { return "total_impulse" }

func (TotalImpulse) Compute(res *solver.Result) float64 {
	if len(res.T) < 2 || len(res.Thrust) != len(res.T) {
		return 0
	}
	acc := sim.CumTrapz(res.Thrust, res.T)
	return acc[len(acc)-1]
}

// BurnoutSpeed interpolates the velocity at the moment thrust shuts
// off.
type BurnoutSpeed struct{}

func (BurnoutSpeed) Name() string { return "burnout_speed" }

func (BurnoutSpeed) Compute(res *solver.Result) float64 {
	if len(res.T) < 2 {
		return 0
	}
	if physics.BurnEnd >= res.T[len(res.T)-1] {
		return res.V[len(res.V)-1]
	}
	out := sim.Interp([]float64{physics.BurnEnd}, res.T, res.V)
	return out[0]
}

// DragLossFraction is the share of thrust work spent against drag,
// estimated as the ratio of drag impulse to thrust impulse.
type DragLossFraction struct{}

func (DragLossFraction) Name() string { return "drag_loss_fraction" }

func (DragLossFraction) Compute(res *solver.Result) float64 {
	if len(res.T) < 2 || len(res.Drag) != len(res.T) || len(res.Thrust) != len(res.T) {
		return 0
	}
	dragImp := sim.CumTrapz(res.Drag, res.T)
	thrustImp := sim.CumTrapz(res.Thrust, res.T)
	total := thrustImp[len(thrustImp)-1]
	if total <= 0 || math.IsNaN(total) {
		return 0
	}
	return dragImp[len(dragImp)-1] / total
}

// Default returns the standard metric set in display order.
func Default() []Metric {
	return []Metric{
		PeakAcceleration{},
		PeakKineticEnergy{},
		TotalImpulse{},
		BurnoutSpeed{},
		DragLossFraction{},
	}
}
