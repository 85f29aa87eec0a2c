package solver

import (
	"github.com/san-kum/cansim/internal/physics"
	"github.com/san-kum/cansim/internal/sim"
)

// Config is one run of the track-time calculation.
type Config struct {
	CdA      float64
	MaxTime  float64
	Dt       float64
	Target   float64
	BaseMass float64
}

func DefaultConfig() Config {
	return Config{
		CdA:      physics.DefaultCdA,
		MaxTime:  5.0,
		Dt:       1e-6,
		Target:   physics.TargetDisplacement,
		BaseMass: physics.BaseMass,
	}
}

// Result is the complete outcome of a run: the integration series plus
// the per-sample force breakdown for charting. Constructed once per
// invocation and immutable afterwards.
type Result struct {
	Success bool
	Message string
	CdA     float64

	T []float64
	V []float64
	S []float64

	Reached      bool
	TimeToTarget float64
	TopSpeed     float64
	TopSpeedTime float64
	HasTopSpeed  bool
	Clamped      int

	Thrust   []float64
	Drag     []float64
	NetForce []float64
	Accel    []float64
	Mass     []float64
}

// Solve validates the drag-area parameter, integrates the motion and
// assembles the force series. Invalid input produces an unsuccessful
// Result with a message and no series; everything downstream of valid
// input terminates in a successful Result, reached or not.
func Solve(cfg Config) *Result {
	if err := physics.ValidateCdA(cfg.CdA); err != nil {
		return &Result{Message: err.Error(), CdA: cfg.CdA}
	}

	thrust := physics.NewThrustCurve()
	mass := physics.NewMassCurve(cfg.BaseMass)
	drag := physics.NewQuadraticDrag()

	engine := sim.New(thrust, mass, drag)
	run, err := engine.Run(sim.Config{
		CdA:     cfg.CdA,
		MaxTime: cfg.MaxTime,
		Dt:      cfg.Dt,
		Target:  cfg.Target,
	})
	if err != nil {
		return &Result{Message: err.Error(), CdA: cfg.CdA}
	}

	res := &Result{
		Success:      true,
		Message:      run.Message,
		CdA:          cfg.CdA,
		T:            run.T,
		V:            run.V,
		S:            run.S,
		Reached:      run.Reached,
		TimeToTarget: run.TimeToTarget,
		TopSpeed:     run.TopSpeed,
		TopSpeedTime: run.TopSpeedTime,
		HasTopSpeed:  run.HasTopSpeed,
		Clamped:      run.Clamped,
	}
	res.attachForces(thrust, mass, drag)
	return res
}

// attachForces computes the per-sample force breakdown from the final
// velocity for downstream charting.
func (r *Result) attachForces(thrust *physics.ThrustCurve, mass *physics.MassCurve, drag *physics.QuadraticDrag) {
	n := len(r.T)

	r.Thrust = thrust.Over(r.T)
	r.Mass = mass.Over(r.T)
	r.Drag = drag.Over(r.V, r.CdA)

	r.NetForce = make([]float64, n)
	r.Accel = make([]float64, n)
	for i := 0; i < n; i++ {
		r.NetForce[i] = r.Thrust[i] - r.Drag[i]
		if r.Mass[i] > 0 {
			r.Accel[i] = r.NetForce[i] / r.Mass[i]
		}
	}
}
