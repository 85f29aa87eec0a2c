package sim

import "fmt"

// Engine runs the coupled forward integration: thrust and mass sampled
// over a uniform time grid, a drag-free velocity estimate seeding the
// drag force, then the drag-coupled acceleration integrated twice to
// velocity and displacement.
//
// The two-pass structure (no-drag estimate first, coupled solve second)
// is deliberate: it decouples drag's velocity dependence without an
// implicit solve, and the reported crossing time depends on exactly this
// approximation. Do not replace it with an iterated scheme.
type Engine struct {
	thrust ThrustModel
	mass   MassModel
	drag   DragModel
}

func New(thrust ThrustModel, mass MassModel, drag DragModel) *Engine {
	return &Engine{thrust: thrust, mass: mass, drag: drag}
}

// TimeGrid builds the uniform grid from 0 to maxTime inclusive at step
// dt. The first element is exactly 0.
func TimeGrid(maxTime, dt float64) []float64 {
	steps := int(maxTime/dt + 1e-9)
	ts := make([]float64, steps+1)
	for i := range ts {
		ts[i] = float64(i) * dt
	}
	return ts
}

func (e *Engine) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.MaxTime <= 0 {
		return fmt.Errorf("max time must be positive, got %f", cfg.MaxTime)
	}
	if cfg.Target <= 0 {
		return fmt.Errorf("target displacement must be positive, got %f", cfg.Target)
	}
	return nil
}

// Run integrates the motion and locates the target crossing and the
// peak speed. The computation is pure and synchronous; concurrent runs
// are independent.
func (e *Engine) Run(cfg Config) (*Result, error) {
	if err := e.validateConfig(cfg); err != nil {
		return nil, err
	}

	t := TimeGrid(cfg.MaxTime, cfg.Dt)
	n := len(t)

	thrust := e.thrust.Thrust(t)
	m := e.mass.Mass(t)

	// drag-free acceleration, sanitized so a degenerate mass sample
	// cannot abort the run
	a0 := make([]float64, n)
	for i := 0; i < n; i++ {
		if m[i] > 0 {
			a0[i] = thrust[i] / m[i]
		}
	}
	clamped := ClampNonFinite(a0)

	// decoupled velocity estimate: thrust and mass variation alone,
	// used only to seed the drag force
	v0 := CumTrapz(a0, t)

	dragForce := e.drag.Drag(v0, cfg.CdA)

	a := make([]float64, n)
	for i := 0; i < n; i++ {
		if m[i] > 0 {
			a[i] = (thrust[i] - dragForce[i]) / m[i]
		}
	}
	clamped += ClampNonFinite(a)

	v := CumTrapz(a, t)
	for i := range v {
		if v[i] < 0 {
			v[i] = 0
		}
	}

	s := CumTrapz(v, t)

	res := &Result{
		T:       t,
		V:       v,
		S:       s,
		Clamped: clamped,
	}

	res.Reached, res.TimeToTarget = crossingTime(t, s, cfg.Target)
	if res.Reached {
		res.Message = fmt.Sprintf("reached %.0fm in %.4f seconds", cfg.Target, res.TimeToTarget)
	} else {
		res.Message = fmt.Sprintf("did not reach %.0fm (max displacement: %.2fm)", cfg.Target, s[n-1])
	}

	if len(v) > 0 {
		idx := argMax(v)
		res.TopSpeed = v[idx]
		res.TopSpeedTime = t[idx]
		res.HasTopSpeed = true
	}

	return res, nil
}

// crossingTime finds the first grid sample at or past the target and
// refines it by linear interpolation against the previous sample. Equal
// bracketing samples report the earlier time to avoid a zero division.
func crossingTime(t, s []float64, target float64) (bool, float64) {
	for i := range s {
		if s[i] < target {
			continue
		}
		if i == 0 {
			return true, t[0]
		}
		if s[i] > s[i-1] {
			return true, t[i-1] + (target-s[i-1])*(t[i]-t[i-1])/(s[i]-s[i-1])
		}
		return true, t[i-1]
	}
	return false, 0
}

func argMax(v []float64) int {
	idx := 0
	for i := range v {
		if v[i] > v[idx] {
			idx = i
		}
	}
	return idx
}
