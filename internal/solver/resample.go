package solver

import "github.com/san-kum/cansim/internal/sim"

// History is an evenly spaced interpolated view of a result, intended
// for display. Every series is re-projected by piecewise-linear
// interpolation of the stored samples, never recomputed from the
// models, so it stays consistent with the run that produced it.
type History struct {
	T        []float64
	V        []float64
	S        []float64
	Thrust   []float64
	Drag     []float64
	NetForce []float64
	Accel    []float64
	Mass     []float64
}

// Resample projects a successful result onto n evenly spaced points
// spanning the original time range. The source result is not modified;
// its crossing time and peak speed remain authoritative.
func Resample(res *Result, n int) *History {
	if res == nil || !res.Success || len(res.T) == 0 {
		return nil
	}
	if n < 2 {
		n = 2
	}

	t0 := res.T[0]
	t1 := res.T[len(res.T)-1]
	ts := make([]float64, n)
	step := (t1 - t0) / float64(n-1)
	for i := range ts {
		ts[i] = t0 + float64(i)*step
	}
	ts[n-1] = t1

	return &History{
		T:        ts,
		V:        sim.Interp(ts, res.T, res.V),
		S:        sim.Interp(ts, res.T, res.S),
		Thrust:   sim.Interp(ts, res.T, res.Thrust),
		Drag:     sim.Interp(ts, res.T, res.Drag),
		NetForce: sim.Interp(ts, res.T, res.NetForce),
		Accel:    sim.Interp(ts, res.T, res.Accel),
		Mass:     sim.Interp(ts, res.T, res.Mass),
	}
}
