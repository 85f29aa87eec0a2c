package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/cansim/internal/solver"
)

// A small synthetic run: constant 2 N thrust on a 1 kg cart for 1 s,
// no drag, sampled at 0.25 s.
func syntheticResult() *solver.Result {
	ts := []float64{0, 0.25, 0.5, 0.75, 1.0}
	res := &solver.Result{Success: true, T: ts}
	res.V = make([]float64, len(ts))
	res.S = make([]float64, len(ts))
	res.Thrust = make([]float64, len(ts))
	res.Drag = make([]float64, len(ts))
	res.Accel = make([]float64, len(ts))
	res.Mass = make([]float64, len(ts))
	for i, t := range ts {
		res.V[i] = 2 * t
		res.S[i] = t * t
		res.Thrust[i] = 2.0
		res.Accel[i] = 2.0
		res.Mass[i] = 1.0
	}
	return res
}

func TestPeakAcceleration(t *testing.T) {
	res := syntheticResult()
	got := PeakAcceleration{}.Compute(res)
	if math.Abs(got-2.0) > 1e-12 {
		t.Errorf("expected peak acceleration 2.0, got %f", got)
	}
}

func TestPeakKineticEnergy(t *testing.T) {
	res := syntheticResult()
	// v = 2 m/s at the end, m = 1 kg, so KE = 2 J
	got := PeakKineticEnergy{}.Compute(res)
	if math.Abs(got-2.0) > 1e-12 {
		t.Errorf("expected peak KE 2.0, got %f", got)
	}
}

func TestTotalImpulse(t *testing.T) {
	res := syntheticResult()
	// constant 2 N over 1 s
	got := TotalImpulse{}.Compute(res)
	if math.Abs(got-2.0) > 1e-12 {
		t.Errorf("expected impulse 2.0, got %f", got)
	}
}

func TestDragLossFractionZeroDrag(t *testing.T) {
	res := syntheticResult()
	got := DragLossFraction{}.Compute(res)
	if got != 0 {
		t.Errorf("expected zero drag loss, got %f", got)
	}
}

func TestDragLossFractionHalf(t *testing.T) {
	res := syntheticResult()
	for i := range res.Drag {
		res.Drag[i] = 1.0
	}
	got := DragLossFraction{}.Compute(res)
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected drag loss 0.5, got %f", got)
	}
}

func TestBurnoutSpeedShortRun(t *testing.T) {
	// Run ends before burn end, so burnout speed is the final sample.
	res := syntheticResult()
	got := BurnoutSpeed{}.Compute(res)
	if math.Abs(got-2.0) > 1e-12 {
		t.Errorf("expected burnout speed 2.0, got %f", got)
	}
}

func TestBurnoutSpeedInterpolated(t *testing.T) {
	ts := []float64{0, 1.0, 2.0}
	res := &solver.Result{
		Success: true,
		T:       ts,
		V:       []float64{0, 1.0, 2.0},
	}
	// burn ends at 1.280275 s where v = t on this grid
	got := BurnoutSpeed{}.Compute(res)
	if math.Abs(got-1.280275) > 1e-9 {
		t.Errorf("expected interpolated burnout speed 1.280275, got %f", got)
	}
}

func TestDefaultSetNames(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Default() {
		name := m.Name()
		if seen[name] {
			t.Errorf("duplicate metric name %q", name)
		}
		seen[name] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 metrics, got %d", len(seen))
	}
}

func TestEmptyResultIsZero(t *testing.T) {
	res := &solver.Result{Success: true}
	for _, m := range Default() {
		if got := m.Compute(res); got != 0 {
			t.Errorf("%s: expected 0 on empty result, got %f", m.Name(), got)
		}
	}
}
