package physics

import "math"

// ThrustCurve is the piecewise closed-form canister thrust model. Thrust
// is a function of time only: three regimes while the canister fires,
// zero after burn-end and before launch.
type ThrustCurve struct {
	Regime1End float64
	Regime2End float64
	BurnEnd    float64
}

func NewThrustCurve() *ThrustCurve {
	return &ThrustCurve{
		Regime1End: ThrustRegime1End,
		Regime2End: ThrustRegime2End,
		BurnEnd:    BurnEnd,
	}
}

// regime1 covers [0, Regime1End). The max guard keeps the square-root
// argument non-negative when t drifts past the analytic boundary by a
// floating-point ulp.
func (c *ThrustCurve) regime1(t float64) float64 {
	arg := thrust1ArgCoeff*t + thrust1ArgOffset
	if arg < 0 {
		arg = 0
	}
	root := math.Sqrt(arg)
	return thrust1Scale*math.Cos(root)*math.Exp(root) + thrust1Offset
}

// regime2 covers [Regime1End, Regime2End). The sine and the exponential
// envelope share the same linear phase argument.
func (c *ThrustCurve) regime2(t float64) float64 {
	phase := thrust2Freq*t + thrust2Phase
	return thrust2Scale*math.Sin(phase)*math.Exp(phase) + thrust2Offset
}

// regime3 covers [Regime2End, BurnEnd]: affine decay to near-zero.
func (c *ThrustCurve) regime3(t float64) float64 {
	return thrust3Slope*t + thrust3Intercept
}

// At returns the thrust force in newtons at time t.
func (c *ThrustCurve) At(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t < c.Regime1End:
		return c.regime1(t)
	case t < c.Regime2End:
		return c.regime2(t)
	case t <= c.BurnEnd:
		return c.regime3(t)
	default:
		return 0
	}
}

// Over evaluates the curve over an ordered time grid. Each regime is
// evaluated only on its own subrange: the grid is sorted, so the regime
// boundaries partition it into contiguous runs and a single pass with
// run-local evaluation avoids the per-sample regime dispatch on
// million-element grids.
func (c *ThrustCurve) Over(ts []float64) []float64 {
	out := make([]float64, len(ts))

	i := 0
	for i < len(ts) && ts[i] < 0 {
		i++
	}
	for ; i < len(ts) && ts[i] < c.Regime1End; i++ {
		out[i] = c.regime1(ts[i])
	}
	for ; i < len(ts) && ts[i] < c.Regime2End; i++ {
		out[i] = c.regime2(ts[i])
	}
	for ; i < len(ts) && ts[i] <= c.BurnEnd; i++ {
		out[i] = c.regime3(ts[i])
	}
	// remaining samples are past burn-end, already zero
	return out
}

// Thrust implements the engine's thrust collaborator.
func (c *ThrustCurve) Thrust(ts []float64) []float64 { return c.Over(ts) }
