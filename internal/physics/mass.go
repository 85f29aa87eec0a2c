package physics

// MassCurve models the vehicle mass while compressed gas is expelled.
// Mass follows a parabola with its minimum exactly at burn-end, then
// stays constant at the base (empty-canister) mass. Base is overridable
// per run; Coeff and Center are fixed so mass never reaches zero on the
// valid domain.
type MassCurve struct {
	Base   float64
	Coeff  float64
	Center float64
}

func NewMassCurve(base float64) *MassCurve {
	if base <= 0 {
		base = BaseMass
	}
	return &MassCurve{
		Base:   base,
		Coeff:  massCoeff,
		Center: BurnEnd,
	}
}

// At returns the vehicle mass in kg at time t.
func (c *MassCurve) At(t float64) float64 {
	if t < 0 || t > c.Center {
		return c.Base
	}
	d := t - c.Center
	return c.Base + c.Coeff*d*d
}

// Over evaluates the curve over a time grid.
func (c *MassCurve) Over(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = c.At(t)
	}
	return out
}

// DerivativeAt returns dm/dt at time t: 2k(t-center) while the canister
// fires, zero outside the active window. Not used by the integration
// path but part of the model contract.
func (c *MassCurve) DerivativeAt(t float64) float64 {
	if t < 0 || t > c.Center {
		return 0
	}
	return 2 * c.Coeff * (t - c.Center)
}

// DerivativeOver evaluates dm/dt over a time grid.
func (c *MassCurve) DerivativeOver(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = c.DerivativeAt(t)
	}
	return out
}

// Initial returns the launch mass (full canister).
func (c *MassCurve) Initial() float64 { return c.At(0) }

// Final returns the empty-canister mass.
func (c *MassCurve) Final() float64 { return c.Base }

// Mass implements the engine's mass collaborator.
func (c *MassCurve) Mass(ts []float64) []float64 { return c.Over(ts) }
