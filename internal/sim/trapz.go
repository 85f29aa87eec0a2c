package sim

import "math"

// clampSentinel bounds divergent samples after a division by near-zero
// mass so they cannot poison the cumulative integrals downstream.
const clampSentinel = 1e6

// CumTrapz integrates y over t with the composite trapezoidal rule as a
// running cumulative sum. The result has the same length as y with the
// value at index 0 fixed to exactly 0.
func CumTrapz(y, t []float64) []float64 {
	out := make([]float64, len(y))
	for i := 1; i < len(y); i++ {
		out[i] = out[i-1] + 0.5*(y[i]+y[i-1])*(t[i]-t[i-1])
	}
	return out
}

// ClampNonFinite replaces NaN with 0 and ±Inf with ±clampSentinel in
// place, returning the number of samples touched.
func ClampNonFinite(y []float64) int {
	clamped := 0
	for i, v := range y {
		switch {
		case math.IsNaN(v):
			y[i] = 0
			clamped++
		case math.IsInf(v, 1):
			y[i] = clampSentinel
			clamped++
		case math.IsInf(v, -1):
			y[i] = -clampSentinel
			clamped++
		}
	}
	return clamped
}

// Interp linearly interpolates ys (sampled at ascending xs) onto the
// ascending query points xq. Queries outside the range clamp to the
// endpoint values.
func Interp(xq, xs, ys []float64) []float64 {
	out := make([]float64, len(xq))
	if len(xs) == 0 {
		return out
	}
	j := 0
	for i, x := range xq {
		if x <= xs[0] {
			out[i] = ys[0]
			continue
		}
		if x >= xs[len(xs)-1] {
			out[i] = ys[len(ys)-1]
			continue
		}
		for xs[j+1] < x {
			j++
		}
		x0, x1 := xs[j], xs[j+1]
		y0, y1 := ys[j], ys[j+1]
		if x1 == x0 {
			out[i] = y0
			continue
		}
		out[i] = y0 + (y1-y0)*(x-x0)/(x1-x0)
	}
	return out
}
