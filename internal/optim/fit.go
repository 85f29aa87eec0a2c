package optim

import (
	"context"
	"fmt"
	"math"
)

// Evaluate runs one simulation for a candidate drag-area and reports
// the track time. ok is false when the car never reached the target for
// that candidate.
type Evaluate func(cda float64) (trackTime float64, ok bool)

// FitCdA searches the [lo, hi] drag-area band for the value whose
// simulated track time matches an observed one. Two-stage grid
// refinement: a coarse sweep picks the best cell, a second sweep
// refines inside it. The track time is monotone in CdA, so the
// refinement brackets the optimum.
type FitCdA struct {
	Lo, Hi float64
	Points int
}

func NewFitCdA(lo, hi float64) *FitCdA {
	return &FitCdA{Lo: lo, Hi: hi, Points: 32}
}

// Search returns the best-fitting CdA and the residual |simulated -
// observed| in seconds.
func (f *FitCdA) Search(ctx context.Context, observed float64, eval Evaluate) (float64, float64, error) {
	if observed <= 0 {
		return 0, 0, fmt.Errorf("observed track time must be positive, got %f", observed)
	}
	if f.Points < 2 || f.Hi <= f.Lo {
		return 0, 0, fmt.Errorf("invalid search band [%f, %f]", f.Lo, f.Hi)
	}

	lo, hi := f.Lo, f.Hi
	bestCdA := lo
	bestResidual := math.Inf(1)

	for stage := 0; stage < 2; stage++ {
		step := (hi - lo) / float64(f.Points-1)
		for i := 0; i < f.Points; i++ {
			select {
			case <-ctx.Done():
				return 0, 0, ctx.Err()
			default:
			}

			cda := lo + float64(i)*step
			tt, ok := eval(cda)
			if !ok {
				continue
			}
			residual := math.Abs(tt - observed)
			if residual < bestResidual {
				bestResidual = residual
				bestCdA = cda
			}
		}

		// refine around the winner, clipped to the original band
		lo = math.Max(f.Lo, bestCdA-step)
		hi = math.Min(f.Hi, bestCdA+step)
	}

	if math.IsInf(bestResidual, 1) {
		return 0, 0, fmt.Errorf("no candidate in [%f, %f] reached the target", f.Lo, f.Hi)
	}
	return bestCdA, bestResidual, nil
}
