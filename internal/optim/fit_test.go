package optim

import (
	"context"
	"math"
	"testing"
)

// A synthetic, monotone model of track time versus drag area. Cheap to
// evaluate, so tests can afford fine grids.
func syntheticEval(cda float64) (float64, bool) {
	if cda > 0.95 {
		return 0, false
	}
	return 2.0 + 1.5*cda, true
}

func TestSearchRecoversCdA(t *testing.T) {
	fit := NewFitCdA(0.0001, 1.0)
	trueCdA := 0.37
	observed, _ := syntheticEval(trueCdA)

	got, residual, err := fit.Search(context.Background(), observed, syntheticEval)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if math.Abs(got-trueCdA) > 0.01 {
		t.Errorf("expected CdA near %f, got %f", trueCdA, got)
	}
	if residual > 0.02 {
		t.Errorf("residual too large: %f", residual)
	}
}

func TestSearchInvalidInputs(t *testing.T) {
	fit := NewFitCdA(0.0001, 1.0)
	if _, _, err := fit.Search(context.Background(), -1.0, syntheticEval); err == nil {
		t.Error("expected error for negative observed time")
	}

	bad := &FitCdA{Lo: 0.5, Hi: 0.1, Points: 32}
	if _, _, err := bad.Search(context.Background(), 2.5, syntheticEval); err == nil {
		t.Error("expected error for inverted band")
	}
}

func TestSearchNoCandidateReaches(t *testing.T) {
	fit := NewFitCdA(0.0001, 1.0)
	never := func(cda float64) (float64, bool) { return 0, false }
	if _, _, err := fit.Search(context.Background(), 2.5, never); err == nil {
		t.Error("expected error when no candidate reaches the target")
	}
}

func TestSearchCancellation(t *testing.T) {
	fit := NewFitCdA(0.0001, 1.0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := fit.Search(ctx, 2.5, syntheticEval); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
