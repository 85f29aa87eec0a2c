package physics

import (
	"math"
	"testing"
)

func TestMassMinimumAtBurnEnd(t *testing.T) {
	c := NewMassCurve(0)

	min := c.At(BurnEnd)
	if math.Abs(min-c.Base) > 1e-12 {
		t.Errorf("expected mass floor %v at burn-end, got %v", c.Base, min)
	}

	for _, tt := range []float64{0, 0.3, 0.9, 1.2} {
		if c.At(tt) <= min {
			t.Errorf("mass at t=%v should exceed burn-end floor", tt)
		}
	}
}

func TestMassConstantOutsideBurn(t *testing.T) {
	c := NewMassCurve(0)

	for _, tt := range []float64{-0.5, BurnEnd + 1e-9, 2.0, 100.0} {
		if m := c.At(tt); m != c.Base {
			t.Errorf("mass at t=%v: expected %v, got %v", tt, c.Base, m)
		}
	}
}

func TestMassAlwaysPositive(t *testing.T) {
	c := NewMassCurve(0)

	for tt := -1.0; tt < 3.0; tt += 0.001 {
		if m := c.At(tt); m <= 0 {
			t.Fatalf("non-positive mass %v at t=%v", m, tt)
		}
	}
}

func TestMassBaseOverride(t *testing.T) {
	c := NewMassCurve(0.1)
	if c.Final() != 0.1 {
		t.Errorf("expected base 0.1, got %v", c.Final())
	}

	// non-positive override falls back to the default
	c = NewMassCurve(-1)
	if c.Final() != BaseMass {
		t.Errorf("expected default base %v, got %v", BaseMass, c.Final())
	}
}

func TestMassInitialExceedsFinal(t *testing.T) {
	c := NewMassCurve(0)
	if c.Initial() <= c.Final() {
		t.Errorf("initial mass %v should exceed final mass %v", c.Initial(), c.Final())
	}
}

func TestMassDerivative(t *testing.T) {
	c := NewMassCurve(0)

	// negative while gas is expelled, zero at burn-end and outside
	if d := c.DerivativeAt(0.5); d >= 0 {
		t.Errorf("expected negative dm/dt mid-burn, got %v", d)
	}
	if d := c.DerivativeAt(BurnEnd); d != 0 {
		t.Errorf("expected zero dm/dt at burn-end, got %v", d)
	}
	if d := c.DerivativeAt(2.0); d != 0 {
		t.Errorf("expected zero dm/dt after burn-end, got %v", d)
	}
	if d := c.DerivativeAt(-0.1); d != 0 {
		t.Errorf("expected zero dm/dt before launch, got %v", d)
	}

	// finite-difference cross-check mid-burn
	h := 1e-6
	fd := (c.At(0.5+h) - c.At(0.5-h)) / (2 * h)
	if math.Abs(fd-c.DerivativeAt(0.5)) > 1e-6 {
		t.Errorf("derivative %v disagrees with finite difference %v", c.DerivativeAt(0.5), fd)
	}
}

func TestMassOverLength(t *testing.T) {
	c := NewMassCurve(0)
	ts := []float64{0, 0.5, 1.0, 1.5}
	out := c.Over(ts)
	if len(out) != len(ts) {
		t.Fatalf("expected %d samples, got %d", len(ts), len(out))
	}
	for i, tt := range ts {
		if out[i] != c.At(tt) {
			t.Errorf("Over/At mismatch at t=%v", tt)
		}
	}
}
