package physics

import "math"

// Physical constants and model parameters for the canister car.
const (
	// AirDensity is the ambient air density in kg/m^3.
	AirDensity = 1.20473

	// Regime boundaries for the thrust curve, in seconds. The canister
	// empties at BurnEnd; thrust is identically zero afterwards.
	ThrustRegime1End = 0.1306115
	ThrustRegime2End = 0.849993
	BurnEnd          = 1.280275

	// BaseMass is the vehicle mass with an empty canister, in kg.
	BaseMass = 0.0694

	// TargetDisplacement is the track length in meters.
	TargetDisplacement = 20.0

	// CdA plausibility band in m^2.
	MinCdA     = 0.0001
	MaxCdA     = 1.0
	DefaultCdA = 0.5
)

// Thrust curve coefficients. Regime 1 combines a cosine with an
// exponential envelope over a square-root argument, regime 2 a damped
// sine, regime 3 an affine decay to near-zero at burn-end.
const (
	thrust1Scale     = 1.0 / 250.0
	thrust1ArgCoeff  = -100.0
	thrust1ArgOffset = 63.0896
	thrust1Offset    = 1.0

	thrust2Scale  = 4.175 / 8.0
	thrust2Freq   = -math.Pi / 1.035
	thrust2Phase  = 172.0 / 207.0 * math.Pi
	thrust2Offset = 0.5

	thrust3Slope     = -1.2
	thrust3Intercept = 1.53633
)

// massCoeff is the curvature of the mass parabola in kg/s^2.
const massCoeff = 0.008 * 40000.0 * 40000.0 / (51211.0 * 51211.0)
