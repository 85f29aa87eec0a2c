package sim

// The engine is parameterized over its three physical models so
// alternates can be substituted without touching the integration. Each
// collaborator evaluates over a whole ordered time grid at once.

type ThrustModel interface {
	Thrust(ts []float64) []float64
}

type MassModel interface {
	Mass(ts []float64) []float64
}

type DragModel interface {
	Drag(vs []float64, cda float64) []float64
}

type Config struct {
	CdA     float64
	MaxTime float64
	Dt      float64
	Target  float64
}

// Result holds one integration run. Series are parallel to T and owned
// by the run; the struct is immutable once returned.
type Result struct {
	Message string

	T []float64
	V []float64
	S []float64

	// Reached reports whether displacement crossed the target within the
	// grid; TimeToTarget is only meaningful when it did.
	Reached      bool
	TimeToTarget float64

	TopSpeed     float64
	TopSpeedTime float64
	HasTopSpeed  bool

	// Clamped counts samples where a non-finite acceleration had to be
	// replaced by a sentinel. Non-zero values point at a degenerate
	// configuration (e.g. a mass model returning zero).
	Clamped int
}
