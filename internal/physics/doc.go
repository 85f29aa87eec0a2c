// Package physics provides the closed-form models of the canister car:
//
//   - [ThrustCurve]: piecewise canister thrust vs time, zero after burn-end
//   - [MassCurve]: vehicle mass vs time while gas is expelled
//   - [QuadraticDrag]: aerodynamic drag vs instantaneous speed
//
// Each model is a parameter struct constructed with its physical
// constants; evaluation is a pure function of time (or speed) and the
// captured parameters. The vectorized Over methods implement the
// engine's collaborator interfaces in internal/sim.
package physics
