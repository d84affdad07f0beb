// Package numeric provides the small-angle coefficient kernel shared by the
// Lie-group implementations in package lie.
//
// Every closed-form exponential, logarithm and adjoint of a rotation or
// rigid-motion group contains ratios of the family
//
//	sin θ / θ,   (1 − cos θ) / θ,   (θ − sin θ) / θ³,  ...
//
// which are removable singularities at θ = 0: the limits are finite, but a
// naive evaluation divides zero by zero. Each function in this package
// evaluates its ratio with a two-term Taylor expansion once θ² drops below
// SmallAngleThresholdSq and with a cancellation-free closed form above it
// (half-angle identities replace 1 − cos θ, which loses precision directly).
//
// Guarantees:
//   - every function is total over finite inputs: no NaN, no Inf, for any
//     finite θ including θ = 0;
//   - relative error stays near machine epsilon on both sides of the series
//     switch (the Taylor truncation error at the threshold is below 1e-16);
//   - every function is even or odd in θ exactly as its closed form is, so
//     callers may pass signed angles.
//
// NaN inputs propagate NaN, mirroring standard floating-point semantics.
//
// The functions here are elementary compositions of math.Sin, math.Cos and
// polynomials, which keeps them differentiable away from true mathematical
// singularities.
package numeric
