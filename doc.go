// Package liegroups is a closed-form Lie-group toolkit for rigid-body
// transformations — rotations and rigid motions in the plane and in space,
// with the manifold machinery optimizers need.
//
// 🚀 What is liegroups?
//
//	A small, pure library implementing the four matrix Lie groups of
//	geometric vision and robotics under one operation contract:
//		• SO(2) — planar rotation, unit complex number
//		• SE(2) — planar rigid motion, rotation ⋉ translation
//		• SO(3) — spatial rotation, unit quaternion (double cover)
//		• SE(3) — spatial rigid motion, with the coupled screw exponential
//		• Exp/Log, Multiply, Inverse, Apply, Adjoint per group
//		• RPlus/RMinus — generic manifold retraction for optimization
//
// ✨ Why choose liegroups?
//
//   - Numerically careful – small-angle singularities handled by stable
//     series, principal-range logarithms, double-cover aware comparisons
//   - Purely functional – immutable values, explicit randomness, no hidden
//     state; safe to batch or differentiate around
//   - Interoperable – gonum homogeneous matrices in and out, flatten/
//     unflatten leaves for host frameworks
//
// Everything is organized under two subpackages:
//
//	numeric/ — stable small-angle coefficient kernel (sinc-family ratios)
//	lie/     — the four groups, matrix interop, sampling, manifold helpers
//
// Quick screw-motion example:
//
//	tf := lie.SE3Exp([6]float64{0, 0, 1.57, 1, 0, 0})
//	tf.Log() // recovers the twist; translation followed the arc, not the chord
//
// Dive into lie/example_test.go and examples/ for usage patterns, and
// DESIGN.md for numerical policy decisions.
//
//	go get github.com/katalvlaran/liegroups/lie
package liegroups
