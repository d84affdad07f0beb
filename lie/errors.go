// SPDX-License-Identifier: MIT
// Package lie: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the lie
// package. All constructors MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package lie

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "lie: ..." for consistency and easy grepping.
// Do not %w-wrap these sentinels when returning directly; wrap with
// fmt.Errorf("ctx: %w", ErrX) only where extra context is essential — callers
// still match with errors.Is.
//
// Numerical near-singularities (θ → 0, θ → π) are NOT errors: they are
// handled by stable series in package numeric. See doc.go.

var (
	// ErrInvalidDimension is returned when a raw parameter vector, leaf list
	// or matrix has the wrong shape for the target group. Input is never
	// silently truncated or padded.
	ErrInvalidDimension = errors.New("lie: invalid parameter or matrix dimension")

	// ErrInvalidMatrix is returned by the strict *FromMatrix constructors
	// when the rotation block is not proper-orthogonal within tolerance
	// (RᵀR ≉ I or det ≉ +1), or when a homogeneous matrix has a malformed
	// bottom row. The *FromMatrixBestFit variants project instead.
	ErrInvalidMatrix = errors.New("lie: matrix is not a proper rigid transform")

	// ErrNilSource is returned by the *SampleUniform constructors when the
	// randomness source is nil. Randomness is always threaded explicitly;
	// there is no global fallback.
	ErrNilSource = errors.New("lie: nil randomness source")
)
