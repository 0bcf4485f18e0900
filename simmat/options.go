// SPDX-License-Identifier: MIT

// Package simmat: functional configuration for matrix construction and the
// numeric policy applied at ingestion. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The numeric policy is fixed at construction time and propagated to
//     derived matrices (ForSubset, conversions). Operations never re-read
//     options from the caller.
//   - AllowMissing is a narrow exception for NaN as "value unavailable" when
//     ingesting externally sourced data (behavioral norms with gaps). ±Inf
//     remains rejected even when AllowMissing is enabled.
package simmat

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by the symmetry
	// check at ingestion: |A[i,j] - A[j,i]| ≤ eps for all i<j.
	DefaultEpsilon = 1e-9

	// DefaultAllowMissing toggles acceptance of NaN entries at ingestion.
	// Disabled by default: complete data is the common case and silent NaN
	// propagation is the classic failure mode of similarity pipelines.
	DefaultAllowMissing = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "simmat: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve via gatherOptions.
type Options struct {
	eps          float64 // >= 0; DefaultEpsilon
	allowMissing bool    // DefaultAllowMissing
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by the symmetry check.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Applies only at construction; a matrix accepted under a loose eps is
//     stored in canonical symmetric form and never re-checked.
//
// AI-Hints:
//   - Keep eps small (1e-9) for data computed in float64; raise it only for
//     matrices deserialized from low-precision text formats.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon.
	return func(o *Options) { o.eps = eps }
}

// WithAllowMissing permits NaN entries to represent "value unavailable".
// Implementation:
//   - Stage 1: set allowMissing=true.
//
// Behavior highlights:
//   - Does NOT imply "allow Inf": ±Inf is always rejected at ingestion.
//   - Operations that require complete data (CorrelateWith, the softmax
//     transform) still refuse NaN with ErrMissingValue; use CompleteLabels
//     plus ForSubset to narrow to fully observed conditions first.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Intended for matrices assembled from external word-norm sources where
//     some pairs are legitimately unobserved.
//
// AI-Hints:
//   - Pair with CompleteLabels()/ForSubset() before statistics.
func WithAllowMissing() Option {
	return func(o *Options) { o.allowMissing = true }
}

// WithNoAllowMissing enforces strictly finite entries (default).
// Implementation:
//   - Stage 1: set allowMissing=false.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithNoAllowMissing() Option {
	return func(o *Options) { o.allowMissing = false }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for all constructors.
// Implementation:
//   - Stage 1: start from documented defaults (single source of truth).
//   - Stage 2: apply setters in order; last-writer-wins semantics.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:          DefaultEpsilon,
		allowMissing: DefaultAllowMissing,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
