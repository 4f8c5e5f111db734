// SPDX-License-Identifier: MIT

// Package config: functional configuration for the numeric policy shared by
// array, matrix and solver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Gather, the single resolution point that enforces invariants.
//
// Design goals:
//   - No global mutable state: every Array carries its own resolved Options,
//     and every derived value inherits them from its source.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Two tolerances coexist:
//   - Fine guards equality, singularity and the cubic discriminant branch.
//   - Coarse guards free-variable detection and pivot normalization in the
//     eigen-solver, where cubic-formula roots carry far more rounding error
//     than Fine would accept.
//   - The logger is a debug trace sink only; the numeric core never depends on
//     what (if anything) it records.
package config

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFineTolerance guards cell equality, |det| singularity checks,
	// norm-underflow in normalization and the cubic discriminant sign.
	DefaultFineTolerance = 1e-12

	// DefaultCoarseTolerance guards free-variable detection and pivot
	// normalization/elimination during full-pivot row reduction.
	DefaultCoarseTolerance = 1e-6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFineInvalid   = "config: WithFineTolerance: tolerance must be finite, non-negative"
	panicCoarseInvalid = "config: WithCoarseTolerance: tolerance must be finite, non-negative"
	panicLoggerNil     = "config: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; read them through the
// accessor methods.
type Options struct {
	fine   float64     // >= 0; DefaultFineTolerance
	coarse float64     // >= fine after Gather; DefaultCoarseTolerance
	logger *zap.Logger // never nil after Gather; zap.NewNop() by default
}

// Fine returns the fine tolerance.
func (o Options) Fine() float64 { return o.fine }

// Coarse returns the coarse tolerance.
func (o Options) Coarse() float64 { return o.coarse }

// Logger returns the debug logger; never nil for resolved Options.
func (o Options) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}

	return o.logger
}

// AsOptions replays the resolved configuration as setters, so a value built
// by another constructor inherits the same policy.
func (o Options) AsOptions() []Option {
	return []Option{WithFineTolerance(o.fine), WithCoarseTolerance(o.coarse), WithLogger(o.Logger())}
}

// ---------- Constructors (WithX) ----------

// WithFineTolerance sets the fine tolerance used by equality and singularity checks.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - tol: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Larger values relax Equal, IsInvertible and the repeated-root branch of
//     the cubic solver; use judiciously.
func WithFineTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicFineInvalid)
	}

	return func(o *Options) { o.fine = tol }
}

// WithCoarseTolerance sets the coarse tolerance used by the row reducer.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - Gather raises a coarse tolerance below the fine one up to the fine one.
//
// Inputs:
//   - tol: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCoarseTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicCoarseInvalid)
	}

	return func(o *Options) { o.coarse = tol }
}

// WithLogger injects a zap logger for Debug-level traces of solver decisions.
// A nil logger is a programmer error and panics.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// --------------------------- Option Resolution ---------------------------

// Default returns the documented defaults.
func Default() Options {
	return Gather()
}

// Gather applies user-provided Option setters on top of defaults and
// finalizes derived invariants.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: enforce coarse ≥ fine.
//
// Behavior highlights:
//   - Derivations in one place prevent drift across call sites.
//
// Inputs:
//   - user: sequence of Option setters (nil entries are skipped).
//
// Returns:
//   - Options: fully resolved configuration.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func Gather(user ...Option) Options {
	o := Options{
		fine:   DefaultFineTolerance,
		coarse: DefaultCoarseTolerance,
		logger: zap.NewNop(),
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
func finalizeOptions(o *Options) {
	// The reducer must never be stricter than equality.
	if o.coarse < o.fine {
		o.coarse = o.fine
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
