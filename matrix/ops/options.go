// SPDX-License-Identifier: MIT

// Package ops: functional configuration for the QR-iteration eigensolver.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package ops

import "github.com/cmm863/linalg/vector"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDigits is the decimal precision at which two successive diagonal
	// estimates are compared to detect convergence.
	DefaultDigits = vector.DefaultDigits

	// MaxDigits bounds WithDigits: beyond it x·10^d exceeds float64's exact range.
	MaxDigits = 15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDigitsInvalid = "ops: WithDigits: digits must be in [0, 15]"
	panicTraceNil      = "ops: WithTrace: fn must be non-nil"
)

// TraceFunc observes one iteration: iter is 0-based and estimate is the
// diagonal of A_iter. The estimate must not be modified.
type TraceFunc func(iter int, estimate *vector.Vector)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	digits int       // DefaultDigits
	trace  TraceFunc // nil ⇒ no tracing
}

// WithDigits sets the comparison precision of the convergence test.
// Panics when digits ∉ [0, MaxDigits].
//
// AI-Hints:
//   - Fewer digits stop earlier with a coarser estimate; more digits may
//     never be reached for slowly converging spectra (bounded by maxIter).
func WithDigits(digits int) Option {
	if digits < 0 || digits > MaxDigits {
		panic(panicDigitsInvalid)
	}

	return func(o *options) { o.digits = digits }
}

// WithTrace installs a per-iteration observer. Panics on nil fn.
func WithTrace(fn TraceFunc) Option {
	if fn == nil {
		panic(panicTraceNil)
	}

	return func(o *options) { o.trace = fn }
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) options {
	o := options{digits: DefaultDigits}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
