// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction, random
// factories and rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: the library never seeds a random source; callers
//     that need reproducible Random output pass WithRand.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math/rand"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of digits after the decimal point used by
	// String and Render.
	DefaultPrecision = 6

	// MaxPrecision bounds WithPrecision.
	MaxPrecision = 17

	// DefaultValidateNaNInf toggles strict finite-value validation in the
	// checked Set accessor.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be in [0, MaxPrecision]"
	panicRandNil          = "matrix: WithRand: source must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	precision      int        // digits after the point for rendering
	rng            *rand.Rand // nil ⇒ global math/rand source
	validateNaNInf bool       // checked Set rejects NaN/±Inf
}

// WithPrecision sets the number of fractional digits used when rendering.
// Panics when p is outside [0, MaxPrecision].
func WithPrecision(p int) Option {
	if p < 0 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithRand selects the random source used by Random and RandomSquare.
// The source is used as-is: seeding is the caller's business.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// WithValidateNaNInf makes the checked Set reject NaN and ±Inf (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets the checked Set store any float64.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters on top of the documented defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		precision:      DefaultPrecision,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// float64 draws one value in [0,1) from the configured source.
func (o Options) float64() float64 {
	if o.rng != nil {
		return o.rng.Float64()
	}

	return rand.Float64()
}
