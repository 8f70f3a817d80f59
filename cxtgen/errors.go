// SPDX-License-Identifier: MIT
package cxtgen

import "errors"

// ErrTooFewObjects indicates numObjects < 1.
var ErrTooFewObjects = errors.New("cxtgen: numObjects must be >= 1")

// ErrTooFewAttributes indicates numAttrs < 1.
var ErrTooFewAttributes = errors.New("cxtgen: numAttrs must be >= 1")

// ErrInvalidDensity indicates density is outside the closed interval [0,1].
var ErrInvalidDensity = errors.New("cxtgen: density out of range")

// ErrNeedRandSource indicates a stochastic generation (0 < density < 1)
// was requested without an RNG supplied via WithRand or WithSeed.
var ErrNeedRandSource = errors.New("cxtgen: rng is required")
