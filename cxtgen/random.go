// SPDX-License-Identifier: MIT
package cxtgen

import (
	"fmt"

	"github.com/conceptual/fca/cxt"
)

const (
	minObjects = 1
	minAttrs   = 1
	densityMin = 0.0
	densityMax = 1.0
)

// Random builds a numObjects x numAttrs context, including each
// (object, attribute) pair independently with probability density — an
// Erdős–Rényi-style sampler over incidence pairs instead of graph edges:
// validate early, require an RNG only for genuine stochastic sampling
// (0 < density < 1), and apply object/attribute naming deterministically
// regardless of RNG draws.
//
// Complexity: O(numObjects*numAttrs) Bernoulli trials.
func Random(numObjects, numAttrs int, density float64, opts ...Option) (*cxt.Context[string], error) {
	if numObjects < minObjects {
		return nil, fmt.Errorf("cxtgen: numObjects=%d: %w", numObjects, ErrTooFewObjects)
	}
	if numAttrs < minAttrs {
		return nil, fmt.Errorf("cxtgen: numAttrs=%d: %w", numAttrs, ErrTooFewAttributes)
	}
	if density < densityMin || density > densityMax {
		return nil, fmt.Errorf("cxtgen: density=%.6f: %w", density, ErrInvalidDensity)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil && density > 0 && density < 1 {
		return nil, fmt.Errorf("cxtgen: density=%.6f: %w", density, ErrNeedRandSource)
	}

	objects := make([]string, numObjects)
	for g := range objects {
		objects[g] = cfg.objectFn(g)
	}
	attributes := make([]string, numAttrs)
	for m := range attributes {
		attributes[m] = cfg.attrFn(m)
	}

	var incidence []cxt.Pair
	for g := 0; g < numObjects; g++ {
		for m := 0; m < numAttrs; m++ {
			switch {
			case density >= densityMax:
				incidence = append(incidence, cxt.Pair{G: g, M: m})
			case density <= densityMin:
				// never included
			case cfg.rng.Float64() < density:
				incidence = append(incidence, cxt.Pair{G: g, M: m})
			}
		}
	}
	return cxt.New(objects, attributes, incidence), nil
}
