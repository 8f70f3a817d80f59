// SPDX-License-Identifier: MIT
package cxtgen

import (
	"fmt"
	"math/rand"
)

// config holds a generator call's resolved knobs.
type config struct {
	rng      *rand.Rand
	objectFn func(int) string
	attrFn   func(int) string
}

func defaultConfig() *config {
	return &config{
		objectFn: func(i int) string { return fmt.Sprintf("g%d", i) },
		attrFn:   func(i int) string { return fmt.Sprintf("m%d", i) },
	}
}

// Option customizes Random's object/attribute naming and RNG source.
type Option func(*config)

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cxtgen: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed. Use in tests/examples to
// lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithObjectNamer overrides the default "g<i>" object-naming scheme.
// Panics on nil.
func WithObjectNamer(fn func(int) string) Option {
	if fn == nil {
		panic("cxtgen: WithObjectNamer(nil)")
	}
	return func(c *config) { c.objectFn = fn }
}

// WithAttributeNamer overrides the default "m<i>" attribute-naming scheme.
// Panics on nil.
func WithAttributeNamer(fn func(int) string) Option {
	if fn == nil {
		panic("cxtgen: WithAttributeNamer(nil)")
	}
	return func(c *config) { c.attrFn = fn }
}
