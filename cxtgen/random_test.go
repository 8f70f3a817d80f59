// SPDX-License-Identifier: MIT
package cxtgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptual/fca/cxtgen"
)

func TestRandomRejectsInvalidParameters(t *testing.T) {
	_, err := cxtgen.Random(0, 3, 0.5, cxtgen.WithSeed(1))
	assert.ErrorIs(t, err, cxtgen.ErrTooFewObjects)

	_, err = cxtgen.Random(3, 0, 0.5, cxtgen.WithSeed(1))
	assert.ErrorIs(t, err, cxtgen.ErrTooFewAttributes)

	_, err = cxtgen.Random(3, 3, 1.5, cxtgen.WithSeed(1))
	assert.ErrorIs(t, err, cxtgen.ErrInvalidDensity)

	_, err = cxtgen.Random(3, 3, 0.5)
	assert.ErrorIs(t, err, cxtgen.ErrNeedRandSource)
}

func TestRandomDensityZeroAndOneDoNotNeedRNG(t *testing.T) {
	empty, err := cxtgen.Random(3, 4, 0.0)
	require.NoError(t, err)
	for g := 0; g < empty.NumObjects(); g++ {
		assert.True(t, empty.ObjAttrs(g).IsEmpty())
	}

	full, err := cxtgen.Random(3, 4, 1.0)
	require.NoError(t, err)
	for g := 0; g < full.NumObjects(); g++ {
		assert.Equal(t, full.NumAttributes(), full.ObjAttrs(g).Count())
	}
}

func TestRandomIsDeterministicUnderSameSeed(t *testing.T) {
	a, err := cxtgen.Random(20, 6, 0.4, cxtgen.WithSeed(42))
	require.NoError(t, err)
	b, err := cxtgen.Random(20, 6, 0.4, cxtgen.WithSeed(42))
	require.NoError(t, err)

	for g := 0; g < a.NumObjects(); g++ {
		assert.True(t, a.ObjAttrs(g).Equal(b.ObjAttrs(g)), "object %d differs across identically-seeded runs", g)
	}
}

func TestRandomHonorsCustomNamers(t *testing.T) {
	ctx, err := cxtgen.Random(2, 2, 1.0,
		cxtgen.WithObjectNamer(func(i int) string { return "obj" }),
		cxtgen.WithAttributeNamer(func(i int) string { return "attr" }),
	)
	require.NoError(t, err)
	assert.Equal(t, "obj", ctx.Object(0))
	assert.Equal(t, "attr", ctx.Attribute(0))
}
