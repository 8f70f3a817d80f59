// SPDX-License-Identifier: MIT

// Package testdata holds the concrete fixtures used as seed scenarios
// across the engine test suites: the small "triangles" context with a
// hand-verified canonical basis, the classic "living beings and water"
// biology context, and a larger synthetic "EU" context used to check
// engine agreement at scale.
package testdata

import (
	"embed"

	"github.com/conceptual/fca/bitset"
	"github.com/conceptual/fca/cxt"
)

//go:embed triangles.cxt living_beings_and_water.cxt
var files embed.FS

func parse(name string) (*cxt.Context[string], error) {
	f, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cxt.Parse(f)
}

// Triangles returns the 5-object, 5-attribute context whose canonical
// basis is the seed scenario in the test suite.
func Triangles() (*cxt.Context[string], error) { return parse("triangles.cxt") }

// LivingBeingsAndWater returns the classic 8-object, 8-attribute biology
// context used to check FCbO/NextClosure/brute-force concept agreement.
func LivingBeingsAndWater() (*cxt.Context[string], error) { return parse("living_beings_and_water.cxt") }

// euRanges describes D[m] for each of the 7 synthetic attributes as a
// half-open object-index range [lo, hi). Sizes are 29,29,29,29,29,28,28,
// summing to 201 incidences over 48 objects — the scale of the EU
// agreement scenario.
var euRanges = [7][2]int{
	{0, 29},
	{5, 34},
	{10, 39},
	{15, 44},
	{19, 48},
	{0, 28},
	{20, 48},
}

// EU builds the 48-object, 7-attribute, 201-incidence synthetic context
// used to check that FCbO and NextClosure agree with brute-force powerset
// enumeration at a scale too large to eyeball by hand.
func EU() *cxt.Context[int] {
	const numObjects = 48
	objects := make([]int, numObjects)
	for g := range objects {
		objects[g] = g
	}
	attributes := make([]int, len(euRanges))
	for m := range attributes {
		attributes[m] = m
	}

	var incidence []cxt.Pair
	for m, rng := range euRanges {
		for g := rng[0]; g < rng[1]; g++ {
			incidence = append(incidence, cxt.Pair{G: g, M: m})
		}
	}
	return cxt.New(objects, attributes, incidence)
}

// AllSubsets returns every subset of [0,n) as a BitSet, for brute-force
// powerset enumeration in agreement tests. Only usable for small n — it is
// 2^n sets.
func AllSubsets(n int) []*bitset.BitSet {
	out := make([]*bitset.BitSet, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		b := bitset.New(n)
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				b.Set(i)
			}
		}
		out = append(out, b)
	}
	return out
}
