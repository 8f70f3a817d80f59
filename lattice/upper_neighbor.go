// SPDX-License-Identifier: MIT
package lattice

import (
	"github.com/conceptual/fca/bitset"
	"github.com/conceptual/fca/cxt"
)

// UpperNeighborCandidates returns the surviving subset of D = G\X that each
// index a distinct upper-cover concept of the concept with extent x. For
// each m ∈ D, it forms H = obj_hull(X ∪ {m}) and disqualifies m when H,
// intersected with the *currently remaining* candidate set, is not exactly
// {m} — i.e. adding m alone would silently drag in another not-yet-
// disqualified candidate, meaning m does not index an immediate cover.
//
// The candidate set is tested against its own live, shrinking state rather
// than a frozen snapshot of D: once a candidate is disqualified, later
// candidates are checked against the smaller remaining set, not the
// original D. Checking against a frozen D instead would let two candidates
// that both pull each other in falsely disqualify one another.
func UpperNeighborCandidates[T any](ctx *cxt.Context[T], x *bitset.BitSet) *bitset.BitSet {
	full := bitset.Full(ctx.NumObjects())
	diff := full.Difference(x)
	output := diff.Clone()

	diff.Each(func(m int) bool {
		candidate := x.Clone()
		candidate.Set(m)
		hull := ctx.ObjHull(candidate)

		inter := hull.Intersect(output)
		single := bitset.Of(ctx.NumObjects(), m)
		if !inter.Equal(single) {
			output.Clear(m)
		}
		return true
	})
	return output
}

// UpperNeighborExtents returns the extents of every immediate upper-cover
// concept of the concept with extent x.
func UpperNeighborExtents[T any](ctx *cxt.Context[T], x *bitset.BitSet) []*bitset.BitSet {
	candidates := UpperNeighborCandidates(ctx, x)
	out := make([]*bitset.BitSet, 0, candidates.Count())
	candidates.Each(func(m int) bool {
		next := x.Clone()
		next.Set(m)
		out = append(out, ctx.ObjHull(next))
		return true
	})
	return out
}
