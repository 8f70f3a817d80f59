// SPDX-License-Identifier: MIT
package implication

import (
	"github.com/conceptual/fca/bitset"
	"github.com/conceptual/fca/cxt"
)

// CanonicalBasis computes the Duquenne–Guigues basis of ctx: the minimum-
// cardinality sound and complete set of implications. Implications are
// returned in the order produced, which is the lectic order of their
// premises.
//
// Complexity: one AttrHull plus one NextPreclosure (itself O(numAttrs)
// ClosureLinear calls) per basis member plus per rejected preclosure probe.
func CanonicalBasis[T any](ctx *cxt.Context[T]) []Implication {
	numAttrs := ctx.NumAttributes()
	full := bitset.Full(numAttrs)
	z := bitset.New(numAttrs)

	var l []Implication
	for !z.Equal(full) {
		hull := ctx.AttrHull(z)
		if !z.Equal(hull) {
			l = append(l, Implication{Premise: z.Clone(), Conclusion: hull})
		}
		z = NextPreclosure(l, numAttrs, z)
	}
	return l
}

// truncateLEQ returns a copy of z with every member strictly greater than
// maxInclusive removed.
func truncateLEQ(z *bitset.BitSet, maxInclusive int) *bitset.BitSet {
	out := bitset.New(z.Len())
	z.Each(func(m int) bool {
		if m <= maxInclusive {
			out.Set(m)
		}
		return true
	})
	return out
}

// CanonicalBasisOptimised computes the same basis as CanonicalBasis, fusing
// the NextPreclosure descent with basis accumulation: it reuses the
// descent cursor i across iterations instead of restarting from numAttrs-1
// on every probe, adopting the full context hull whenever it extends the
// preclosure past the cursor and truncating to attributes ≤ i otherwise.
//
// Complexity: amortizes the per-attribute descent across basis members
// rather than repeating it from scratch for every member, which matters
// once |L| grows large.
func CanonicalBasisOptimised[T any](ctx *cxt.Context[T]) []Implication {
	numAttrs := ctx.NumAttributes()
	full := bitset.Full(numAttrs)

	z := ctx.AttrHull(bitset.New(numAttrs))
	var l []Implication
	if !z.IsEmpty() {
		l = append(l, Implication{Premise: bitset.New(numAttrs), Conclusion: z.Clone()})
	}

	i := numAttrs - 1
	for !z.Equal(full) {
		for j := i; j >= 0; j-- {
			if z.Contains(j) {
				z.Clear(j)
				continue
			}
			z.Set(j)
			b := ClosureLinear(l, numAttrs, z)
			z.Clear(j)
			diff := b.Difference(z)
			minAdded, ok := diff.Min()
			if !ok || minAdded >= j {
				z = b
				i = j
				break
			}
		}

		hull := ctx.AttrHull(z)
		if !z.Equal(hull) {
			l = append(l, Implication{Premise: z.Clone(), Conclusion: hull.Clone()})
		}

		diff := hull.Difference(z)
		minAdded, ok := diff.Min()
		if !ok || minAdded >= i {
			z = hull
			i = numAttrs - 1
		} else {
			z = truncateLEQ(z, i)
		}
	}
	return l
}
