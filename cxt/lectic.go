// SPDX-License-Identifier: MIT
package cxt

import (
	"sort"

	"github.com/conceptual/fca/bitset"
)

// Concept is a formal concept: a (extent, intent) pair with extent′ =
// intent and intent′ = extent.
type Concept struct {
	Extent *bitset.BitSet
	Intent *bitset.BitSet
}

// LecticLess reports whether intent a strictly precedes intent b in lectic
// order: A precedes B iff min((A\B) ∪ (B\A)) ∈ B. Both must share the same
// universe size.
//
// This is the symmetric-difference form of weight(Y) = Σ_{m∈Y} 2^(|M|−m):
// the lowest attribute on which A and B disagree decides the order, and it
// decides in favor of whichever side contains it — which is exactly what
// comparing those two power-of-two weights would produce, without risking
// overflow for attribute universes larger than 63.
//
// Complexity: O(|M|/64).
func LecticLess(a, b *bitset.BitSet) bool {
	diff := a.Union(b)
	diff.DifferenceWith(a.Intersect(b))
	m, ok := diff.Min()
	if !ok {
		return false // a == b
	}
	return b.Contains(m)
}

// SortConcepts reorders concepts in place by ascending lectic weight of
// their intent, matching the order NextClosure would have produced. Used
// to normalize FCbO output into the same canonical order.
func SortConcepts(concepts []Concept) {
	sort.SliceStable(concepts, func(i, j int) bool {
		return LecticLess(concepts[i].Intent, concepts[j].Intent)
	})
}
