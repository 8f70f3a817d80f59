// SPDX-License-Identifier: MIT
package implication

import (
	"github.com/conceptual/fca/bitset"
	"github.com/conceptual/fca/nextclosure"
)

// NextPreclosure computes the lectically-next preclosure after z under the
// implication set l — the same A⊕i successor NextClosure uses over
// attr_hull, here driven by L* instead. Returns the full attribute set
// [0,numAttrs) when z is the lectically-last preclosure, signaling that
// basis construction (or attribute exploration) is complete.
//
// Complexity: O(numAttrs) candidate probes, each a ClosureLinear call.
func NextPreclosure(l []Implication, numAttrs int, z *bitset.BitSet) *bitset.BitSet {
	hull := func(y *bitset.BitSet) *bitset.BitSet {
		return ClosureLinear(l, numAttrs, y)
	}
	next, ok := nextclosure.Successor(z, numAttrs, hull)
	if !ok {
		return bitset.Full(numAttrs)
	}
	return next
}
