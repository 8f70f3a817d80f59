// SPDX-License-Identifier: MIT
package implication

import "github.com/conceptual/fca/bitset"

// Implication is a pair (Premise, Conclusion) of attribute sets meaning
// "every object having all of Premise has all of Conclusion" — equivalently
// Premise″ ⊇ Conclusion.
type Implication struct {
	Premise    *bitset.BitSet
	Conclusion *bitset.BitSet
}

// Sound reports whether imp holds under the given attribute hull:
// hull(Premise) ⊇ Conclusion.
func (imp Implication) Sound(hull func(*bitset.BitSet) *bitset.BitSet) bool {
	return imp.Conclusion.IsSubsetOf(hull(imp.Premise))
}
