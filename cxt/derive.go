// SPDX-License-Identifier: MIT
package cxt

import "github.com/conceptual/fca/bitset"

// AttrDerivation computes Y′ for Y ⊆ M: the set of objects possessing
// every attribute in Y. An empty Y derives to the full extent [0,|G|).
//
// Complexity: O(|Y|·|G|/64), intersecting D[m] for each m∈Y in turn.
func (c *Context[T]) AttrDerivation(y *bitset.BitSet) *bitset.BitSet {
	if y.IsEmpty() {
		return bitset.Full(c.NumObjects())
	}
	var out *bitset.BitSet
	y.Each(func(m int) bool {
		if out == nil {
			out = c.d[m].Clone()
			return true
		}
		out.IntersectWith(c.d[m])
		return true
	})
	return out
}

// ObjDerivation computes X′ for X ⊆ G: the set of attributes shared by
// every object in X. An empty X derives to the full intent [0,|M|).
//
// Complexity: O(|X|·|M|/64), intersecting A[g] for each g∈X in turn.
func (c *Context[T]) ObjDerivation(x *bitset.BitSet) *bitset.BitSet {
	if x.IsEmpty() {
		return bitset.Full(c.NumAttributes())
	}
	var out *bitset.BitSet
	x.Each(func(g int) bool {
		if out == nil {
			out = c.a[g].Clone()
			return true
		}
		out.IntersectWith(c.a[g])
		return true
	})
	return out
}

// AttrHull computes Y″ = obj_derivation(attr_derivation(Y)): the attribute
// closure. Idempotent, monotone, extensive — the standard Galois-closure
// laws every downstream engine relies on.
func (c *Context[T]) AttrHull(y *bitset.BitSet) *bitset.BitSet {
	return c.ObjDerivation(c.AttrDerivation(y))
}

// ObjHull computes X″ = attr_derivation(obj_derivation(X)): the object
// closure, symmetric to AttrHull.
func (c *Context[T]) ObjHull(x *bitset.BitSet) *bitset.BitSet {
	return c.AttrDerivation(c.ObjDerivation(x))
}

// IsIntent reports whether Y is a fixed point of AttrHull.
func (c *Context[T]) IsIntent(y *bitset.BitSet) bool {
	return y.Equal(c.AttrHull(y))
}

// IsExtent reports whether X is a fixed point of ObjHull.
func (c *Context[T]) IsExtent(x *bitset.BitSet) bool {
	return x.Equal(c.ObjHull(x))
}
