// SPDX-License-Identifier: MIT
package cxt

import "github.com/conceptual/fca/bitset"

// AddObject appends a new object named t, with attribute set attrs ⊆ M, to
// the context. attrs must be a BitSet over [0,|M|); the zero object count
// is permitted. Every D[m] is rebuilt one size larger to cover the new
// index, then each m ∈ attrs is mirrored into I and D[m]; A gains a fresh
// entry equal to attrs.Clone().
//
// Complexity: O(|G|·|M|/64) because every D[m] is rebuilt one size larger.
func (c *Context[T]) AddObject(t T, attrs *bitset.BitSet) {
	g := len(c.objects)
	c.objects = append(c.objects, t)
	c.a = append(c.a, attrs.Clone())
	for m, old := range c.d {
		grown := bitset.New(g + 1)
		old.Each(func(i int) bool {
			grown.Set(i)
			return true
		})
		c.d[m] = grown
	}
	attrs.Each(func(m int) bool {
		c.incidence[Pair{g, m}] = struct{}{}
		c.d[m].Set(g)
		return true
	})
}

// AddAttribute appends a new attribute named t, possessed by objects ⊆ G,
// symmetric to AddObject.
//
// Complexity: O(|G|·|M|/64) because every A[g] is rebuilt one size larger.
func (c *Context[T]) AddAttribute(t T, objs *bitset.BitSet) {
	m := len(c.attributes)
	c.attributes = append(c.attributes, t)
	c.d = append(c.d, objs.Clone())
	for g, old := range c.a {
		grown := bitset.New(m + 1)
		old.Each(func(i int) bool {
			grown.Set(i)
			return true
		})
		c.a[g] = grown
	}
	objs.Each(func(g int) bool {
		c.incidence[Pair{g, m}] = struct{}{}
		c.a[g].Set(m)
		return true
	})
}

// shrink returns a BitSet over [0,n-1) holding every member of b other than
// drop, with every member greater than drop shifted down by one. Used to
// rebuild the D (resp. A) side of the incidence when an object (resp.
// attribute) is removed and its universe shrinks by one.
func shrink(b *bitset.BitSet, drop int) *bitset.BitSet {
	out := bitset.New(b.Len() - 1)
	b.Each(func(i int) bool {
		switch {
		case i < drop:
			out.Set(i)
		case i > drop:
			out.Set(i - 1)
		}
		return true
	})
	return out
}

func spliceOut[T any](s []T, i int) []T {
	return append(s[:i:i], s[i+1:]...)
}

// RemoveObject removes object index i: drops every (i, *) pair from I,
// decrements every stored index > i in I and in every D[m], and drops A[i].
// Names shift down to stay index-aligned.
//
// Complexity: O(|G|·|M|/64) because every D[m] is rebuilt one size smaller.
func (c *Context[T]) RemoveObject(i int) {
	newIncidence := make(map[Pair]struct{}, len(c.incidence))
	for p := range c.incidence {
		if p.G == i {
			continue
		}
		if p.G > i {
			p.G--
		}
		newIncidence[p] = struct{}{}
	}
	c.incidence = newIncidence

	for m := range c.d {
		c.d[m] = shrink(c.d[m], i)
	}
	c.a = spliceOut(c.a, i)
	c.objects = spliceOut(c.objects, i)
}

// RemoveAttribute removes attribute index m, symmetric to RemoveObject.
//
// Complexity: O(|G|·|M|/64) because every A[g] is rebuilt one size smaller.
func (c *Context[T]) RemoveAttribute(m int) {
	newIncidence := make(map[Pair]struct{}, len(c.incidence))
	for p := range c.incidence {
		if p.M == m {
			continue
		}
		if p.M > m {
			p.M--
		}
		newIncidence[p] = struct{}{}
	}
	c.incidence = newIncidence

	for g := range c.a {
		c.a[g] = shrink(c.a[g], m)
	}
	c.d = spliceOut(c.d, m)
	c.attributes = spliceOut(c.attributes, m)
}

// RenameObject changes only the name sequence entry for object i.
func (c *Context[T]) RenameObject(i int, t T) { c.objects[i] = t }

// RenameAttribute changes only the name sequence entry for attribute m.
func (c *Context[T]) RenameAttribute(m int, t T) { c.attributes[m] = t }
