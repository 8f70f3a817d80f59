// SPDX-License-Identifier: MIT
package cxt

import "github.com/conceptual/fca/bitset"

// Pair is an incidence pair (g, m): object index g has attribute index m.
type Pair struct {
	G, M int
}

// Context holds a formal context (G, M, I) over names of type T. Objects
// and attributes are identified by contiguous indices; see the package doc
// for the invariants every method here maintains.
//
// The zero value is not usable; construct with New or Empty.
type Context[T any] struct {
	objects    []T
	attributes []T
	incidence  map[Pair]struct{}

	// A[g]: atomic object derivation, subset of [0,|M|).
	a []*bitset.BitSet
	// D[m]: atomic attribute derivation, subset of [0,|G|).
	d []*bitset.BitSet
}

// Empty returns a context with no objects and no attributes.
func Empty[T any]() *Context[T] {
	return &Context[T]{incidence: make(map[Pair]struct{})}
}

// New allocates a context over the given objects and attributes and
// populates A and D with one pass over incidence. The pair set is copied,
// not retained by reference to the caller's slice.
//
// Complexity: O(|G|+|M|+|incidence|).
func New[T any](objects, attributes []T, incidence []Pair) *Context[T] {
	c := &Context[T]{
		objects:    append([]T(nil), objects...),
		attributes: append([]T(nil), attributes...),
		incidence:  make(map[Pair]struct{}, len(incidence)),
		a:          make([]*bitset.BitSet, len(objects)),
		d:          make([]*bitset.BitSet, len(attributes)),
	}
	for g := range c.a {
		c.a[g] = bitset.New(len(c.attributes))
	}
	for m := range c.d {
		c.d[m] = bitset.New(len(c.objects))
	}
	for _, p := range incidence {
		c.set(p.G, p.M)
	}
	return c
}

// set records (g,m) in all three incidence representations. Panics if g or
// m is out of range, via the underlying BitSet bounds check.
func (c *Context[T]) set(g, m int) {
	c.incidence[Pair{g, m}] = struct{}{}
	c.a[g].Set(m)
	c.d[m].Set(g)
}

// NumObjects returns |G|.
func (c *Context[T]) NumObjects() int { return len(c.objects) }

// NumAttributes returns |M|.
func (c *Context[T]) NumAttributes() int { return len(c.attributes) }

// Objects returns the object names in index order. Callers must not mutate
// the returned slice.
func (c *Context[T]) Objects() []T { return c.objects }

// Attributes returns the attribute names in index order. Callers must not
// mutate the returned slice.
func (c *Context[T]) Attributes() []T { return c.attributes }

// Object returns the name of object index g.
func (c *Context[T]) Object(g int) T { return c.objects[g] }

// Attribute returns the name of attribute index m.
func (c *Context[T]) Attribute(m int) T { return c.attributes[m] }

// HasIncidence reports whether (g,m) ∈ I.
func (c *Context[T]) HasIncidence(g, m int) bool {
	_, ok := c.incidence[Pair{g, m}]
	return ok
}

// ObjAttrs returns A[g], the atomic derivation of object g. The returned
// BitSet is a live reference; clone before mutating.
func (c *Context[T]) ObjAttrs(g int) *bitset.BitSet { return c.a[g] }

// AttrObjs returns D[m], the atomic derivation of attribute m. The returned
// BitSet is a live reference; clone before mutating.
func (c *Context[T]) AttrObjs(m int) *bitset.BitSet { return c.d[m] }
