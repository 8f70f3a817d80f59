// SPDX-License-Identifier: MIT
package explore

import (
	"strings"

	"github.com/conceptual/fca/bitset"
	"github.com/conceptual/fca/cxt"
	"github.com/conceptual/fca/implication"
)

// Session runs the attribute-exploration loop over a context
// that only grows during Run, one counterexample object at a time.
type Session struct {
	ctx    *cxt.Context[string]
	oracle Oracle
	cfg    *sessionConfig

	attrIndex map[string]int
}

// New prepares a Session over ctx and oracle. ctx's attribute set is fixed
// for the lifetime of Run; only objects are ever added.
func New(ctx *cxt.Context[string], oracle Oracle, opts ...Option) *Session {
	idx := make(map[string]int, ctx.NumAttributes())
	for m, name := range ctx.Attributes() {
		idx[name] = m
	}
	return &Session{
		ctx:       ctx,
		oracle:    oracle,
		cfg:       resolveConfig(opts),
		attrIndex: idx,
	}
}

func (s *Session) namesOf(y *bitset.BitSet) []string {
	names := make([]string, 0, y.Count())
	y.Each(func(m int) bool {
		names = append(names, s.ctx.Attribute(m))
		return true
	})
	return names
}

// resolveAttrs maps a counterexample's attribute names back to a BitSet,
// reporting false if any name is not already present in the context:
// unknown attribute names are rejected.
func (s *Session) resolveAttrs(names []string) (*bitset.BitSet, bool) {
	out := bitset.New(s.ctx.NumAttributes())
	for _, name := range names {
		m, ok := s.attrIndex[name]
		if !ok {
			return nil, false
		}
		out.Set(m)
	}
	return out, true
}

// Run drives the exploration loop to completion and returns the
// accumulated implication basis L. Termination is guaranteed: the context
// grows monotonically and the attribute set is finite.
func (s *Session) Run() []implication.Implication {
	numAttrs := s.ctx.NumAttributes()
	full := bitset.Full(numAttrs)
	z := bitset.New(numAttrs)

	var l []implication.Implication
	for !z.Equal(full) {
		h := s.ctx.AttrHull(z)
		for !z.Equal(h) {
			conclusion := h.Difference(z)
			if s.oracle.Validate(s.namesOf(z), s.namesOf(conclusion)) {
				l = append(l, implication.Implication{Premise: z.Clone(), Conclusion: h.Clone()})
				s.cfg.logger.Printf("explore: accepted %v -> %v", s.namesOf(z), s.namesOf(h))
				break
			}
			s.cfg.logger.Printf("explore: rejected %v -> %v", s.namesOf(z), s.namesOf(conclusion))

			for {
				name, attrs := s.oracle.Counterexample()
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				attrSet, ok := s.resolveAttrs(attrs)
				if !ok {
					continue
				}
				s.ctx.AddObject(name, attrSet)
				s.cfg.logger.Printf("explore: counterexample %q added with %v", name, attrs)
				break
			}
			h = s.ctx.AttrHull(z)
		}
		z = implication.NextPreclosure(l, numAttrs, z)
	}
	return l
}
