// SPDX-License-Identifier: MIT
package implication

import "github.com/conceptual/fca/bitset"

// ClosureNaive computes L*(seed): the smallest superset of seed closed
// under firing every implication in l whose premise it contains. Fired
// implications are dropped from consideration each round; a
// round that fires nothing ends the computation.
//
// Complexity: O(|L|) per round, up to |L| rounds worst case.
func ClosureNaive(l []Implication, seed *bitset.BitSet) *bitset.BitSet {
	result := seed.Clone()
	pending := append([]Implication(nil), l...)
	for {
		changed := false
		remaining := pending[:0]
		for _, imp := range pending {
			if imp.Premise.IsSubsetOf(result) {
				result.UnionWith(imp.Conclusion)
				changed = true
				continue
			}
			remaining = append(remaining, imp)
		}
		pending = remaining
		if !changed {
			return result
		}
	}
}

// ClosureLinear computes the same result as ClosureNaive in amortized
// linear time: a countdown per implication (initialized to |Premise|) and
// an inverted index from attribute to the implications it appears in.
// Each newly-settled attribute decrements the countdown of every
// implication indexed under it; a countdown reaching zero fires that
// implication and enqueues its new attributes.
//
// Complexity: O(Σ|Premise|+Σ|Conclusion|) total work across the whole
// closure, independent of how many rounds ClosureNaive would have taken.
func ClosureLinear(l []Implication, numAttrs int, seed *bitset.BitSet) *bitset.BitSet {
	result := seed.Clone()

	count := make([]int, len(l))
	byAttr := make([][]int, numAttrs)
	for idx, imp := range l {
		count[idx] = imp.Premise.Count()
		imp.Premise.Each(func(m int) bool {
			byAttr[m] = append(byAttr[m], idx)
			return true
		})
	}

	fired := make([]bool, len(l))
	queued := make([]bool, numAttrs)
	var queue []int

	settle := func(m int) {
		if !result.Contains(m) {
			result.Set(m)
		}
		if !queued[m] {
			queued[m] = true
			queue = append(queue, m)
		}
	}
	fire := func(idx int) {
		fired[idx] = true
		l[idx].Conclusion.Each(func(c int) bool {
			settle(c)
			return true
		})
	}

	for idx := range l {
		if count[idx] == 0 {
			fire(idx)
		}
	}
	result.Each(func(m int) bool {
		settle(m)
		return true
	})

	for head := 0; head < len(queue); head++ {
		m := queue[head]
		for _, idx := range byAttr[m] {
			if fired[idx] {
				continue
			}
			count[idx]--
			if count[idx] == 0 {
				fire(idx)
			}
		}
	}
	return result
}
