package dfa

import "github.com/bits-and-blooms/bitset"

// Reachable returns the set of states reachable from the start state via
// zero or more transitions, in sorted order. The start state is always
// included.
//
// Traversal is an iterative depth-first walk over Step with a bitset-backed
// visited set keyed by state index, so cost is O(S·A) time and O(S) extra
// memory for S states and A symbols.
func (d *DFA) Reachable() []State {
	seen := d.reachable()

	out := make([]State, 0, seen.Count())
	for i, ok := seen.NextSet(0); ok; i, ok = seen.NextSet(i + 1) {
		out = append(out, d.states[i])
	}

	return out
}

// reachable computes the visited bitset over state indices.
func (d *DFA) reachable() *bitset.BitSet {
	seen := bitset.New(uint(len(d.states)))
	stack := []State{d.start}
	seen.Set(uint(d.index[d.start]))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, sym := range d.alphabet {
			next, ok := d.delta[key{from: cur, on: sym}]
			if !ok {
				continue
			}
			if i := uint(d.index[next]); !seen.Test(i) {
				seen.Set(i)
				stack = append(stack, next)
			}
		}
	}

	return seen
}
