// Package minimize computes the unique minimal DFA equivalent to a given
// automaton, restricted to its reachable states, via partition refinement
// over the Myhill–Nerode equivalence.
//
// Pipeline:
//
//  1. Reachability pruning — states unreachable from start are discarded
//     before refinement; they cannot affect observable behavior and would
//     otherwise wrongly split blocks.
//  2. Initial partition — accepting vs. non-accepting reachable states.
//  3. Refinement to fixed point — each pass splits blocks by the target
//     block of every symbol (undefined transitions are their own target);
//     termination is guaranteed because the block count only grows and is
//     bounded by the state count.
//  4. Quotient construction — blocks become states q0..qN, rebuilt through
//     dfa.New so the result re-validates every structural invariant.
//
// Complexity: O(S²·A) time worst case for S reachable states and A symbols
// (each of ≤S passes costs O(S·A·log S)); O(S·A) memory.
package minimize

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/dfakit/dfa"
)

// Minimize returns the minimal DFA accepting the same language as d,
// restricted to the states reachable from d's start state. The input is
// never mutated; the result is a fresh automaton with states labeled
// q0..qN (blocks ordered by their smallest original member label, so the
// labeling is stable across calls).
//
// Minimizing an already-minimal automaton returns an equivalent automaton
// with the same number of states; minimization is idempotent up to that
// relabeling.
func Minimize(d *dfa.DFA) (*dfa.DFA, error) {
	if d == nil {
		return nil, ErrNilDFA
	}

	p := newPartition(d)
	p.refine(d)

	return p.quotient(d)
}

// Classes returns the groups of indistinguishable reachable states of d —
// the final refinement partition over the original state labels. Each group
// is sorted, and groups are ordered by their smallest member.
func Classes(d *dfa.DFA) ([][]dfa.State, error) {
	if d == nil {
		return nil, ErrNilDFA
	}

	p := newPartition(d)
	p.refine(d)

	return p.groups(), nil
}

// refine splits blocks until a full pass over all states and symbols
// produces no further split.
//
// Each pass computes, per state, a signature (own block, target block per
// sorted symbol) and regroups states by signature. A state's own block is
// part of the signature, so blocks never merge; the pass count is bounded
// by the number of states.
func (p *partition) refine(d *dfa.DFA) {
	alphabet := d.Alphabet()
	sigs := make([][]int, len(p.states))
	order := make([]int, len(p.states))

	for {
		for i, s := range p.states {
			sig := make([]int, 0, len(alphabet)+1)
			sig = append(sig, p.class[i])
			for _, sym := range alphabet {
				if to, ok := d.Step(s, sym); ok {
					sig = append(sig, p.class[p.index[to]])
				} else {
					sig = append(sig, noTarget)
				}
			}
			sigs[i] = sig
		}

		// Group states by signature: sort state indices lexicographically
		// by signature, then assign compact block ids over equal runs.
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return lessSig(sigs[order[a]], sigs[order[b]])
		})

		next := make([]int, len(p.states))
		blocks := 0
		for k, i := range order {
			if k == 0 || lessSig(sigs[order[k-1]], sigs[i]) {
				blocks++
			}
			next[i] = blocks - 1
		}

		if blocks == p.blocks {
			// No block split this pass: the partition is the fixed point.
			return
		}
		p.class = next
		p.blocks = blocks
	}
}

// quotient builds the minimized automaton: one state per block, labeled
// q0..qN with blocks ordered by smallest original member. The transition
// for (block, symbol) is probed on the block's first member — refinement
// guarantees every member agrees on both definedness and target block.
func (p *partition) quotient(d *dfa.DFA) (*dfa.DFA, error) {
	blocks := p.groups()

	// Map every original state to its block's fresh label.
	name := make(map[dfa.State]dfa.State, len(p.states))
	states := make([]dfa.State, len(blocks))
	for i, members := range blocks {
		label := dfa.State(fmt.Sprintf("q%d", i))
		states[i] = label
		for _, s := range members {
			name[s] = label
		}
	}

	// A block accepts iff its members do; the initial partition already
	// separated acceptance kinds, so probing one member suffices.
	acceptBlocks := bitset.New(uint(len(blocks)))
	for i, members := range blocks {
		if d.IsAccept(members[0]) {
			acceptBlocks.Set(uint(i))
		}
	}
	accept := make([]dfa.State, 0, acceptBlocks.Count())
	for i, ok := acceptBlocks.NextSet(0); ok; i, ok = acceptBlocks.NextSet(i + 1) {
		accept = append(accept, states[i])
	}

	alphabet := d.Alphabet()
	transitions := make([]dfa.Transition, 0, len(blocks)*len(alphabet))
	for i, members := range blocks {
		rep := members[0]
		for _, sym := range alphabet {
			if to, ok := d.Step(rep, sym); ok {
				transitions = append(transitions, dfa.Transition{
					From: states[i],
					On:   sym,
					To:   name[to],
				})
			}
		}
	}

	return dfa.New(states, alphabet, transitions, name[d.Start()], accept)
}

// lessSig compares two equal-length signatures lexicographically.
func lessSig(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// sortGroups orders blocks by their smallest (first) member label.
func sortGroups(groups [][]dfa.State) {
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
}
