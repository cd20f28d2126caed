// Package minimize defines the error values and the internal partition
// representation for DFA minimization.
package minimize

import (
	"errors"

	"github.com/katalvlaran/dfakit/dfa"
)

// ErrNilDFA is returned when a nil *dfa.DFA is passed to Minimize or Classes.
//
// It is the only error path: a validated automaton makes pruning,
// refinement, and quotient construction total functions.
var ErrNilDFA = errors.New("minimize: automaton is nil")

// noTarget is the distinguished block id standing in for "no transition
// defined". Two states that differ only in whether a symbol has an outgoing
// edge are distinguishable (one rejects immediately, the other may not), so
// the undefined case must be its own refinement target.
const noTarget = -1

// partition is the refinement workspace: the reachable states in sorted
// order, the index of each state in that order, and each state's current
// block id. Block ids are compact integers in [0, blocks); the arena is
// renumbered every pass instead of rebuilding label strings.
//
// A partition lives for one Minimize or Classes call and is not persisted.
type partition struct {
	states []dfa.State
	index  map[dfa.State]int
	class  []int
	blocks int
}

// newPartition prunes unreachable states and splits the remainder into the
// initial blocks: accepting and non-accepting. If either side is empty the
// partition starts as the single nonempty block.
func newPartition(d *dfa.DFA) *partition {
	states := d.Reachable()

	p := &partition{
		states: states,
		index:  make(map[dfa.State]int, len(states)),
		class:  make([]int, len(states)),
	}

	// Block 0 is whichever acceptance kind appears first in sorted order;
	// the other kind (if present) becomes block 1. Ids stay compact either way.
	seen := map[bool]int{}
	for i, s := range states {
		p.index[s] = i
		kind := d.IsAccept(s)
		id, ok := seen[kind]
		if !ok {
			id = len(seen)
			seen[kind] = id
		}
		p.class[i] = id
	}
	p.blocks = len(seen)

	return p
}

// groups materializes the partition as sorted member lists, ordered by each
// block's smallest state label. Both orderings make the output stable.
func (p *partition) groups() [][]dfa.State {
	members := make([][]dfa.State, p.blocks)
	for i, s := range p.states {
		members[p.class[i]] = append(members[p.class[i]], s)
	}
	// p.states is sorted, so each member list is sorted already; order the
	// blocks by their first member.
	out := make([][]dfa.State, 0, p.blocks)
	out = append(out, members...)
	sortGroups(out)

	return out
}
