// Package dfa implements the validated, immutable automaton model.
//
// New checks every structural invariant up front and returns a sentinel
// error for the first violation; a *DFA that exists is therefore always
// well-formed, and no later operation re-validates.
//
// Complexity:
//
//   - New:  O(S·log S + A·log A + T) for S states, A symbols, T transitions
//     (the log factors are the one-time sorts that fix iteration order).
//   - Step: O(1) map lookup.
//   - Accessors return fresh sorted slices in O(n) of their length.
package dfa

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// DFA is a deterministic finite automaton: a finite state set, a finite
// input alphabet, a partial transition function states×alphabet→states,
// one start state, and a subset of accepting states.
//
// The transition function may be incomplete; a missing (state, symbol)
// entry models an implicit dead end rather than an explicit reject state.
//
// A DFA is immutable after New. All methods are read-only and safe for
// concurrent use.
type DFA struct {
	// states holds every state label in sorted order; index is its inverse.
	states []State
	index  map[State]int

	// alphabet holds every symbol label in sorted order.
	alphabet []Symbol
	symbols  map[Symbol]struct{}

	// delta is the normalized partial transition function.
	delta map[key]State

	// start is the initial state.
	start State

	// accept marks accepting states by their position in states.
	accept *bitset.BitSet
}

// New constructs and validates a DFA from raw collections.
//
// Validation order: emptiness and duplicate checks on states and alphabet,
// then start-state membership, then accept-set membership, then each
// transition's endpoints and symbol. The first violated invariant is
// returned as a wrapped sentinel error naming the offending label.
func New(states []State, alphabet []Symbol, transitions []Transition, start State, accept []State) (*DFA, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	if len(alphabet) == 0 {
		return nil, ErrNoAlphabet
	}

	d := &DFA{
		states:   make([]State, 0, len(states)),
		index:    make(map[State]int, len(states)),
		alphabet: make([]Symbol, 0, len(alphabet)),
		symbols:  make(map[Symbol]struct{}, len(alphabet)),
		delta:    make(map[key]State, len(transitions)),
		start:    start,
	}

	// State set: unique labels, sorted for deterministic iteration.
	for _, s := range states {
		if _, dup := d.index[s]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateState, s)
		}
		d.index[s] = 0 // placeholder; real indices assigned after sorting
		d.states = append(d.states, s)
	}
	sort.Slice(d.states, func(i, j int) bool { return d.states[i] < d.states[j] })
	for i, s := range d.states {
		d.index[s] = i
	}

	// Alphabet: unique labels, sorted.
	for _, sym := range alphabet {
		if _, dup := d.symbols[sym]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, sym)
		}
		d.symbols[sym] = struct{}{}
		d.alphabet = append(d.alphabet, sym)
	}
	sort.Slice(d.alphabet, func(i, j int) bool { return d.alphabet[i] < d.alphabet[j] })

	// Start state membership.
	if _, ok := d.index[start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	// Accept set membership.
	d.accept = bitset.New(uint(len(d.states)))
	for _, s := range accept {
		i, ok := d.index[s]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrAcceptNotFound, s)
		}
		d.accept.Set(uint(i))
	}

	// Transition function: endpoints and symbols must be known, and no
	// (state, symbol) pair may fan out to two destinations.
	for _, t := range transitions {
		if _, ok := d.index[t.From]; !ok {
			return nil, fmt.Errorf("%w: %q (source of %q on %q)", ErrUnknownState, t.From, t.To, t.On)
		}
		if _, ok := d.symbols[t.On]; !ok {
			return nil, fmt.Errorf("%w: %q (from %q)", ErrUnknownSymbol, t.On, t.From)
		}
		if _, ok := d.index[t.To]; !ok {
			return nil, fmt.Errorf("%w: %q (target of %q on %q)", ErrUnknownState, t.To, t.From, t.On)
		}
		k := key{from: t.From, on: t.On}
		if prev, ok := d.delta[k]; ok && prev != t.To {
			return nil, fmt.Errorf("%w: %q on %q", ErrDuplicateTransition, t.From, t.On)
		}
		d.delta[k] = t.To
	}

	return d, nil
}

// Step returns the destination of the transition from state on symbol, and
// whether such a transition is defined. It never invents a dead state; the
// caller decides what an undefined step means.
func (d *DFA) Step(from State, on Symbol) (State, bool) {
	to, ok := d.delta[key{from: from, on: on}]

	return to, ok
}

// Start returns the initial state.
func (d *DFA) Start() State { return d.start }

// IsAccept reports whether s is an accepting state. Unknown states are not
// accepting.
func (d *DFA) IsAccept(s State) bool {
	i, ok := d.index[s]

	return ok && d.accept.Test(uint(i))
}

// HasState reports whether s belongs to the state set.
func (d *DFA) HasState(s State) bool {
	_, ok := d.index[s]

	return ok
}

// HasSymbol reports whether sym belongs to the alphabet.
func (d *DFA) HasSymbol(sym Symbol) bool {
	_, ok := d.symbols[sym]

	return ok
}

// NumStates returns the number of states.
func (d *DFA) NumStates() int { return len(d.states) }

// NumTransitions returns the number of defined transition entries.
func (d *DFA) NumTransitions() int { return len(d.delta) }

// States returns the state set in sorted order. The slice is a copy.
func (d *DFA) States() []State {
	out := make([]State, len(d.states))
	copy(out, d.states)

	return out
}

// Alphabet returns the alphabet in sorted order. The slice is a copy.
func (d *DFA) Alphabet() []Symbol {
	out := make([]Symbol, len(d.alphabet))
	copy(out, d.alphabet)

	return out
}

// AcceptStates returns the accepting states in sorted order.
func (d *DFA) AcceptStates() []State {
	out := make([]State, 0, d.accept.Count())
	for i, ok := d.accept.NextSet(0); ok; i, ok = d.accept.NextSet(i + 1) {
		out = append(out, d.states[i])
	}

	return out
}

// Transitions returns every defined transition, sorted by source state,
// then symbol, then destination.
func (d *DFA) Transitions() []Transition {
	out := make([]Transition, 0, len(d.delta))
	for k, to := range d.delta {
		out = append(out, Transition{From: k.from, On: k.on, To: to})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].On != out[j].On {
			return out[i].On < out[j].On
		}

		return out[i].To < out[j].To
	})

	return out
}

// Complete reports whether the transition function is total, i.e. every
// (state, symbol) pair has a defined destination.
func (d *DFA) Complete() bool {
	for _, s := range d.states {
		for _, sym := range d.alphabet {
			if _, ok := d.delta[key{from: s, on: sym}]; !ok {
				return false
			}
		}
	}

	return true
}

// String summarizes the automaton for debugging.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA(states=%d, alphabet=%d, transitions=%d, start=%q, accept=%d)",
		len(d.states), len(d.alphabet), len(d.delta), d.start, d.accept.Count())
}
