// Package simulate executes a DFA over an input symbol sequence, producing
// the accept/reject verdict and the full visited-state path.
//
// The run starts at the automaton's start state and consumes symbols in
// order. Each symbol is first checked against the alphabet, then stepped
// through the transition function; an unknown symbol or an undefined
// transition aborts the run with an in-band error in the Result.
//
// Complexity: O(n) time and O(n) path memory for an input of n symbols.
package simulate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dfakit/dfa"
)

// Simulate runs automaton d over input, applying any number of functional
// Options. The returned error is non-nil only for a nil automaton; symbol
// and transition failures are reported in Result.Err (see Result).
//
// For a fixed automaton and input the result is identical on every call:
// there is no hidden state and no randomness.
func Simulate(d *dfa.DFA, input []dfa.Symbol, opts ...Option) (Result, error) {
	if d == nil {
		return Result{}, ErrNilAutomaton
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cur := d.Start()
	res := Result{Path: make([]dfa.State, 0, len(input)+1)}
	res.Path = append(res.Path, cur)

	for _, sym := range input {
		// Alphabet membership comes first: an unknown symbol aborts before
		// the transition function is consulted at all.
		if !d.HasSymbol(sym) {
			res.Err = fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, sym)

			return res, nil
		}

		next, ok := d.Step(cur, sym)
		if !ok {
			res.Err = fmt.Errorf("%w: %q on %q", ErrNoTransition, cur, sym)

			return res, nil
		}

		o.OnStep(cur, sym, next)
		cur = next
		res.Path = append(res.Path, cur)
	}

	// Input exhausted without failure: the verdict is the final state's
	// acceptance. An empty input lands here immediately, so the result
	// reflects whether the start state alone is accepting.
	res.FinalState = cur
	res.Accepted = d.IsAccept(cur)

	return res, nil
}

// Runes tokenizes s into one Symbol per rune — the usual encoding when each
// character of a user-typed input string is one alphabet symbol.
func Runes(s string) []dfa.Symbol {
	out := make([]dfa.Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, dfa.Symbol(r))
	}

	return out
}

// Fields tokenizes s into one Symbol per sep-delimited token, skipping
// empty tokens — for alphabets whose symbols are longer than one character.
func Fields(s, sep string) []dfa.Symbol {
	parts := strings.Split(s, sep)
	out := make([]dfa.Symbol, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, dfa.Symbol(p))
		}
	}

	return out
}
