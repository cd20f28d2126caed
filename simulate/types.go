// Package simulate defines the result shape, tunable options, and error
// values for DFA simulation.
package simulate

import (
	"errors"

	"github.com/katalvlaran/dfakit/dfa"
)

// Sentinel errors for simulation.
var (
	// ErrNilAutomaton is returned when a nil *dfa.DFA is passed to Simulate.
	ErrNilAutomaton = errors.New("simulate: automaton is nil")

	// ErrSymbolNotInAlphabet is recorded in Result.Err when an input symbol
	// is not a member of the automaton's alphabet.
	ErrSymbolNotInAlphabet = errors.New("simulate: symbol not in alphabet")

	// ErrNoTransition is recorded in Result.Err when the current state has
	// no outgoing transition for the next input symbol.
	ErrNoTransition = errors.New("simulate: no transition from state")
)

// Option configures simulation behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks customizing a Simulate run.
type Options struct {
	// OnStep is called after each successful transition with the source
	// state, the consumed symbol, and the destination state.
	OnStep func(from dfa.State, on dfa.Symbol, to dfa.State)
}

// DefaultOptions returns Options with a no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		OnStep: func(dfa.State, dfa.Symbol, dfa.State) {},
	}
}

// WithOnStep registers a callback invoked after every successful transition,
// in input order. Useful for tracing or rendering the run as it happens.
func WithOnStep(fn func(from dfa.State, on dfa.Symbol, to dfa.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result holds the outcome of one simulation run.
//
// Rejection comes in two flavors: a completed run whose final state is not
// accepting (Err == nil, Accepted == false), and an aborted run that hit an
// unknown symbol or an undefined transition (Err != nil). Aborts are
// expected, user-facing conditions, so they live in-band here rather than
// in Simulate's error return.
type Result struct {
	// Accepted reports whether the input was consumed completely and the
	// final state is an accepting state.
	Accepted bool

	// FinalState is the state the run ended in. Empty when Err is non-nil.
	FinalState dfa.State

	// Path is the sequence of states visited, starting with the start
	// state. On an aborted run it covers only the prefix processed before
	// the failure.
	Path []dfa.State

	// Err is nil for a completed run, ErrSymbolNotInAlphabet or
	// ErrNoTransition (wrapped with the offending symbol/state) for an
	// aborted one.
	Err error
}
