// Package dfa defines the State, Symbol, and Transition types, the DFA
// value itself, and the sentinel validation errors raised at construction.
//
// A DFA is immutable once built by New; every later operation (Step,
// Reachable, the simulate and minimize packages) is a pure query over it.
//
// Errors:
//
//	ErrNoStates            - the state set is empty.
//	ErrNoAlphabet          - the alphabet is empty.
//	ErrDuplicateState      - the same state label appears twice.
//	ErrDuplicateSymbol     - the same symbol label appears twice.
//	ErrStartNotFound       - the start state is not a member of the state set.
//	ErrAcceptNotFound      - an accept state is not a member of the state set.
//	ErrUnknownState        - a transition references a state outside the set.
//	ErrUnknownSymbol       - a transition references a symbol outside the alphabet.
//	ErrDuplicateTransition - two transitions leave the same state on the same symbol.
package dfa

import "errors"

// Sentinel errors for DFA construction. Each is wrapped by New with the
// offending label, so callers can both errors.Is-match the cause and render
// the detail.
var (
	// ErrNoStates indicates an empty state set.
	ErrNoStates = errors.New("dfa: state set is empty")

	// ErrNoAlphabet indicates an empty alphabet.
	ErrNoAlphabet = errors.New("dfa: alphabet is empty")

	// ErrDuplicateState indicates a state label listed more than once.
	ErrDuplicateState = errors.New("dfa: duplicate state")

	// ErrDuplicateSymbol indicates a symbol label listed more than once.
	ErrDuplicateSymbol = errors.New("dfa: duplicate symbol")

	// ErrStartNotFound indicates a start state outside the state set.
	ErrStartNotFound = errors.New("dfa: start state not in states")

	// ErrAcceptNotFound indicates an accept state outside the state set.
	ErrAcceptNotFound = errors.New("dfa: accept state not in states")

	// ErrUnknownState indicates a transition endpoint outside the state set.
	ErrUnknownState = errors.New("dfa: transition references unknown state")

	// ErrUnknownSymbol indicates a transition symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("dfa: transition references unknown symbol")

	// ErrDuplicateTransition indicates two outgoing edges for one
	// (state, symbol) pair, which a deterministic automaton cannot have.
	ErrDuplicateTransition = errors.New("dfa: duplicate transition for state and symbol")
)

// State identifies one state of an automaton. States are opaque labels,
// unique within their DFA, and totally ordered by their string value.
type State string

// Symbol is one letter of an automaton's input alphabet. Symbols are opaque
// labels, unique within their DFA's alphabet.
//
// State and Symbol are distinct types on purpose: the compiler rejects code
// that feeds a state label where an input symbol belongs, while both keep
// plain string equality and ordering.
type Symbol string

// Transition is one edge of the transition function: from state From, on
// input On, move to state To.
type Transition struct {
	// From is the source state.
	From State

	// On is the input symbol consumed.
	On Symbol

	// To is the destination state.
	To State
}

// key is the internal lookup key of the transition function. Both external
// transition encodings (triple list and composite-key map) normalize to this
// one structure at construction time.
type key struct {
	from State
	on   Symbol
}
