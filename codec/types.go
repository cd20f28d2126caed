// Package codec defines the serialized automaton description exchanged
// with the surrounding service, and its error values.
package codec

import (
	"errors"

	"github.com/katalvlaran/dfakit/dfa"
)

// Sentinel errors for description decoding.
var (
	// ErrBadTransition indicates a transition entry that is neither a
	// [from, symbol, to] triple nor part of a composite-key map.
	ErrBadTransition = errors.New("codec: malformed transition entry")

	// ErrBadTransitionKey indicates a composite map key without the
	// "from,symbol" shape.
	ErrBadTransitionKey = errors.New("codec: malformed transition key")
)

// Description is the wire shape of an automaton. Field names match the
// boundary contract exactly: states, alphabet, transitions, start_state,
// accept_states.
type Description struct {
	States       []string       `json:"states"`
	Alphabet     []string       `json:"alphabet"`
	Transitions  TransitionList `json:"transitions"`
	StartState   string         `json:"start_state"`
	AcceptStates []string       `json:"accept_states"`
}

// TransitionList is the polymorphic transition encoding. It unmarshals from
// either of the two accepted JSON forms:
//
//	[["q0", "0", "q1"], ...]              — a list of [from, symbol, to] triples
//	{"q0,0": "q1", ...}                   — a map from "from,symbol" keys to targets
//
// and always marshals back as the triple list. Both forms normalize into
// the same []dfa.Transition, so nothing downstream branches on encoding.
type TransitionList []dfa.Transition

// SimulationResult is the wire shape of one simulation run.
type SimulationResult struct {
	Accepted   bool     `json:"accepted"`
	FinalState string   `json:"final_state,omitempty"`
	Path       []string `json:"path"`
	Error      string   `json:"error,omitempty"`
}

// MinimizationResult is the wire shape of one minimization: the minimized
// automaton in the same Description form, plus the state counts the caller
// renders ("5 states → 3 states").
type MinimizationResult struct {
	Automaton           Description `json:"automaton"`
	OriginalStateCount  int         `json:"original_state_count"`
	MinimizedStateCount int         `json:"minimized_state_count"`
}
