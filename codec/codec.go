// Package codec converts between the wire Description of an automaton and
// the validated dfa.DFA model, accepting both transition encodings the
// boundary contract allows.
package codec

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/dfakit/dfa"
)

// UnmarshalJSON accepts either the triple-list or the composite-key map
// encoding. Map entries are normalized in sorted key order so the decoded
// list is deterministic regardless of JSON object ordering.
func (t *TransitionList) UnmarshalJSON(data []byte) error {
	// Triple-list form first: it is the canonical encoding.
	var triples [][]string
	if err := json.Unmarshal(data, &triples); err == nil {
		out := make(TransitionList, 0, len(triples))
		for _, tr := range triples {
			if len(tr) != 3 {
				return fmt.Errorf("%w: %v (want [from, symbol, to])", ErrBadTransition, tr)
			}
			out = append(out, dfa.Transition{
				From: dfa.State(tr[0]),
				On:   dfa.Symbol(tr[1]),
				To:   dfa.State(tr[2]),
			})
		}
		*t = out

		return nil
	}

	// Composite-key map form: {"from,symbol": "to"}.
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%w: want a list of triples or a \"from,symbol\" map", ErrBadTransition)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(TransitionList, 0, len(m))
	for _, k := range keys {
		// Split on the first comma only: symbols may themselves contain
		// commas, state labels may not.
		from, on, ok := strings.Cut(k, ",")
		if !ok {
			return fmt.Errorf("%w: %q (want \"from,symbol\")", ErrBadTransitionKey, k)
		}
		out = append(out, dfa.Transition{
			From: dfa.State(strings.TrimSpace(from)),
			On:   dfa.Symbol(strings.TrimSpace(on)),
			To:   dfa.State(m[k]),
		})
	}
	*t = out

	return nil
}

// MarshalJSON always emits the triple-list form.
func (t TransitionList) MarshalJSON() ([]byte, error) {
	triples := make([][3]string, len(t))
	for i, tr := range t {
		triples[i] = [3]string{string(tr.From), string(tr.On), string(tr.To)}
	}

	return json.Marshal(triples)
}

// Decode builds a validated dfa.DFA from a Description. Validation errors
// from dfa.New pass through unchanged, so callers can errors.Is-match the
// specific invariant violated.
func Decode(desc Description) (*dfa.DFA, error) {
	states := make([]dfa.State, len(desc.States))
	for i, s := range desc.States {
		states[i] = dfa.State(s)
	}
	alphabet := make([]dfa.Symbol, len(desc.Alphabet))
	for i, s := range desc.Alphabet {
		alphabet[i] = dfa.Symbol(s)
	}
	accept := make([]dfa.State, len(desc.AcceptStates))
	for i, s := range desc.AcceptStates {
		accept[i] = dfa.State(s)
	}

	return dfa.New(states, alphabet, desc.Transitions, dfa.State(desc.StartState), accept)
}

// Encode renders d as a Description. All fields come out in the model's
// sorted order, so encoding is deterministic.
func Encode(d *dfa.DFA) Description {
	states := d.States()
	alphabet := d.Alphabet()
	acceptStates := d.AcceptStates()

	desc := Description{
		States:       make([]string, len(states)),
		Alphabet:     make([]string, len(alphabet)),
		Transitions:  TransitionList(d.Transitions()),
		StartState:   string(d.Start()),
		AcceptStates: make([]string, len(acceptStates)),
	}
	for i, s := range states {
		desc.States[i] = string(s)
	}
	for i, s := range alphabet {
		desc.Alphabet[i] = string(s)
	}
	for i, s := range acceptStates {
		desc.AcceptStates[i] = string(s)
	}

	return desc
}

// DecodeJSON parses a JSON document into a validated dfa.DFA.
func DecodeJSON(data []byte) (*dfa.DFA, error) {
	var desc Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("codec: decode description: %w", err)
	}

	return Decode(desc)
}

// EncodeJSON renders d as an indented JSON document in the wire shape.
func EncodeJSON(d *dfa.DFA) ([]byte, error) {
	return json.MarshalIndent(Encode(d), "", "  ")
}
