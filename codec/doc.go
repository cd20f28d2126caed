// Package codec is the serialization boundary of dfakit: the JSON
// Description shape a surrounding service exchanges, and the conversions
// between that shape and the validated dfa.DFA model.
//
// What
//
//   - Description mirrors the wire contract field for field: states,
//     alphabet, transitions, start_state, accept_states.
//   - Transitions arrive in either of two encodings — a list of
//     [from, symbol, to] triples, or a map from "from,symbol" composite
//     keys to targets — and normalize into one internal list at decode
//     time; nothing downstream branches on the encoding.
//   - Decode / Encode move between Description and dfa.DFA;
//     DecodeJSON / EncodeJSON do the same for raw JSON documents.
//   - Simulate and Minimize run a Description end to end and return the
//     wire result shapes (SimulationResult, MinimizationResult with
//     before/after state counts).
//
// Why
//
//   - The core consumes only validated dfa.DFA values; every malformed or
//     inconsistent description is rejected here or by dfa.New before any
//     algorithm runs, with the dfa package's sentinel errors passing
//     through for errors.Is matching.
//
// Determinism
//
//	Encode emits every collection in the model's sorted order, and map-form
//	transitions decode in sorted key order, so round-trips are stable.
//
// Errors
//
//   - ErrBadTransition, ErrBadTransitionKey for malformed transition JSON
//   - all dfa validation sentinels, unchanged, from Decode
package codec
