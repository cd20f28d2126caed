// Package dfa provides the canonical in-memory representation of a
// deterministic finite automaton, with structural validation at
// construction and pure queries afterwards.
//
// What
//
//   - New builds an immutable DFA from raw collections: states, alphabet,
//     transition triples, a start state, and accept states.
//   - Every structural invariant is checked once, up front:
//   - non-empty state set and alphabet, no duplicate labels
//   - start state and accept states are members of the state set
//   - every transition references a known source, symbol, and target
//   - at most one destination per (state, symbol) pair
//   - Step(from, on) queries the partial transition function without
//     assuming completeness — an undefined step returns ok == false.
//   - Reachable() lists the states reachable from the start state.
//   - Complete() reports whether the transition function is total.
//
// Why
//
//   - A DFA that exists is well-formed: simulate and minimize never
//     re-validate, and their algorithms carry no defensive branches.
//   - Incomplete transition functions model automata without an explicit
//     reject/dead state; callers see the absence, not a synthetic sink.
//   - Distinct State and Symbol newtypes keep state labels and input
//     symbols from being mixed up at compile time.
//
// Determinism
//
//	States, alphabet, accept states, and transitions are held — and always
//	returned — in sorted label order, so every traversal over a DFA is
//	reproducible.
//
// Complexity (S = |states|, A = |alphabet|, T = |transitions|)
//
//   - New:        O(S·log S + A·log A + T)
//   - Step:       O(1)
//   - Reachable:  O(S·A)
//   - Complete:   O(S·A)
//
// Errors
//
//   - ErrNoStates, ErrNoAlphabet          for empty input collections
//   - ErrDuplicateState, ErrDuplicateSymbol for repeated labels
//   - ErrStartNotFound                    for a start state outside the set
//   - ErrAcceptNotFound                   for an accept state outside the set
//   - ErrUnknownState, ErrUnknownSymbol   for dangling transition references
//   - ErrDuplicateTransition              for nondeterministic fan-out
//
// All are wrapped with the offending label; match the cause with errors.Is.
package dfa
