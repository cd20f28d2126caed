// Package minimize reduces a DFA to the unique minimal automaton accepting
// the same language, using partition refinement over the Myhill–Nerode
// state equivalence.
//
// What
//
//   - Minimize(d) returns a fresh minimal DFA:
//   - unreachable states are pruned first (they never affect behavior)
//   - reachable states start split into accepting vs. non-accepting
//   - blocks are refined by per-symbol target block until no pass splits
//     ("no transition" counts as its own distinguished target)
//   - each final block becomes one state q0..qN, ordered by the block's
//     smallest original member label
//   - Classes(d) exposes the final partition itself: the groups of
//     indistinguishable original states.
//
// Why
//
//   - Two states landing in one block are provably indistinguishable by any
//     input string; collapsing them preserves the accepted language exactly.
//   - Any two distinct states of the result are distinguishable, so no
//     automaton with fewer states accepts the same language — minimization
//     is idempotent (a second pass never finds a split).
//
// Guarantees
//
//   - The input automaton is never mutated.
//   - The result is built through dfa.New and satisfies every model
//     invariant; it can be simulated or minimized again like any other DFA.
//   - Labeling, block order, and transitions are deterministic across calls.
//
// Complexity (S = reachable states, A = |alphabet|)
//
//   - Time:   O(S²·A) worst case (≤S passes, each O(S·A·log S))
//   - Memory: O(S·A) for the per-pass signatures
//
// Errors
//
//   - ErrNilDFA for a nil automaton; a valid automaton has no error path.
package minimize
