// Package simulate runs a deterministic finite automaton over an input
// symbol sequence, returning the verdict and the visited-state path.
//
// What
//
//   - Simulate(d, input, opts...) consumes input symbol by symbol from the
//     start state and returns a Result containing:
//   - Accepted:   whether the run completed in an accepting state
//   - FinalState: the state the run ended in (empty on abort)
//   - Path:       every state visited, start state first
//   - Err:        nil, or the in-band abort cause
//   - Input symbols are validated against the alphabet before stepping;
//     an unknown symbol or an undefined transition aborts the run.
//   - WithOnStep registers a hook invoked after each successful transition.
//   - Runes and Fields tokenize a raw input string into symbols.
//
// Why
//
//   - Aborted runs (stray symbol, missing transition) are expected,
//     user-facing rejections — they are folded into the Result so callers
//     can render "rejected: no transition from q1 on 1" distinctly from a
//     programming error, which is the only thing Simulate's error return
//     carries (a nil automaton).
//
// Determinism
//
//	A DFA is immutable and the run keeps no hidden state, so for a fixed
//	automaton and input every call returns an identical Result.
//
// Edge cases
//
//   - Empty input is valid: Path is [start] and the verdict is whether the
//     start state itself accepts.
//
// Complexity: O(n) time, O(n) memory for an input of n symbols.
package simulate
