// Package dfakit models deterministic finite automata (DFA) and provides
// the two classic operations on them: simulation of an input string with a
// full state-path trace, and minimization to the unique smallest equivalent
// automaton via partition refinement.
//
// 🚀 What is dfakit?
//
//	A small, precise automata kernel:
//		• dfa/      — the validated, immutable Automaton model (states, alphabet,
//		              partial transition function, start & accept states)
//		• simulate/ — run an automaton over an input symbol sequence, collecting
//		              the visited-state path and the accept/reject verdict
//		• minimize/ — Myhill–Nerode state-equivalence minimization with
//		              reachability pruning and quotient reconstruction
//		• codec/    — the JSON boundary shape (dual transition encodings)
//		• examples/ — named, embedded example automata in that shape
//
// ✨ Why dfakit?
//
//   - Pure functions – every operation maps an immutable DFA (plus input)
//     to a result value; safe for concurrent callers without locks
//   - Precise errors – sentinel validation errors distinguish a missing
//     start state from a stray accept state from a dangling transition
//   - Deterministic – sorted iteration everywhere; identical inputs give
//     identical results, paths, and minimized state labels
//
// Quick ASCII example (accepts strings ending in "01"):
//
//	     1┌─┐           0┌─┐
//	      ▼ │            ▼ │
//	  →  q0─┘ ──0──►  q1───┘ ──1──►  ((q2))
//	      ▲                            │ │
//	      └─────────────1──────────────┘ 0──► q1
//
// Construct it with dfa.New, run it with simulate.Simulate, and shrink any
// equivalent-but-larger automaton back to it with minimize.Minimize.
package dfakit
