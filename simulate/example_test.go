package simulate_test

import (
	"fmt"

	"github.com/katalvlaran/dfakit/dfa"
	"github.com/katalvlaran/dfakit/simulate"
)

// ExampleSimulate runs the ends-in-"01" automaton over one accepted and
// one rejected input and prints the verdicts with their state paths.
func ExampleSimulate() {
	d, err := dfa.New(
		[]dfa.State{"q0", "q1", "q2"},
		[]dfa.Symbol{"0", "1"},
		[]dfa.Transition{
			{From: "q0", On: "0", To: "q1"},
			{From: "q0", On: "1", To: "q0"},
			{From: "q1", On: "0", To: "q1"},
			{From: "q1", On: "1", To: "q2"},
			{From: "q2", On: "0", To: "q1"},
			{From: "q2", On: "1", To: "q0"},
		},
		"q0",
		[]dfa.State{"q2"},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, input := range []string{"101", "10"} {
		res, err := simulate.Simulate(d, simulate.Runes(input))
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%q accepted=%v path=%v\n", input, res.Accepted, res.Path)
	}
	// Output:
	// "101" accepted=true path=[q0 q0 q1 q2]
	// "10" accepted=false path=[q0 q0 q1]
}

// ExampleSimulate_abort shows an in-band rejection: the automaton has no
// transition from q0 on "1", so the run stops with the cause in Result.Err.
func ExampleSimulate_abort() {
	d, err := dfa.New(
		[]dfa.State{"q0", "q1"},
		[]dfa.Symbol{"0", "1"},
		[]dfa.Transition{{From: "q0", On: "0", To: "q1"}},
		"q0",
		[]dfa.State{"q1"},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, _ := simulate.Simulate(d, simulate.Runes("1"))
	fmt.Println(res.Accepted)
	fmt.Println(res.Err)
	fmt.Println(res.Path)
	// Output:
	// false
	// simulate: no transition from state: "q0" on "1"
	// [q0]
}
