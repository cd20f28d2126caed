package codec

import (
	"github.com/katalvlaran/dfakit/dfa"
	"github.com/katalvlaran/dfakit/minimize"
	"github.com/katalvlaran/dfakit/simulate"
)

// Simulate decodes desc, runs it over input (one symbol per character), and
// folds the outcome into the wire SimulationResult. The returned error
// covers description/validation failures only; simulation aborts appear in
// SimulationResult.Error per the boundary contract.
func Simulate(desc Description, input string) (SimulationResult, error) {
	d, err := Decode(desc)
	if err != nil {
		return SimulationResult{}, err
	}

	res, err := simulate.Simulate(d, simulate.Runes(input))
	if err != nil {
		return SimulationResult{}, err
	}

	out := SimulationResult{
		Accepted:   res.Accepted,
		FinalState: string(res.FinalState),
		Path:       statesToStrings(res.Path),
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}

	return out, nil
}

// Minimize decodes desc, minimizes it, and re-encodes the result together
// with the before/after state counts.
func Minimize(desc Description) (MinimizationResult, error) {
	d, err := Decode(desc)
	if err != nil {
		return MinimizationResult{}, err
	}

	min, err := minimize.Minimize(d)
	if err != nil {
		return MinimizationResult{}, err
	}

	return MinimizationResult{
		Automaton:           Encode(min),
		OriginalStateCount:  d.NumStates(),
		MinimizedStateCount: min.NumStates(),
	}, nil
}

// statesToStrings flattens a state path for the wire shape.
func statesToStrings(path []dfa.State) []string {
	out := make([]string, len(path))
	for i, s := range path {
		out[i] = string(s)
	}

	return out
}
