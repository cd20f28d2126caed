package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfakit/dfa"
	"github.com/katalvlaran/dfakit/simulate"
)

// endsWith01 builds the canonical automaton accepting binary strings
// ending in "01".
func endsWith01(t *testing.T) *dfa.DFA {
	t.Helper()

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
	require.NoError(t, err)

	return d
}

// TestSimulate_NilAutomaton verifies the only hard error path.
func TestSimulate_NilAutomaton(t *testing.T) {
	_, err := simulate.Simulate(nil, simulate.Runes("01"))
	assert.ErrorIs(t, err, simulate.ErrNilAutomaton)
}

// TestSimulate_Verdicts runs the ends-in-01 automaton over its canonical
// accepted and rejected inputs.
func TestSimulate_Verdicts(t *testing.T) {
	d := endsWith01(t)

	cases := []struct {
		input    string
		accepted bool
	}{
		{"01", true},
		{"101", true},
		{"0101", true},
		{"10", false},
		{"11", false},
		{"010", false},
		{"", false},
	}
	for _, tc := range cases {
		res, err := simulate.Simulate(d, simulate.Runes(tc.input))
		require.NoError(t, err, "input %q", tc.input)
		assert.NoError(t, res.Err, "input %q must not abort", tc.input)
		assert.Equal(t, tc.accepted, res.Accepted, "verdict for %q", tc.input)
	}
}

// TestSimulate_Path verifies the full visited-state trace.
func TestSimulate_Path(t *testing.T) {
	d := endsWith01(t)

	res, err := simulate.Simulate(d, simulate.Runes("101"))
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, dfa.State("q2"), res.FinalState)
	assert.Equal(t, []dfa.State{"q0", "q0", "q1", "q2"}, res.Path)
}

// TestSimulate_EmptyInput verifies that an empty input is valid and the
// verdict is the start state's own acceptance.
func TestSimulate_EmptyInput(t *testing.T) {
	d := endsWith01(t)

	res, err := simulate.Simulate(d, nil)
	require.NoError(t, err)
	assert.False(t, res.Accepted, "q0 is not accepting")
	assert.Equal(t, dfa.State("q0"), res.FinalState)
	assert.Equal(t, []dfa.State{"q0"}, res.Path)

	// Same automaton with an accepting start.
	d2, err := dfa.New([]dfa.State{"s"}, []dfa.Symbol{"x"}, nil, "s", []dfa.State{"s"})
	require.NoError(t, err)
	res, err = simulate.Simulate(d2, nil)
	require.NoError(t, err)
	assert.True(t, res.Accepted, "accepting start state accepts the empty string")
}

// TestSimulate_SymbolNotInAlphabet verifies the in-band abort on an input
// symbol outside the alphabet, including the prefix-only path.
func TestSimulate_SymbolNotInAlphabet(t *testing.T) {
	d := endsWith01(t)

	res, err := simulate.Simulate(d, simulate.Runes("02x1"))
	require.NoError(t, err, "aborts are in-band, not hard errors")
	assert.ErrorIs(t, res.Err, simulate.ErrSymbolNotInAlphabet)
	assert.False(t, res.Accepted)
	assert.Empty(t, res.FinalState)
	assert.Equal(t, []dfa.State{"q0", "q1"}, res.Path, "path covers the processed prefix only")
}

// TestSimulate_NoTransition verifies the in-band abort on an undefined
// transition: states {q0,q1}, alphabet {0,1}, only (q0,0)→q1, input "1".
func TestSimulate_NoTransition(t *testing.T) {
	d, err := dfa.New(
		[]dfa.State{"q0", "q1"},
		[]dfa.Symbol{"0", "1"},
		[]dfa.Transition{{From: "q0", On: "0", To: "q1"}},
		"q0",
		[]dfa.State{"q1"},
	)
	require.NoError(t, err)

	res, err := simulate.Simulate(d, simulate.Runes("1"))
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err, simulate.ErrNoTransition)
	assert.False(t, res.Accepted)
	assert.Empty(t, res.FinalState)
	assert.Equal(t, []dfa.State{"q0"}, res.Path)

	// The defined symbol still works, and then dead-ends.
	res, err = simulate.Simulate(d, simulate.Runes("00"))
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err, simulate.ErrNoTransition)
	assert.Equal(t, []dfa.State{"q0", "q1"}, res.Path)
}

// TestSimulate_Deterministic verifies that repeated calls on the same
// automaton and input return identical results.
func TestSimulate_Deterministic(t *testing.T) {
	d := endsWith01(t)
	input := simulate.Runes("1100101")

	first, err := simulate.Simulate(d, input)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := simulate.Simulate(d, input)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d differed", i)
	}
}

// TestSimulate_OnStepHook verifies the hook fires once per consumed symbol,
// in order, and not for the aborting symbol.
func TestSimulate_OnStepHook(t *testing.T) {
	d := endsWith01(t)

	var steps []string
	hook := func(from dfa.State, on dfa.Symbol, to dfa.State) {
		steps = append(steps, string(from)+"-"+string(on)+"->"+string(to))
	}

	res, err := simulate.Simulate(d, simulate.Runes("01"), simulate.WithOnStep(hook))
	require.NoError(t, err)
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"q0-0->q1", "q1-1->q2"}, steps)

	steps = nil
	res, err = simulate.Simulate(d, simulate.Runes("0x"), simulate.WithOnStep(hook))
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err, simulate.ErrSymbolNotInAlphabet)
	assert.Equal(t, []string{"q0-0->q1"}, steps, "hook must not fire for the aborting symbol")
}

// TestRunes_And_Fields covers both input tokenizers.
func TestRunes_And_Fields(t *testing.T) {
	assert.Equal(t, []dfa.Symbol{"0", "1", "0"}, simulate.Runes("010"))
	assert.Empty(t, simulate.Runes(""))

	assert.Equal(t, []dfa.Symbol{"push", "pop"}, simulate.Fields("push,pop", ","))
	assert.Equal(t, []dfa.Symbol{"a", "b"}, simulate.Fields(" a , ,b ", ","), "blank tokens are dropped")
}
