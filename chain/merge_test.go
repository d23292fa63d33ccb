package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markov/chain"
)

func TestMerge_DisjointChains(t *testing.T) {
	a := chain.New()
	require.NoError(t, a.AddTransition("A", "B", 1.0, nil))
	b := chain.New()
	require.NoError(t, b.AddTransition("C", "D", 1.0, nil))

	out, err := chain.Merge(a, b, chain.MergeAdd)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, out.States())
	assert.Equal(t, 2, out.TransitionCount())
	assert.InDelta(t, 1.0, out.TransitionMass("A", "B"), 1e-15)
	assert.InDelta(t, 1.0, out.TransitionMass("C", "D"), 1e-15)
}

func TestMerge_AddSumsOverlap(t *testing.T) {
	a := chain.New()
	require.NoError(t, a.AddTransition("A", "B", 0.4, map[string]any{"src": "a", "keep": true}))
	b := chain.New()
	require.NoError(t, b.AddTransition("A", "B", 0.5, map[string]any{"src": "b"}))

	out, err := chain.Merge(a, b, chain.MergeAdd)
	require.NoError(t, err)

	assert.InDelta(t, 0.9, out.TransitionMass("A", "B"), 1e-12)

	attrs, err := out.TransitionAttrs("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "b", attrs["src"], "second chain wins on conflicting keys")
	assert.Equal(t, true, attrs["keep"], "first chain's unique keys survive")
}

func TestMerge_OverwriteReplacesOverlap(t *testing.T) {
	a := chain.New()
	require.NoError(t, a.AddTransition("A", "B", 0.4, nil))
	require.NoError(t, a.AddTransition("A", "C", 0.6, nil))
	b := chain.New()
	require.NoError(t, b.AddTransition("A", "B", 0.5, nil))

	out, err := chain.Merge(a, b, chain.MergeOverwrite)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, out.TransitionMass("A", "B"), 1e-15)
	assert.InDelta(t, 0.6, out.TransitionMass("A", "C"), 1e-15, "non-overlapping edges pass through")
}

func TestMerge_WithNormalize(t *testing.T) {
	a := chain.New()
	require.NoError(t, a.AddTransition("A", "B", 2, nil))
	require.NoError(t, a.AddTransition("A", "C", 8, nil))
	b := chain.New()
	require.NoError(t, b.AddTransition("A", "D", 10, nil))

	out, err := chain.Merge(a, b, chain.MergeAdd, chain.WithMergeNormalize())
	require.NoError(t, err)

	assert.InDelta(t, 0.1, out.TransitionMass("A", "B"), 1e-12)
	assert.InDelta(t, 0.4, out.TransitionMass("A", "C"), 1e-12)
	assert.InDelta(t, 0.5, out.TransitionMass("A", "D"), 1e-12)
	assert.True(t, out.IsStochastic(0))
}

func TestMerge_AttributePrecedence(t *testing.T) {
	a := chain.New(chain.WithAttrs(map[string]any{"name": "first", "kept": 1}))
	require.NoError(t, a.AddState("X", map[string]any{"tag": "old"}))
	b := chain.New(chain.WithAttrs(map[string]any{"name": "second"}))
	require.NoError(t, b.AddState("X", map[string]any{"tag": "new"}))

	out, err := chain.Merge(a, b, chain.MergeAdd)
	require.NoError(t, err)

	name, _ := out.Attr("name")
	assert.Equal(t, "second", name)
	kept, _ := out.Attr("kept")
	assert.Equal(t, 1, kept)

	attrs, err := out.StateAttrs("X")
	require.NoError(t, err)
	assert.Equal(t, "new", attrs["tag"])
}

func TestMerge_InputsNotMutated(t *testing.T) {
	a := chain.New()
	require.NoError(t, a.AddTransition("A", "B", 0.4, nil))
	b := chain.New()
	require.NoError(t, b.AddTransition("A", "B", 0.5, nil))

	_, err := chain.Merge(a, b, chain.MergeAdd, chain.WithMergeNormalize())
	require.NoError(t, err)

	assert.InDelta(t, 0.4, a.TransitionMass("A", "B"), 1e-15)
	assert.InDelta(t, 0.5, b.TransitionMass("A", "B"), 1e-15)
}

func TestMerge_Errors(t *testing.T) {
	c := chain.New()

	_, err := chain.Merge(nil, c, chain.MergeAdd)
	assert.ErrorIs(t, err, chain.ErrNilChain)

	_, err = chain.Merge(c, nil, chain.MergeAdd)
	assert.ErrorIs(t, err, chain.ErrNilChain)

	_, err = chain.Merge(c, c, chain.MergeMode(42))
	assert.ErrorIs(t, err, chain.ErrBadMergeMode)
}
