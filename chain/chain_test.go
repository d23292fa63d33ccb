package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markov/chain"
)

// buildWeather creates the canonical 2-state test chain:
// sunny→sunny 0.9, sunny→rainy 0.1, rainy→sunny 0.5, rainy→rainy 0.5.
func buildWeather(t *testing.T) *chain.Chain {
	t.Helper()
	c := chain.New()
	require.NoError(t, c.AddTransitions(
		chain.TW("sunny", "sunny", 0.9),
		chain.TW("sunny", "rainy", 0.1),
		chain.TW("rainy", "sunny", 0.5),
		chain.TW("rainy", "rainy", 0.5),
	))

	return c
}

func TestNew_WithOptions(t *testing.T) {
	c := chain.New(chain.WithStates("A", "B", "C"), chain.WithAttrs(map[string]any{"name": "demo"}))

	assert.Equal(t, []string{"A", "B", "C"}, c.States())
	assert.Equal(t, 3, c.Len())

	name, ok := c.Attr("name")
	assert.True(t, ok)
	assert.Equal(t, "demo", name)
}

func TestAddState_IdempotentAttrMerge(t *testing.T) {
	c := chain.New()
	require.NoError(t, c.AddState("A", map[string]any{"color": "red", "size": 1}))
	require.NoError(t, c.AddState("A", map[string]any{"size": 2}))

	assert.Equal(t, 1, c.Len(), "re-adding must not duplicate the state")

	attrs, err := c.StateAttrs("A")
	require.NoError(t, err)
	assert.Equal(t, "red", attrs["color"])
	assert.Equal(t, 2, attrs["size"], "later attrs overwrite earlier keys")
}

func TestAddState_EmptyLabel(t *testing.T) {
	c := chain.New()
	assert.ErrorIs(t, c.AddState("", nil), chain.ErrEmptyStateID)
}

func TestAddTransition_AutoRegistersEndpoints(t *testing.T) {
	c := chain.New()
	require.NoError(t, c.AddTransition("A", "B", 0.5, nil))

	assert.True(t, c.HasState("A"))
	assert.True(t, c.HasState("B"))
	assert.True(t, c.HasTransition("A", "B"))
	assert.False(t, c.HasTransition("B", "A"))
	assert.Equal(t, []string{"A", "B"}, c.States(), "endpoints registered in insertion order")
}

func TestAddTransition_LastWriteWins(t *testing.T) {
	c := chain.New()
	require.NoError(t, c.AddTransition("A", "B", 0.3, map[string]any{"label": "old"}))
	require.NoError(t, c.AddTransition("A", "B", 0.7, map[string]any{"note": "new"}))

	assert.Equal(t, 1, c.TransitionCount(), "same pair must overwrite, not accumulate")
	assert.InDelta(t, 0.7, c.TransitionMass("A", "B"), 1e-15)

	attrs, err := c.TransitionAttrs("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "new", attrs["note"])
	_, stale := attrs["label"]
	assert.False(t, stale, "overwrite replaces the whole attribute map")
}

func TestAddTransitions_Records(t *testing.T) {
	c := chain.New()
	require.NoError(t, c.AddTransitions(
		chain.T("A", "B"),
		chain.TW("B", "C", 0.4),
		chain.TWA("C", "A", 0.6, map[string]any{"kind": "loopback"}),
	))

	assert.Equal(t, 3, c.TransitionCount())
	assert.Zero(t, c.TransitionMass("A", "B"), "bare record stores no weight")
	assert.InDelta(t, 0.4, c.TransitionMass("B", "C"), 1e-15)

	attrs, err := c.TransitionAttrs("C", "A")
	require.NoError(t, err)
	assert.Equal(t, "loopback", attrs["kind"])
}

func TestAddTransitions_InvalidRecord(t *testing.T) {
	c := chain.New()
	err := c.AddTransitions(chain.TW("A", "B", 1), chain.T("", "C"))
	assert.ErrorIs(t, err, chain.ErrInvalidTransition)
	assert.True(t, c.HasTransition("A", "B"), "records before the bad one remain applied")
}

func TestSuccessors_SortedAndStrict(t *testing.T) {
	c := chain.New()
	require.NoError(t, c.AddTransitions(
		chain.TW("X", "c", 0.2),
		chain.TW("X", "a", 0.3),
		chain.TW("X", "b", 0.5),
	))

	succ, err := c.Successors("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, succ)

	_, err = c.Successors("missing")
	assert.ErrorIs(t, err, chain.ErrStateNotFound)
}

func TestPredecessors_SortedAndStrict(t *testing.T) {
	c := chain.New()
	require.NoError(t, c.AddTransitions(
		chain.TW("b", "X", 0.1),
		chain.TW("a", "X", 0.2),
		chain.TW("X", "a", 1.0),
	))

	preds, err := c.Predecessors("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, preds)

	_, err = c.Predecessors("missing")
	assert.ErrorIs(t, err, chain.ErrStateNotFound)
}

func TestTransitionMass_AbsentIsZero(t *testing.T) {
	c := buildWeather(t)

	assert.InDelta(t, 0.1, c.TransitionMass("sunny", "rainy"), 1e-15)
	assert.Zero(t, c.TransitionMass("rainy", "nowhere"))
	assert.Zero(t, c.TransitionMass("nowhere", "rainy"))
}

func TestDegrees(t *testing.T) {
	c := buildWeather(t)
	require.NoError(t, c.AddState("terminal", nil))

	out, err := c.OutDegree("sunny")
	require.NoError(t, err)
	assert.Equal(t, 2, out)

	wout, err := c.WeightedOutDegree("sunny")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, wout, 1e-12)

	in, err := c.InDegree("sunny")
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	win, err := c.WeightedInDegree("rainy")
	require.NoError(t, err)
	assert.InDelta(t, 0.6, win, 1e-12)

	out, err = c.OutDegree("terminal")
	require.NoError(t, err)
	assert.Zero(t, out, "terminal states are well-formed with zero out-degree")

	_, err = c.OutDegree("missing")
	assert.ErrorIs(t, err, chain.ErrStateNotFound)
	_, err = c.InDegree("missing")
	assert.ErrorIs(t, err, chain.ErrStateNotFound)
}

func TestIsStochastic(t *testing.T) {
	c := buildWeather(t)
	assert.True(t, c.IsStochastic(0), "zero tol falls back to the default tolerance")

	// A terminal state is exempt from the row-sum check.
	require.NoError(t, c.AddState("terminal", nil))
	assert.True(t, c.IsStochastic(0))

	// A row off by more than the tolerance breaks the invariant.
	require.NoError(t, c.AddTransition("terminal", "sunny", 0.5, nil))
	assert.False(t, c.IsStochastic(0))
	assert.True(t, c.IsStochastic(0.6), "loose tolerance accepts the same row")
}

func TestNormalize_RescalesAndIsIdempotent(t *testing.T) {
	c := chain.New()
	require.NoError(t, c.AddTransitions(
		chain.TW("S", "S", 2),
		chain.TW("S", "T", 3),
	))

	c.Normalize()
	assert.InDelta(t, 0.4, c.TransitionMass("S", "S"), 1e-12)
	assert.InDelta(t, 0.6, c.TransitionMass("S", "T"), 1e-12)

	c.Normalize()
	assert.InDelta(t, 0.4, c.TransitionMass("S", "S"), 1e-12, "normalize must be idempotent")
	assert.InDelta(t, 0.6, c.TransitionMass("S", "T"), 1e-12)
}

func TestNormalize_SkipsZeroTotalRows(t *testing.T) {
	c := chain.New()
	require.NoError(t, c.AddTransition("A", "B", 0, nil))

	c.Normalize()
	assert.Zero(t, c.TransitionMass("A", "B"), "zero-total rows stay unchanged")
	assert.False(t, c.IsStochastic(0))
}

func TestAllTransitions_Deterministic(t *testing.T) {
	c := buildWeather(t)

	recs := c.AllTransitions()
	require.Len(t, recs, 4)
	// Origins in insertion order, targets sorted within each origin.
	assert.Equal(t, "sunny", recs[0].From)
	assert.Equal(t, "rainy", recs[0].To)
	assert.Equal(t, "sunny", recs[1].To)
	assert.Equal(t, "rainy", recs[2].From)
}

func TestString(t *testing.T) {
	c := buildWeather(t)
	assert.Equal(t, "Chain with 2 states and 4 transitions", c.String())
}
