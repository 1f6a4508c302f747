package partition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redistrict/bfs"
	"github.com/katalvlaran/redistrict/builder"
	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/plan"
)

func grid(t *testing.T, rows, cols int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
	require.NoError(t, err)
	return g
}

func build(t *testing.T, c builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, c)
	require.NoError(t, err)
	return g
}

func allOf(g *core.Graph) map[string]bool {
	set := make(map[string]bool)
	for _, id := range g.Vertices() {
		set[id] = true
	}
	return set
}

// sides regroups a split result by label.
func sides(m map[string]plan.District, a, b plan.District) (map[string]bool, map[string]bool) {
	sa, sb := map[string]bool{}, map[string]bool{}
	for id, d := range m {
		switch d {
		case a:
			sa[id] = true
		case b:
			sb[id] = true
		}
	}
	return sa, sb
}

func requireConnectedSplit(t *testing.T, g *core.Graph, set map[string]bool, m map[string]plan.District, a, b plan.District) {
	t.Helper()
	require.Len(t, m, len(set))
	sa, sb := sides(m, a, b)
	require.NotEmpty(t, sa)
	require.NotEmpty(t, sb)
	assert.Equal(t, len(set), len(sa)+len(sb))
	for _, s := range []map[string]bool{sa, sb} {
		ok, err := bfs.IsConnected(g, s)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestSplit_ConnectedHalves(t *testing.T) {
	g := grid(t, 6, 6)
	set := allOf(g)
	for seed := int64(1); seed <= 20; seed++ {
		m, err := partition.Split(context.Background(), g, set, 3, 7, partition.WithSeed(seed))
		require.NoError(t, err)
		requireConnectedSplit(t, g, set, m, 3, 7)
	}
}

func TestSplit_Subset(t *testing.T) {
	g := grid(t, 4, 4)
	// left two columns only
	set := map[string]bool{}
	for r := 0; r < 4; r++ {
		set[builder.GridID(r, 0)] = true
		set[builder.GridID(r, 1)] = true
	}
	m, err := partition.Split(context.Background(), g, set, 1, 2, partition.WithSeed(4))
	require.NoError(t, err)
	requireConnectedSplit(t, g, set, m, 1, 2)
	for id := range m {
		assert.True(t, set[id], "precinct %s outside the set", id)
	}
}

func TestSplit_Deterministic(t *testing.T) {
	g := grid(t, 5, 5)
	set := allOf(g)
	m1, err := partition.Split(context.Background(), g, set, 1, 2, partition.WithSeed(99))
	require.NoError(t, err)
	m2, err := partition.Split(context.Background(), g, set, 1, 2, partition.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

func TestSplit_Errors(t *testing.T) {
	g := grid(t, 3, 3)
	ctx := context.Background()

	_, err := partition.Split(ctx, nil, allOf(g), 1, 2)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = partition.Split(ctx, g, map[string]bool{}, 1, 2)
	assert.ErrorIs(t, err, partition.ErrEmptySet)

	_, err = partition.Split(ctx, g, map[string]bool{"0,0": true}, 1, 2)
	assert.ErrorIs(t, err, partition.ErrSetTooSmall)

	_, err = partition.Split(ctx, g, map[string]bool{"0,0": true, "2,2": true}, 1, 2)
	assert.ErrorIs(t, err, partition.ErrDisconnectedSet)

	_, err = partition.Split(ctx, g, map[string]bool{"0,0": true, "nope": true}, 1, 2)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = partition.Split(ctx, g, allOf(g), 1, 1)
	assert.ErrorIs(t, err, partition.ErrSameLabel)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = partition.Split(cancelled, g, allOf(g), 1, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSplit_ExhaustedOnStar(t *testing.T) {
	// Any connected side of size ≥ 2 holds the hub, stranding the other leaves.
	g := build(t, builder.Star(4))
	set := allOf(g)

	_, err := partition.Split(context.Background(), g, set, 1, 2,
		partition.WithSeed(1), partition.WithMaxAttempts(20), partition.WithMinSizes(2, 2), partition.WithoutFallback())
	assert.ErrorIs(t, err, partition.ErrSplitExhausted)

	_, err = partition.Split(context.Background(), g, set, 1, 2,
		partition.WithSeed(1), partition.WithMaxAttempts(20), partition.WithMinSizes(2, 2))
	assert.ErrorIs(t, err, partition.ErrSplitExhausted, "tree fallback cannot help either")
}

func TestSplit_FallbackAfterOneAttempt(t *testing.T) {
	g := grid(t, 4, 4)
	set := allOf(g)
	for seed := int64(1); seed <= 10; seed++ {
		m, err := partition.Split(context.Background(), g, set, 1, 2,
			partition.WithSeed(seed), partition.WithMaxAttempts(1))
		require.NoError(t, err)
		requireConnectedSplit(t, g, set, m, 1, 2)
	}
}

func TestTreeSplit_BalancedPath(t *testing.T) {
	g := build(t, builder.Path(6))
	m, err := partition.TreeSplit(g, allOf(g), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]plan.District{
		"0": 1, "1": 1, "2": 1,
		"3": 2, "4": 2, "5": 2,
	}, m)
}

func TestTreeSplit_Share(t *testing.T) {
	g := grid(t, 3, 4)
	set := allOf(g)
	m, err := partition.TreeSplit(g, set, 1, 2, partition.WithShare(0.25))
	require.NoError(t, err)
	requireConnectedSplit(t, g, set, m, 1, 2)
	sa, _ := sides(m, 1, 2)
	assert.Len(t, sa, 3)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { partition.WithRand(nil) })
	assert.Panics(t, func() { partition.WithMaxAttempts(0) })
	assert.Panics(t, func() { partition.WithShare(1) })
	assert.Panics(t, func() { partition.WithMinSizes(0, 1) })
}
