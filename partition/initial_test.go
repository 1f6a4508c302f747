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

func TestInitial_ValidForManyK(t *testing.T) {
	g := grid(t, 8, 8)
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7, 8, 10} {
		p, err := partition.Initial(context.Background(), g, k, partition.WithSeed(int64(k)))
		require.NoError(t, err, "k=%d", k)
		require.NoError(t, plan.Validate(g, p, k), "k=%d", k)
		assert.Equal(t, g.VertexCount(), p.Len())
		assert.Len(t, p.Districts(), k)

		// every district is connected: reachable count == district size
		for d, size := range p.Sizes() {
			members := p.Members(d)
			n, err := bfs.ReachableCount(g, members[0], func(id string) bool {
				l, _ := p.District(id)
				return l == d
			})
			require.NoError(t, err)
			assert.Equal(t, size, n, "k=%d district %d", k, d)
		}
	}
}

func TestInitial_OneDistrictPerPrecinct(t *testing.T) {
	g := build(t, builder.Path(5))
	p, err := partition.Initial(context.Background(), g, 5, partition.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, plan.Validate(g, p, 5))
	for _, size := range p.Sizes() {
		assert.Equal(t, 1, size)
	}
}

func TestInitial_Deterministic(t *testing.T) {
	g := grid(t, 6, 6)
	p1, err := partition.Initial(context.Background(), g, 4, partition.WithSeed(11))
	require.NoError(t, err)
	p2, err := partition.Initial(context.Background(), g, 4, partition.WithSeed(11))
	require.NoError(t, err)
	assert.True(t, p1.Equal(p2))
}

func TestInitial_Errors(t *testing.T) {
	ctx := context.Background()
	g := grid(t, 2, 2)

	_, err := partition.Initial(ctx, nil, 2)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = partition.Initial(ctx, g, 0)
	assert.ErrorIs(t, err, partition.ErrInvalidDistrictCount)

	_, err = partition.Initial(ctx, g, 5)
	assert.ErrorIs(t, err, partition.ErrTooManyDistricts)

	_, err = partition.Initial(ctx, core.NewGraph(), 1)
	assert.ErrorIs(t, err, partition.ErrEmptySet)

	split := core.NewGraph()
	_, err = split.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = split.AddEdge("c", "d")
	require.NoError(t, err)
	_, err = partition.Initial(ctx, split, 2)
	assert.ErrorIs(t, err, partition.ErrDisconnectedSet)
}

func TestInitial_EvenSplitIsUncapped(t *testing.T) {
	g := build(t, builder.Path(20))

	var larger int
	for seed := int64(1); seed <= 50; seed++ {
		p, err := partition.Initial(context.Background(), g, 2, partition.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, plan.Validate(g, p, 2))
		if len(p.Members(1)) > 10 {
			larger++
		}
	}
	assert.Positive(t, larger, "side A of an even split may exceed half the set")
}

func TestInitial_OddSplitIsCapped(t *testing.T) {
	g := build(t, builder.Path(20))

	for seed := int64(1); seed <= 50; seed++ {
		p, err := partition.Initial(context.Background(), g, 3, partition.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, plan.Validate(g, p, 3))
		// districts 1 and 2 come from side A, capped at ceil(2/3·20) = 14
		assert.LessOrEqual(t, len(p.Members(1))+len(p.Members(2)), 14, "seed %d", seed)
	}
}
