package proposal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redistrict/builder"
	"github.com/katalvlaran/redistrict/core"
	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/plan"
	"github.com/katalvlaran/redistrict/proposal"
)

func edges(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	return g
}

func TestPropose_ChainStaysValid(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(6, 6))
	require.NoError(t, err)
	const k = 4

	cur, err := partition.Initial(context.Background(), g, k, partition.WithSeed(5))
	require.NoError(t, err)

	gen, err := proposal.New(g, k, proposal.WithSeed(5))
	require.NoError(t, err)

	for step := 0; step < 300; step++ {
		prop, err := gen.Propose(context.Background(), cur)
		require.NoError(t, err, "step %d", step)
		require.NoError(t, plan.Validate(g, prop.Plan, k), "step %d", step)

		diff := cur.Diff(prop.Plan)
		require.Equal(t, []string{prop.Flip.Precinct}, diff, "exactly one precinct moves")
		d, _ := cur.District(prop.Flip.Precinct)
		assert.Equal(t, d, prop.Flip.From)
		d, _ = prop.Plan.District(prop.Flip.Precinct)
		assert.Equal(t, d, prop.Flip.To)
		assert.GreaterOrEqual(t, prop.Attempts, 1)

		cur = prop.Plan
	}
}

func TestPropose_LeavesInputUntouched(t *testing.T) {
	g := edges(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})
	cur := plan.FromMap(map[string]plan.District{"A": 1, "B": 1, "C": 2, "D": 2})
	snapshot := cur.Map()

	gen, err := proposal.New(g, 2, proposal.WithSeed(1))
	require.NoError(t, err)
	_, err = gen.Propose(context.Background(), cur)
	require.NoError(t, err)
	assert.Equal(t, snapshot, cur.Map())
}

// Bridge map: district 1 is the path a–b–c with b its cut vertex; district 2
// is d–e hanging off b. Flipping b would split district 1, so the only valid
// move is d joining district 1.
func TestPropose_NeverSplitsAtBridge(t *testing.T) {
	g := edges(t,
		[2]string{"a", "b"}, [2]string{"b", "c"},
		[2]string{"b", "d"}, [2]string{"d", "e"},
	)
	cur := plan.FromMap(map[string]plan.District{"a": 1, "b": 1, "c": 1, "d": 2, "e": 2})
	require.NoError(t, plan.Validate(g, cur, 2))

	for seed := int64(1); seed <= 25; seed++ {
		gen, err := proposal.New(g, 2, proposal.WithSeed(seed))
		require.NoError(t, err)
		prop, err := gen.Propose(context.Background(), cur)
		require.NoError(t, err)
		assert.Equal(t, plan.Flip{Precinct: "d", From: 2, To: 1}, prop.Flip, "seed %d", seed)
		require.NoError(t, plan.Validate(g, prop.Plan, 2))
	}
}

func TestPropose_NoValidFlip(t *testing.T) {
	// Every flip on a path of singleton districts empties a district.
	g := edges(t, [2]string{"a", "b"}, [2]string{"b", "c"})
	cur := plan.FromMap(map[string]plan.District{"a": 1, "b": 2, "c": 3})

	gen, err := proposal.New(g, 3, proposal.WithSeed(1), proposal.WithMaxAttempts(50))
	require.NoError(t, err)
	_, err = gen.Propose(context.Background(), cur)
	assert.ErrorIs(t, err, proposal.ErrNoValidProposal)
}

func TestPropose_Deterministic(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(5, 5))
	require.NoError(t, err)
	start, err := partition.Initial(context.Background(), g, 2, partition.WithSeed(2))
	require.NoError(t, err)

	run := func() []plan.Flip {
		gen, err := proposal.New(g, 2, proposal.WithSeed(77))
		require.NoError(t, err)
		cur := start
		var flips []plan.Flip
		for i := 0; i < 50; i++ {
			prop, err := gen.Propose(context.Background(), cur)
			require.NoError(t, err)
			flips = append(flips, prop.Flip)
			cur = prop.Plan
		}
		return flips
	}
	assert.Equal(t, run(), run())
}

func TestPropose_Errors(t *testing.T) {
	g := edges(t, [2]string{"a", "b"})

	_, err := proposal.New(nil, 2)
	assert.Error(t, err)
	_, err = proposal.New(g, 0)
	assert.ErrorIs(t, err, proposal.ErrInvalidDistrictCount)

	gen, err := proposal.New(g, 1)
	require.NoError(t, err)

	_, err = gen.Propose(context.Background(), nil)
	assert.ErrorIs(t, err, plan.ErrNilPlan)

	_, err = gen.Propose(context.Background(), plan.FromMap(map[string]plan.District{"a": 1}))
	assert.ErrorIs(t, err, plan.ErrIncomplete)

	_, err = gen.Propose(context.Background(), plan.FromMap(map[string]plan.District{"a": 1, "b": 1}))
	assert.ErrorIs(t, err, proposal.ErrNoBorder)

	gen2, err := proposal.New(g, 2)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gen2.Propose(ctx, plan.FromMap(map[string]plan.District{"a": 1, "b": 2}))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { proposal.WithMaxAttempts(0) })
	assert.Panics(t, func() { proposal.WithRand(nil) })
}
