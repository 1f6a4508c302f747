package proposal_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/redistrict/builder"
	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/proposal"
)

// BenchmarkPropose measures one proposal on a 4-district plan of a 20x20 grid.
func BenchmarkPropose(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(20, 20))
	if err != nil {
		b.Fatal(err)
	}
	p, err := partition.Initial(context.Background(), g, 4, partition.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	gen, err := proposal.New(g, 4, proposal.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Propose(context.Background(), p); err != nil {
			b.Fatal(err)
		}
	}
}
