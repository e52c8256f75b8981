package cc_test

import (
	"math/rand"
	"testing"

	"github.com/basinlab/floodcc/cc"
	"github.com/basinlab/floodcc/comm"
	"github.com/basinlab/floodcc/grid"
)

// BenchmarkLabelGrid measures serial labeling of a 512×512 grid with ~60%
// random foreground.
// Complexity: O(Mx·My·α)
func BenchmarkLabelGrid(b *testing.B) {
	const n = 512
	rng := rand.New(rand.NewSource(42))
	fg := make([]bool, n*n)
	for k := range fg {
		fg[k] = rng.Intn(10) < 6
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := cc.LabelGrid(n, n, func(x, y int) bool { return fg[y*n+x] })
		if err != nil {
			b.Fatalf("LabelGrid failed: %v", err)
		}
	}
}

// BenchmarkEngineCompute measures a full distributed labeling invocation on
// a 256×256 grid split across four ranks, sink enabled, ~60% random
// foreground shared by all ranks.
// Complexity: O(Mx·My·α) per rank plus relaxation rounds.
func BenchmarkEngineCompute(b *testing.B) {
	const n = 256
	rng := rand.New(rand.NewSource(42))
	fg := make([]bool, n*n)
	for k := range fg {
		fg[k] = rng.Intn(10) < 6
	}

	dom, err := grid.NewDomain(n, n, 1)
	if err != nil {
		b.Fatalf("domain: %v", err)
	}
	part, err := grid.NewPartition(dom, 2, 2)
	if err != nil {
		b.Fatalf("partition: %v", err)
	}

	err = comm.Run(part.Ranks(), func(c *comm.Comm) error {
		sub, err := part.Bind(c)
		if err != nil {
			return err
		}
		mask := grid.NewField[int](sub)
		eng, err := cc.New(sub, mask, func(x, y int) bool { return fg[y*n+x] }, cc.WithSink())
		if err != nil {
			return err
		}

		if c.Rank() == 0 {
			b.ResetTimer()
		}
		for i := 0; i < b.N; i++ {
			mask.Fill(0)
			if _, err := eng.Compute(); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		b.Fatalf("compute: %v", err)
	}
}
