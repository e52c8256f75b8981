package cc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basinlab/floodcc/cc"
	"github.com/basinlab/floodcc/comm"
	"github.com/basinlab/floodcc/grid"
)

const fill = -9999.0

// bindOne returns a single-rank subdomain over an mx×my domain.
func bindOne(t *testing.T, mx, my int, fn func(sub *grid.Sub)) {
	t.Helper()
	dom, err := grid.NewDomain(mx, my, 1)
	require.NoError(t, err)
	part, err := grid.NewPartition(dom, 1, 1)
	require.NoError(t, err)
	require.NoError(t, comm.Run(1, func(c *comm.Comm) error {
		sub, err := part.Bind(c)
		if err != nil {
			return err
		}
		fn(sub)

		return nil
	}))
}

// TestNew_Validation verifies the predicate and mask checks.
func TestNew_Validation(t *testing.T) {
	bindOne(t, 4, 4, func(sub *grid.Sub) {
		mask := grid.NewField[int](sub)
		_, err := cc.New(sub, mask, nil)
		assert.ErrorIs(t, err, cc.ErrNilPredicate)
		_, err = cc.New(sub, nil, func(i, j int) bool { return false })
		assert.ErrorIs(t, err, grid.ErrFieldMismatch)
	})
}

// TestEngine_SingleRankComponents verifies the scan on one rank: two separate
// blobs end up with two distinct roots, all cells of a blob agree on the
// root, and background cells are cleared to None.
func TestEngine_SingleRankComponents(t *testing.T) {
	fgCells := map[[2]int]bool{
		{1, 1}: true, {2, 1}: true, {1, 2}: true, {2, 2}: true,
		{4, 2}: true, {4, 3}: true,
	}
	bindOne(t, 6, 5, func(sub *grid.Sub) {
		mask := grid.NewField[int](sub)
		mask.Fill(99) // stale values must not leak into the result
		eng, err := cc.New(sub, mask, func(i, j int) bool { return fgCells[[2]int{i, j}] })
		require.NoError(t, err)

		_, err = eng.Compute()
		require.NoError(t, err)

		a, b := mask.At(1, 1), mask.At(4, 2)
		assert.Greater(t, a, cc.Sink)
		assert.Greater(t, b, cc.Sink)
		assert.NotEqual(t, a, b)
		assert.Equal(t, a, mask.At(2, 2))
		assert.Equal(t, b, mask.At(4, 3))
		assert.Equal(t, cc.None, mask.At(0, 0))
		assert.Equal(t, cc.None, mask.At(3, 2))
	})
}

// TestEngine_SinkAcrossRanks verifies that a sink seed on one rank absorbs a
// component that extends onto another rank: the label crosses the subdomain
// boundary during relaxation, not during the local scan.
func TestEngine_SinkAcrossRanks(t *testing.T) {
	dom, err := grid.NewDomain(8, 4, 1)
	require.NoError(t, err)
	part, err := grid.NewPartition(dom, 2, 1)
	require.NoError(t, err)

	err = comm.Run(part.Ranks(), func(c *comm.Comm) error {
		sub, err := part.Bind(c)
		if err != nil {
			return err
		}
		mask := grid.NewField[int](sub)
		if c.Rank() == 0 {
			mask.Set(0, 1, cc.Sink)
		}
		// One foreground row spanning the whole domain.
		eng, err := cc.New(sub, mask, func(i, j int) bool { return j == 1 }, cc.WithSink())
		if err != nil {
			return err
		}
		if _, err := eng.Compute(); err != nil {
			return err
		}

		for i := sub.X0; i < sub.X0+sub.NX; i++ {
			assert.Equal(t, cc.Sink, mask.At(i, 1), "rank %d cell %d", c.Rank(), i)
		}

		return nil
	})
	require.NoError(t, err)
}

// TestEngine_ExtremumAcrossRanks verifies that a per-component minimum
// recorded on one rank reaches the painted attribute field of another rank
// through the relaxation rounds.
func TestEngine_ExtremumAcrossRanks(t *testing.T) {
	dom, err := grid.NewDomain(8, 4, 1)
	require.NoError(t, err)
	part, err := grid.NewPartition(dom, 2, 1)
	require.NoError(t, err)

	err = comm.Run(part.Ranks(), func(c *comm.Comm) error {
		sub, err := part.Bind(c)
		if err != nil {
			return err
		}
		src := grid.NewField[float64](sub)
		for j := sub.Y0; j < sub.Y0+sub.NY; j++ {
			for i := sub.X0; i < sub.X0+sub.NX; i++ {
				src.Set(i, j, float64(5+c.Rank()))
			}
		}
		if c.Rank() == 0 {
			src.Set(1, 1, 2.0) // global minimum, owned by rank 0
		}

		mask := grid.NewField[int](sub)
		minDec := cc.NewMin(sub, src, fill)
		eng, err := cc.New(sub, mask, func(i, j int) bool { return j == 1 }, cc.WithDecorators(minDec))
		if err != nil {
			return err
		}
		if _, err := eng.Compute(); err != nil {
			return err
		}

		for i := sub.X0; i < sub.X0+sub.NX; i++ {
			assert.Equal(t, 2.0, minDec.Field().At(i, 1), "rank %d cell %d", c.Rank(), i)
		}
		assert.Equal(t, fill, minDec.Field().At(sub.X0, 0))

		return nil
	})
	require.NoError(t, err)
}

// TestEngine_RoundCap verifies that an exhausted round cap surfaces
// ErrNoConvergence on every rank instead of deadlocking any of them.
func TestEngine_RoundCap(t *testing.T) {
	dom, err := grid.NewDomain(8, 4, 1)
	require.NoError(t, err)
	part, err := grid.NewPartition(dom, 2, 1)
	require.NoError(t, err)

	err = comm.Run(part.Ranks(), func(c *comm.Comm) error {
		sub, err := part.Bind(c)
		if err != nil {
			return err
		}
		mask := grid.NewField[int](sub)
		eng, err := cc.New(sub, mask, func(i, j int) bool { return j == 1 }, cc.WithMaxRounds(0))
		if err != nil {
			return err
		}
		_, err = eng.Compute()
		assert.ErrorIs(t, err, cc.ErrNoConvergence)

		return nil
	})
	require.NoError(t, err)
}

// TestEngine_Reuse verifies that one engine supports repeated invocations
// with a caller-owned label field that persists between calls: labels painted
// by an earlier call keep the cell foreground in the next one.
func TestEngine_Reuse(t *testing.T) {
	bindOne(t, 6, 6, func(sub *grid.Sub) {
		mask := grid.NewField[int](sub)
		wide := false
		fg := func(i, j int) bool {
			if mask.At(i, j) > 0 {
				return true
			}
			if wide {
				return j == 2 && i >= 1 && i <= 4
			}

			return j == 2 && (i == 1 || i == 2)
		}
		eng, err := cc.New(sub, mask, fg)
		require.NoError(t, err)

		_, err = eng.Compute()
		require.NoError(t, err)
		assert.Greater(t, mask.At(1, 2), cc.Sink)
		assert.Equal(t, cc.None, mask.At(4, 2))

		wide = true
		_, err = eng.Compute()
		require.NoError(t, err)
		assert.Equal(t, mask.At(1, 2), mask.At(4, 2))
	})
}
