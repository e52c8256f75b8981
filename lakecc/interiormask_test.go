package lakecc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basinlab/floodcc/comm"
	"github.com/basinlab/floodcc/grid"
	"github.com/basinlab/floodcc/lakecc"
)

// TestInteriorMask_DropsEdgeComponents verifies that components touching the
// outer edge of the domain are erased while interior ones are kept as 1.
func TestInteriorMask_DropsEdgeComponents(t *testing.T) {
	dom, err := grid.NewDomain(8, 8, 1)
	require.NoError(t, err)
	part, err := grid.NewPartition(dom, 1, 1)
	require.NoError(t, err)

	err = comm.Run(1, func(c *comm.Comm) error {
		sub, err := part.Bind(c)
		if err != nil {
			return err
		}
		mask := grid.NewField[int](sub)
		// Component touching the western edge.
		for j := 3; j <= 4; j++ {
			mask.Set(0, j, 1)
			mask.Set(1, j, 1)
		}
		// Interior component.
		for j := 4; j <= 5; j++ {
			mask.Set(4, j, 1)
			mask.Set(5, j, 1)
		}

		im, err := lakecc.NewInteriorMask(sub)
		if err != nil {
			return err
		}
		if err := im.Compute(mask); err != nil {
			return err
		}

		assert.Equal(t, 0, mask.At(0, 3))
		assert.Equal(t, 0, mask.At(1, 4))
		assert.Equal(t, 1, mask.At(4, 4))
		assert.Equal(t, 1, mask.At(5, 5))
		assert.Equal(t, 0, mask.At(3, 3))

		return nil
	})
	require.NoError(t, err)
}

// TestInteriorMask_SpansRanks verifies that an interior component crossing
// the rank boundary survives in one piece on both ranks.
func TestInteriorMask_SpansRanks(t *testing.T) {
	dom, err := grid.NewDomain(8, 6, 1)
	require.NoError(t, err)
	part, err := grid.NewPartition(dom, 2, 1)
	require.NoError(t, err)

	err = comm.Run(part.Ranks(), func(c *comm.Comm) error {
		sub, err := part.Bind(c)
		if err != nil {
			return err
		}
		mask := grid.NewField[int](sub)
		for i := 2; i <= 5; i++ { // crosses the boundary at i=4
			if i >= sub.X0 && i < sub.X0+sub.NX {
				mask.Set(i, 2, 1)
			}
		}

		im, err := lakecc.NewInteriorMask(sub)
		if err != nil {
			return err
		}
		if err := im.Compute(mask); err != nil {
			return err
		}

		for i := 2; i <= 5; i++ {
			if i >= sub.X0 && i < sub.X0+sub.NX {
				assert.Equal(t, 1, mask.At(i, 2), "rank %d cell %d", c.Rank(), i)
			}
		}

		return nil
	})
	require.NoError(t, err)
}
