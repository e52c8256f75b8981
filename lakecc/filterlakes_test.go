package lakecc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basinlab/floodcc/comm"
	"github.com/basinlab/floodcc/grid"
	"github.com/basinlab/floodcc/lakecc"
)

// TestFilterLakes_ErasesSpecks verifies the basic rule on one rank: a solid
// 3×3 lake has interior cells with four lake neighbors and survives a
// threshold of 2, while a single-cell speck has none and is erased.
func TestFilterLakes_ErasesSpecks(t *testing.T) {
	dom, err := grid.NewDomain(10, 10, 1)
	require.NoError(t, err)
	part, err := grid.NewPartition(dom, 1, 1)
	require.NoError(t, err)

	err = comm.Run(1, func(c *comm.Comm) error {
		sub, err := part.Bind(c)
		if err != nil {
			return err
		}
		lakeLevel := grid.NewField[float64](sub)
		lakeLevel.Fill(fill)
		for j := 2; j <= 4; j++ {
			for i := 2; i <= 4; i++ {
				lakeLevel.Set(i, j, 1.5)
			}
		}
		lakeLevel.Set(7, 7, 1.5) // speck

		fl, err := lakecc.NewFilterLakes(sub, fill)
		if err != nil {
			return err
		}
		if err := fl.Filter(2, lakeLevel); err != nil {
			return err
		}

		assert.Equal(t, 1.5, lakeLevel.At(3, 3))
		assert.Equal(t, 1.5, lakeLevel.At(2, 2))
		assert.Equal(t, fill, lakeLevel.At(7, 7))

		return nil
	})
	require.NoError(t, err)
}

// TestFilterLakes_CrossRankWitness verifies that one qualifying cell keeps
// the whole lake, including cells on a different rank: a plus-shaped head on
// rank 1 (its center has four lake neighbors) saves a one-wide tail that
// stretches deep into rank 0.
func TestFilterLakes_CrossRankWitness(t *testing.T) {
	dom, err := grid.NewDomain(8, 8, 1)
	require.NoError(t, err)
	part, err := grid.NewPartition(dom, 2, 1)
	require.NoError(t, err)

	lake := map[[2]int]bool{
		{5, 3}: true, {4, 3}: true, {6, 3}: true, {5, 2}: true, {5, 4}: true, // plus
		{1, 3}: true, {2, 3}: true, {3, 3}: true, // tail on rank 0
	}

	err = comm.Run(part.Ranks(), func(c *comm.Comm) error {
		sub, err := part.Bind(c)
		if err != nil {
			return err
		}
		lakeLevel := grid.NewField[float64](sub)
		lakeLevel.Fill(fill)
		for cell := range lake {
			i, j := cell[0], cell[1]
			if i >= sub.X0 && i < sub.X0+sub.NX {
				lakeLevel.Set(i, j, 2.0)
			}
		}
		lakeLevel.Set(sub.X0, 6, 2.0) // speck per rank, no neighbors

		fl, err := lakecc.NewFilterLakes(sub, fill)
		if err != nil {
			return err
		}
		if err := fl.Filter(4, lakeLevel); err != nil {
			return err
		}

		for j := sub.Y0; j < sub.Y0+sub.NY; j++ {
			for i := sub.X0; i < sub.X0+sub.NX; i++ {
				want := fill
				if lake[[2]int{i, j}] {
					want = 2.0
				}
				assert.Equal(t, want, lakeLevel.At(i, j), "rank %d cell (%d,%d)", c.Rank(), i, j)
			}
		}

		return nil
	})
	require.NoError(t, err)
}

// TestFilterLakes_ThresholdValidation verifies the neighbor-count bounds.
func TestFilterLakes_ThresholdValidation(t *testing.T) {
	dom, err := grid.NewDomain(8, 8, 1)
	require.NoError(t, err)
	part, err := grid.NewPartition(dom, 1, 1)
	require.NoError(t, err)

	err = comm.Run(1, func(c *comm.Comm) error {
		sub, err := part.Bind(c)
		if err != nil {
			return err
		}
		fl, err := lakecc.NewFilterLakes(sub, fill)
		if err != nil {
			return err
		}
		lakeLevel := grid.NewField[float64](sub)
		assert.ErrorIs(t, fl.Filter(5, lakeLevel), lakecc.ErrNeighborThreshold)
		assert.ErrorIs(t, fl.Filter(-1, lakeLevel), lakecc.ErrNeighborThreshold)

		return nil
	})
	require.NoError(t, err)
}
