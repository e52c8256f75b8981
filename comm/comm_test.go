package comm_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basinlab/floodcc/comm"
)

// TestNewWorld_SizeValidation verifies that worlds of fewer than one rank are
// rejected with ErrWorldSize, both directly and through Run.
func TestNewWorld_SizeValidation(t *testing.T) {
	_, err := comm.NewWorld(0)
	assert.ErrorIs(t, err, comm.ErrWorldSize)

	err = comm.Run(-1, func(c *comm.Comm) error { return nil })
	assert.ErrorIs(t, err, comm.ErrWorldSize)
}

// TestWorld_CommRankRange verifies that out-of-range ranks cannot obtain a
// communicator.
func TestWorld_CommRankRange(t *testing.T) {
	w, err := comm.NewWorld(2)
	require.NoError(t, err)

	_, err = w.Comm(-1)
	assert.ErrorIs(t, err, comm.ErrRankRange)
	_, err = w.Comm(2)
	assert.ErrorIs(t, err, comm.ErrRankRange)
}

// TestSendRecv_FIFOOrder verifies that messages between a fixed pair of ranks
// are delivered in posting order with their payloads intact.
func TestSendRecv_FIFOOrder(t *testing.T) {
	const tag = 7
	err := comm.Run(2, func(c *comm.Comm) error {
		if c.Rank() == 0 {
			if err := comm.Send(c, 1, tag, []int{1, 2, 3}); err != nil {
				return err
			}

			return comm.Send(c, 1, tag, []int{4})
		}

		first, err := comm.Recv[int](c, 0, tag)
		if err != nil {
			return err
		}
		second, err := comm.Recv[int](c, 0, tag)
		if err != nil {
			return err
		}
		assert.Equal(t, []int{1, 2, 3}, first)
		assert.Equal(t, []int{4}, second)

		return nil
	})
	require.NoError(t, err)
}

// TestRecv_TagAndTypeChecks verifies that a mismatched tag yields
// ErrTagMismatch and a mismatched element type yields ErrPayloadType.
func TestRecv_TagAndTypeChecks(t *testing.T) {
	err := comm.Run(2, func(c *comm.Comm) error {
		if c.Rank() == 0 {
			if err := comm.Send(c, 1, 1, []int{42}); err != nil {
				return err
			}

			return comm.Send(c, 1, 2, []int{42})
		}

		_, err := comm.Recv[int](c, 0, 99)
		assert.ErrorIs(t, err, comm.ErrTagMismatch)
		_, err = comm.Recv[float64](c, 0, 2)
		assert.ErrorIs(t, err, comm.ErrPayloadType)

		return nil
	})
	require.NoError(t, err)
}

// TestSendRecv_RankRange verifies that both endpoints validate the peer rank.
func TestSendRecv_RankRange(t *testing.T) {
	err := comm.Run(1, func(c *comm.Comm) error {
		assert.ErrorIs(t, comm.Send(c, 5, 1, []int{1}), comm.ErrRankRange)
		_, err := comm.Recv[int](c, -1, 1)
		assert.ErrorIs(t, err, comm.ErrRankRange)

		return nil
	})
	require.NoError(t, err)
}

// TestBarrier_AllArriveBeforeAnyLeaves verifies that no rank passes the
// barrier before every rank has incremented the shared counter.
func TestBarrier_AllArriveBeforeAnyLeaves(t *testing.T) {
	const size = 4
	var arrived atomic.Int32
	err := comm.Run(size, func(c *comm.Comm) error {
		arrived.Add(1)
		c.Barrier()
		assert.EqualValues(t, size, arrived.Load())

		return nil
	})
	require.NoError(t, err)
}

// TestReduceChange_OrSemantics verifies that the change flag is OR-combined:
// a single true contribution is observed by every rank, and an all-false
// round is observed as false. Several back-to-back rounds exercise the
// generation handling of the reducer.
func TestReduceChange_OrSemantics(t *testing.T) {
	const size = 3
	err := comm.Run(size, func(c *comm.Comm) error {
		for round := 0; round < size; round++ {
			changed, err := c.ReduceChange(c.Rank() == round, nil)
			if err != nil {
				return err
			}
			assert.True(t, changed, "round %d", round)
		}

		changed, err := c.ReduceChange(false, nil)
		if err != nil {
			return err
		}
		assert.False(t, changed)

		return nil
	})
	require.NoError(t, err)
}

// TestReduceChange_ErrorReachesEveryRank verifies that an error contributed
// by one rank is observed by all ranks of the same round, so relaxation
// loops terminate together instead of deadlocking.
func TestReduceChange_ErrorReachesEveryRank(t *testing.T) {
	boom := errors.New("boom")
	err := comm.Run(3, func(c *comm.Comm) error {
		var contrib error
		if c.Rank() == 1 {
			contrib = boom
		}
		_, err := c.ReduceChange(false, contrib)
		assert.ErrorIs(t, err, boom)

		return nil
	})
	require.NoError(t, err)
}
