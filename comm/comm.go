package comm

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// World is a fixed-size group of cooperating ranks. All ranks of a World must
// run concurrently; collectives block until every rank has participated.
type World struct {
	size int
	mail []chan packet // mail[from*size+to], buffered FIFO per directed pair
	red  reducer
}

// NewWorld creates a World of the given size.
// Returns ErrWorldSize if size < 1.
// Complexity: O(size²) channel allocations.
func NewWorld(size int) (*World, error) {
	if size < 1 {
		return nil, ErrWorldSize
	}
	mail := make([]chan packet, size*size)
	for k := range mail {
		mail[k] = make(chan packet, mailboxDepth)
	}
	w := &World{size: size, mail: mail}
	w.red.init(size)

	return w, nil
}

// Size reports the number of ranks in the world.
func (w *World) Size() int { return w.size }

// Comm returns the communicator bound to the given rank.
// Returns ErrRankRange if rank is outside [0, Size).
func (w *World) Comm(rank int) (*Comm, error) {
	if rank < 0 || rank >= w.size {
		return nil, ErrRankRange
	}

	return &Comm{w: w, rank: rank}, nil
}

// Run creates a World of the given size, spawns fn once per rank and waits
// for all ranks to finish. The first non-nil error is returned.
func Run(size int, fn func(c *Comm) error) error {
	w, err := NewWorld(size)
	if err != nil {
		return err
	}
	var g errgroup.Group
	for rank := 0; rank < size; rank++ {
		c, err := w.Comm(rank)
		if err != nil {
			return err
		}
		g.Go(func() error { return fn(c) })
	}

	return g.Wait()
}

// Comm is one rank's handle on its World.
type Comm struct {
	w    *World
	rank int
}

// Rank reports the rank this communicator is bound to.
func (c *Comm) Rank() int { return c.rank }

// Size reports the number of ranks in the underlying world.
func (c *Comm) Size() int { return c.w.size }

// Barrier blocks until every rank of the world has entered it.
func (c *Comm) Barrier() {
	c.w.red.merge(false, nil)
}

// ReduceChange performs the collective used to terminate relaxation rounds:
// a logical OR over every rank's changed flag, combined with the first
// non-nil error contributed by any rank. Every rank observes the same pair,
// so all ranks exit a relaxation loop in the same round.
func (c *Comm) ReduceChange(changed bool, err error) (bool, error) {
	return c.w.red.merge(changed, err)
}

// Send posts a tagged payload to the given rank. It never blocks as long as
// the destination drains its mailbox within the same round.
func Send[T any](c *Comm, to, tag int, payload []T) error {
	if to < 0 || to >= c.w.size {
		return ErrRankRange
	}
	c.w.mail[c.rank*c.w.size+to] <- packet{tag: tag, payload: payload}

	return nil
}

// Recv blocks until the next message from the given rank arrives and checks
// its tag and element type. Messages between a fixed pair of ranks are
// delivered in FIFO order.
func Recv[T any](c *Comm, from, tag int) ([]T, error) {
	if from < 0 || from >= c.w.size {
		return nil, ErrRankRange
	}
	p := <-c.w.mail[from*c.w.size+c.rank]
	if p.tag != tag {
		return nil, ErrTagMismatch
	}
	payload, ok := p.payload.([]T)
	if !ok {
		return nil, ErrPayloadType
	}

	return payload, nil
}

// reducer implements a reusable all-reduce: every rank contributes a flag and
// an optional error; the last arrival publishes the combined result and wakes
// the rest. Generations keep back-to-back collectives from interfering.
type reducer struct {
	mu         sync.Mutex
	cond       *sync.Cond
	size       int
	gen        int
	arrived    int
	accChanged bool
	accErr     error
	outChanged bool
	outErr     error
}

func (r *reducer) init(size int) {
	r.size = size
	r.cond = sync.NewCond(&r.mu)
}

func (r *reducer) merge(changed bool, err error) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accChanged = r.accChanged || changed
	if r.accErr == nil && err != nil {
		r.accErr = err
	}
	r.arrived++
	if r.arrived == r.size {
		// Last arrival: publish, reset the accumulators, advance the round.
		r.outChanged, r.outErr = r.accChanged, r.accErr
		r.accChanged, r.accErr = false, nil
		r.arrived = 0
		r.gen++
		r.cond.Broadcast()

		return r.outChanged, r.outErr
	}
	gen := r.gen
	for gen == r.gen {
		r.cond.Wait()
	}

	return r.outChanged, r.outErr
}
