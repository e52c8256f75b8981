package lakecc

import (
	"github.com/basinlab/floodcc/cc"
	"github.com/basinlab/floodcc/grid"
)

// InteriorMask reduces a boolean mask to its interior components: every
// component connected to the outer edge of the domain is dropped, the rest
// are kept as 1.
type InteriorMask struct {
	sub  *grid.Sub
	mask *grid.Field[int]
	eng  *cc.Engine
}

// NewInteriorMask builds the driver.
func NewInteriorMask(sub *grid.Sub) (*InteriorMask, error) {
	m := &InteriorMask{sub: sub, mask: grid.NewField[int](sub)}
	eng, err := cc.New(sub, m.mask, m.foreground, cc.WithSink())
	if err != nil {
		return nil, err
	}
	m.eng = eng

	return m, nil
}

func (m *InteriorMask) foreground(i, j int) bool {
	return m.mask.At(i, j) > 0
}

// Compute rewrites mask in place, keeping only components not connected to
// the domain margin. Collective.
func (m *InteriorMask) Compute(mask *grid.Field[int]) error {
	if err := onSub(m.sub, mask); err != nil {
		return err
	}

	sub := m.sub
	for j := sub.Y0; j < sub.Y0+sub.NY; j++ {
		for i := sub.X0; i < sub.X0+sub.NX; i++ {
			seed := 0
			if mask.At(i, j) > 0 {
				seed = 2
			}
			if sub.AtDomainEdge(i, j) {
				seed = cc.Sink
			}
			m.mask.Set(i, j, seed)
		}
	}
	if err := m.mask.Exchange(); err != nil {
		return err
	}

	runs, err := m.eng.Compute()
	if err != nil {
		return err
	}
	mask.Fill(0)
	runs.ForEach(func(_ int, r cc.Run, root int) {
		if root > cc.Sink {
			for n := 0; n < r.Len; n++ {
				mask.Set(r.X+n, r.Y, 1)
			}
		}
	})

	return nil
}
