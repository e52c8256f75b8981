package lakecc

import (
	"github.com/basinlab/floodcc/cc"
	"github.com/basinlab/floodcc/grid"
)

// expansionWitnessNeighbors is the 4-neighbor count a cell needs to witness
// a valid expansion region: only cells interior to the region qualify.
const expansionWitnessNeighbors = 4

// FilterExpansion classifies the regions where a target water level claims
// lake cells that the current level does not (and, with FilterBoth, the
// reverse): each region is marked valid or invalid by an interior-cell
// witness rule, and its minimum bed elevation and maximum prior water level
// are aggregated per component.
type FilterExpansion struct {
	sub        *grid.Sub
	fill       float64
	bed, water *grid.Field[float64]
	mask       *grid.Field[int]
	validity   *cc.Validity
	minBed     *cc.Extremum
	maxWater   *cc.Extremum
	eng        *cc.Engine
}

// NewFilterExpansion builds the driver over the bed elevation and the prior
// water level field; fill is the "no data" sentinel.
func NewFilterExpansion(sub *grid.Sub, fill float64, bed, water *grid.Field[float64]) (*FilterExpansion, error) {
	if err := onSub(sub, bed, water); err != nil {
		return nil, err
	}

	f := &FilterExpansion{
		sub:      sub,
		fill:     fill,
		bed:      bed,
		water:    water,
		mask:     grid.NewField[int](sub),
		validity: cc.NewValidity(sub),
		minBed:   cc.NewMin(sub, bed, fill),
		maxWater: cc.NewMax(sub, water, fill),
	}
	eng, err := cc.New(sub, f.mask, f.foreground, cc.WithDecorators(f.validity, f.minBed, f.maxWater))
	if err != nil {
		return nil, err
	}
	f.eng = eng

	return f, nil
}

func (f *FilterExpansion) foreground(i, j int) bool {
	return f.mask.At(i, j) > cc.Sink
}

// Filter labels the expansion regions of target over current: mask holds 1
// for valid regions and 2 for invalid ones (0 elsewhere); minBasin and
// maxWater receive each region's aggregated extrema. Collective.
func (f *FilterExpansion) Filter(current, target *grid.Field[float64], mask *grid.Field[int], minBasin, maxWater *grid.Field[float64]) error {
	if err := onSub(f.sub, current, target, minBasin, maxWater); err != nil {
		return err
	}
	if err := onSub(f.sub, mask); err != nil {
		return err
	}

	mask.Fill(0)
	minBasin.Fill(f.fill)
	maxWater.Fill(f.fill)

	if err := f.prepare(current, target); err != nil {
		return err
	}
	runs, err := f.eng.Compute()
	if err != nil {
		return err
	}
	f.label(runs, 1, 2, mask, minBasin, maxWater)

	return nil
}

// FilterBoth runs Filter and then the reverse (retreat) pass with the roles
// of current and target swapped, labeled -1 (valid) / -2 (invalid) on top of
// the forward result. Collective.
func (f *FilterExpansion) FilterBoth(current, target *grid.Field[float64], mask *grid.Field[int], minBasin, maxWater *grid.Field[float64]) error {
	if err := f.Filter(current, target, mask, minBasin, maxWater); err != nil {
		return err
	}
	if err := f.prepare(target, current); err != nil {
		return err
	}
	runs, err := f.eng.Compute()
	if err != nil {
		return err
	}
	f.label(runs, -1, -2, mask, minBasin, maxWater)

	return nil
}

// prepare seeds the run mask with the cells target claims but current does
// not, and derives the interior-cell validity witnesses from the seeds.
func (f *FilterExpansion) prepare(current, target *grid.Field[float64]) error {
	sub := f.sub
	for j := sub.Y0; j < sub.Y0+sub.NY; j++ {
		for i := sub.X0; i < sub.X0+sub.NX; i++ {
			seed := 0
			if target.At(i, j) != f.fill && current.At(i, j) == f.fill {
				seed = 2
			}
			f.mask.Set(i, j, seed)
		}
	}
	if err := f.mask.Exchange(); err != nil {
		return err
	}

	witness := f.validity.Mask()
	for j := sub.Y0; j < sub.Y0+sub.NY; j++ {
		for i := sub.X0; i < sub.X0+sub.NX; i++ {
			n := 0
			if f.mask.At(i, j) > cc.Sink {
				st := f.mask.Star(i, j)
				for _, v := range [4]int{st.N, st.E, st.S, st.W} {
					if v > cc.Sink {
						n++
					}
				}
			}
			w := 0
			if n >= expansionWitnessNeighbors {
				w = 1
			}
			witness.Set(i, j, w)
		}
	}

	return nil
}

// label writes one pass's component classification and extrema.
func (f *FilterExpansion) label(runs *cc.Runs, valid, invalid int, mask *grid.Field[int], minBasin, maxWater *grid.Field[float64]) {
	runs.ForEach(func(_ int, r cc.Run, root int) {
		lbl := invalid
		if f.validity.Valid(root) {
			lbl = valid
		}
		minV, maxV := f.minBed.Value(root), f.maxWater.Value(root)
		for n := 0; n < r.Len; n++ {
			mask.Set(r.X+n, r.Y, lbl)
			minBasin.Set(r.X+n, r.Y, minV)
			maxWater.Set(r.X+n, r.Y, maxV)
		}
	})
}
