package lakecc

import (
	"github.com/basinlab/floodcc/cc"
	"github.com/basinlab/floodcc/grid"
)

// LakeProperties aggregates, for every lake of a target labeling, the
// minimum and maximum of the current level field over the whole lake, and
// writes both extrema back as per-cell fields. No second pass over cells is
// needed: the extrema ride the union-find merges and the relaxation rounds.
type LakeProperties struct {
	sub      *grid.Sub
	fill     float64
	target   *grid.Field[float64]
	min, max *cc.Extremum
	mask     *grid.Field[int]
	eng      *cc.Engine
}

// NewLakeProperties builds the driver: target defines lake membership
// (any value != fill), current is the field whose extrema are aggregated.
func NewLakeProperties(sub *grid.Sub, fill float64, target, current *grid.Field[float64]) (*LakeProperties, error) {
	if err := onSub(sub, target, current); err != nil {
		return nil, err
	}

	p := &LakeProperties{
		sub:    sub,
		fill:   fill,
		target: target,
		min:    cc.NewMin(sub, current, fill),
		max:    cc.NewMax(sub, current, fill),
		mask:   grid.NewField[int](sub),
	}
	eng, err := cc.New(sub, p.mask, p.foreground, cc.WithDecorators(p.min, p.max))
	if err != nil {
		return nil, err
	}
	p.eng = eng

	return p, nil
}

func (p *LakeProperties) foreground(i, j int) bool {
	return p.target.At(i, j) != p.fill
}

// Properties computes per-lake extrema and stores them into minLevel and
// maxLevel (fill outside lakes). Collective.
func (p *LakeProperties) Properties(minLevel, maxLevel *grid.Field[float64]) error {
	if err := onSub(p.sub, minLevel, maxLevel); err != nil {
		return err
	}
	if _, err := p.eng.Compute(); err != nil {
		return err
	}
	if err := minLevel.CopyFrom(p.min.Field()); err != nil {
		return err
	}

	return maxLevel.CopyFrom(p.max.Field())
}
