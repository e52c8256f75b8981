package lakecc

import (
	"github.com/basinlab/floodcc/cc"
	"github.com/basinlab/floodcc/grid"
)

// LakeLevel detects closed drainage basins ("lakes") by sweeping candidate
// water levels and flood-filling at each one. A cell floods when it is
// already occupied (ocean, or flooded at an earlier level) or when
//
//	bed + drho*thk < level (+ offset)
//
// Components that reach the domain margin or the ocean drain to the exterior
// and are unioned into the sink; only valid, non-sink components are written
// into the result.
type LakeLevel struct {
	sub        *grid.Sub
	drho, fill float64
	bed, thk   *grid.Field[float64]
	mask       *grid.Field[int]
	validity   *cc.Validity
	eng        *cc.Engine

	level, offset float64
}

// LakeLevelOption configures a LakeLevel driver.
type LakeLevelOption func(*LakeLevel) error

// WithValidityMask seeds per-cell validity witnesses (non-zero = witness)
// instead of the default "every cell is a witness". A basin is kept only if
// it contains at least one witness anywhere, on any rank.
func WithValidityMask(mask *grid.Field[int]) LakeLevelOption {
	return func(l *LakeLevel) error {
		return l.validity.Mask().CopyFrom(mask)
	}
}

// NewLakeLevel builds the driver. ocean marks open-ocean cells (non-zero);
// together with the outer domain edge they seed the sink. drho is the
// ice/water density ratio, fill the "no data" sentinel.
//
// Collective: seeds the run mask and exchanges its ghost margin.
func NewLakeLevel(sub *grid.Sub, bed, thk *grid.Field[float64], ocean *grid.Field[int], drho, fill float64, opts ...LakeLevelOption) (*LakeLevel, error) {
	if drho <= 0 {
		return nil, ErrDensityRatio
	}
	if err := onSub(sub, bed, thk, ocean); err != nil {
		return nil, err
	}

	l := &LakeLevel{
		sub:  sub,
		drho: drho,
		fill: fill,
		bed:  bed,
		thk:  thk,
		mask: grid.NewField[int](sub),
	}
	l.validity = cc.NewValidity(sub)
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	// Sink seeds: the outer edge of the whole domain, and open ocean.
	for j := sub.Y0; j < sub.Y0+sub.NY; j++ {
		for i := sub.X0; i < sub.X0+sub.NX; i++ {
			if sub.AtDomainEdge(i, j) || ocean.At(i, j) > 0 {
				l.mask.Set(i, j, cc.Sink)
			}
		}
	}
	if err := l.mask.Exchange(); err != nil {
		return nil, err
	}

	eng, err := cc.New(sub, l.mask, l.foreground, cc.WithSink(), cc.WithDecorators(l.validity))
	if err != nil {
		return nil, err
	}
	l.eng = eng

	return l, nil
}

// foreground is the flood test at the current candidate level. Cells already
// carrying a run label (ocean, sink, or flooded at an earlier level) stay
// foreground, which makes the sweep monotone.
func (l *LakeLevel) foreground(i, j int) bool {
	if l.mask.At(i, j) > 0 {
		return true
	}
	level := l.level
	if level == l.fill {
		return true
	}
	if l.offset != l.fill {
		level += l.offset
	}

	return l.bed.At(i, j)+l.drho*l.thk.At(i, j) < level
}

// Compute sweeps candidate levels zMin..zMax in steps of dz and writes, for
// every cell of a valid closed basin, the latest level that floods it.
// Cells that never flood keep the fill sentinel.
// Returns ErrLevelRange if zMin >= zMax, ErrLevelStep if dz <= 0.
func (l *LakeLevel) Compute(zMin, zMax, dz float64, result *grid.Field[float64]) error {
	return l.ComputeOffset(zMin, zMax, dz, l.fill, result)
}

// ComputeOffset is Compute with a constant offset added to every candidate
// level inside the flood test (fill disables the offset).
func (l *LakeLevel) ComputeOffset(zMin, zMax, dz, offset float64, result *grid.Field[float64]) error {
	if zMin >= zMax {
		return ErrLevelRange
	}
	if dz <= 0 {
		return ErrLevelStep
	}
	if err := onSub(l.sub, result); err != nil {
		return err
	}

	l.offset = offset
	result.Fill(l.fill)
	for level := zMin; level <= zMax; level += dz {
		if err := l.fillToLevel(level, result); err != nil {
			return err
		}
	}

	return nil
}

// fillToLevel runs one labeling invocation at the given level and writes the
// level into every cell of a valid basin not connected to the sink.
func (l *LakeLevel) fillToLevel(level float64, result *grid.Field[float64]) error {
	l.level = level
	runs, err := l.eng.Compute()
	if err != nil {
		return err
	}
	runs.ForEach(func(_ int, r cc.Run, root int) {
		if root > cc.Sink && l.validity.Valid(root) {
			for n := 0; n < r.Len; n++ {
				result.Set(r.X+n, r.Y, level)
			}
		}
	})

	return nil
}
