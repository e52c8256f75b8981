package cc

import "github.com/basinlab/floodcc/grid"

// ExtremumMode selects which running extremum an Extremum decorator tracks.
type ExtremumMode int

const (
	// MinOf keeps the smallest sampled value per component.
	MinOf ExtremumMode = iota
	// MaxOf keeps the largest sampled value per component.
	MaxOf
)

// Extremum carries one running scalar extremum per component, sampled from a
// source field at every cell a run absorbs and folded on every union — no
// second pass over cells is needed. The fill sentinel means "no value yet";
// sampled values equal to the sentinel are ignored.
type Extremum struct {
	src  *grid.Field[float64]
	out  *grid.Field[float64]
	mode ExtremumMode
	fill float64
	vals []float64
}

// NewMin tracks the per-component minimum of src.
func NewMin(sub *grid.Sub, src *grid.Field[float64], fill float64) *Extremum {
	return &Extremum{src: src, out: grid.NewField[float64](sub), mode: MinOf, fill: fill}
}

// NewMax tracks the per-component maximum of src.
func NewMax(sub *grid.Sub, src *grid.Field[float64], fill float64) *Extremum {
	return &Extremum{src: src, out: grid.NewField[float64](sub), mode: MaxOf, fill: fill}
}

// Field exposes the painted per-cell extremum, valid after Compute.
func (x *Extremum) Field() *grid.Field[float64] { return x.out }

// Value reports the resolved extremum of a canonical root (fill if the
// component never sampled a real value).
func (x *Extremum) Value(root int) float64 { return x.vals[root] }

// Reset clears per-run values and the painted field.
func (x *Extremum) Reset() {
	x.vals = append(x.vals[:0], x.fill, x.fill)
	x.out.Fill(x.fill)
}

// NewRun seeds the run's extremum from its first cell.
func (x *Extremum) NewRun(id, i, j int) {
	x.vals = append(x.vals, x.src.At(i, j))
}

// Extend folds cell (i, j)'s sample into the root's extremum.
func (x *Extremum) Extend(root, i, j int) {
	x.absorb(root, x.src.At(i, j))
}

// Merge folds the absorbed root's extremum into the kept root's.
func (x *Extremum) Merge(kept, absorbed int) {
	x.absorb(kept, x.vals[absorbed])
}

// Paint writes the root's extremum into the output field for one segment.
func (x *Extremum) Paint(root, xStart, y, n int) {
	v := x.vals[root]
	for k := 0; k < n; k++ {
		x.out.Set(xStart+k, y, v)
	}
}

// Exchange swaps the output field's ghost margins.
func (x *Extremum) Exchange() error { return x.out.Exchange() }

// Margin absorbs ghost-copied neighbor extrema on rank boundaries.
func (x *Extremum) Margin(root, i, j int, north, east, south, west bool) bool {
	st := x.out.Star(i, j)
	changed := false
	if north {
		changed = x.absorb(root, st.N) || changed
	}
	if east {
		changed = x.absorb(root, st.E) || changed
	}
	if south {
		changed = x.absorb(root, st.S) || changed
	}
	if west {
		changed = x.absorb(root, st.W) || changed
	}

	return changed
}

// absorb folds one sample into a root's extremum, ignoring the sentinel.
// Reports whether the stored value changed.
func (x *Extremum) absorb(root int, v float64) bool {
	if v == x.fill {
		return false
	}
	cur := x.vals[root]
	if cur != x.fill {
		if x.mode == MinOf && v >= cur {
			return false
		}
		if x.mode == MaxOf && v <= cur {
			return false
		}
	}
	x.vals[root] = v

	return true
}
