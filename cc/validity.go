package cc

import "github.com/basinlab/floodcc/grid"

// Validity carries one boolean per component, combined by logical OR: a
// single valid witness cell anywhere in a component makes the whole component
// valid, even across subdomain boundaries.
//
// The mask field doubles as input and output: drivers write per-cell witness
// values into it before labeling, and the label pass overwrites run cells
// with their component's resolved validity (which is what the relaxation
// rounds read through the halo).
type Validity struct {
	mask  *grid.Field[int]
	valid []bool
}

// NewValidity allocates the decorator with every cell marked as a witness.
// Drivers that need a stricter rule overwrite the mask before labeling.
func NewValidity(sub *grid.Sub) *Validity {
	v := &Validity{mask: grid.NewField[int](sub)}
	v.mask.Fill(1)

	return v
}

// Mask exposes the per-cell witness/validity field.
func (v *Validity) Mask() *grid.Field[int] { return v.mask }

// Valid reports the resolved validity of a canonical root.
func (v *Validity) Valid(root int) bool { return v.valid[root] }

// Reset keeps the reserved ids valid: background is never read and the sink
// is valid by definition.
func (v *Validity) Reset() {
	v.valid = append(v.valid[:0], true, true)
}

// NewRun seeds the run's validity from its first cell's witness value.
func (v *Validity) NewRun(id, i, j int) {
	v.valid = append(v.valid, v.mask.At(i, j) > 0)
}

// Extend marks the root valid if cell (i, j) is a witness.
func (v *Validity) Extend(root, i, j int) {
	if v.mask.At(i, j) > 0 {
		v.valid[root] = true
	}
}

// Merge ORs the absorbed root's validity into the kept root's.
func (v *Validity) Merge(kept, absorbed int) {
	if v.valid[absorbed] {
		v.valid[kept] = true
	}
}

// Paint writes the root's validity into the mask for one run segment.
func (v *Validity) Paint(root, x, y, n int) {
	b := 0
	if v.valid[root] {
		b = 1
	}
	for k := 0; k < n; k++ {
		v.mask.Set(x+k, y, b)
	}
}

// Exchange swaps the validity field's ghost margins.
func (v *Validity) Exchange() error { return v.mask.Exchange() }

// Margin marks the root valid when any foreground ghost neighbor on a rank
// boundary is valid. The sink needs no witnesses.
func (v *Validity) Margin(root, i, j int, north, east, south, west bool) bool {
	if root <= Sink || v.valid[root] {
		return false
	}
	st := v.mask.Star(i, j)
	if (north && st.N > 0) || (east && st.E > 0) || (south && st.S > 0) || (west && st.W > 0) {
		v.valid[root] = true

		return true
	}

	return false
}
