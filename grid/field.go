package grid

// Field is a ghosted, rank-local view of a distributed per-cell array.
// Storage covers the owned range extended by the ghost margin on every side;
// accessors take global coordinates. Accessors do not bounds-check.
type Field[T Value] struct {
	sub    *Sub
	g      int // ghost margin width
	stride int
	data   []T
}

// NewField allocates a zeroed field on the given subdomain.
func NewField[T Value](s *Sub) *Field[T] {
	g := s.part.dom.Ghost
	stride := s.NX + 2*g

	return &Field[T]{
		sub:    s,
		g:      g,
		stride: stride,
		data:   make([]T, stride*(s.NY+2*g)),
	}
}

// Sub returns the subdomain the field lives on.
func (f *Field[T]) Sub() *Sub { return f.sub }

func (f *Field[T]) idx(i, j int) int {
	return (j-f.sub.Y0+f.g)*f.stride + (i - f.sub.X0 + f.g)
}

// At returns the value at global cell (i, j).
func (f *Field[T]) At(i, j int) T { return f.data[f.idx(i, j)] }

// Set stores v at global cell (i, j).
func (f *Field[T]) Set(i, j int, v T) { f.data[f.idx(i, j)] = v }

// Fill sets every cell, ghost margin included, to v.
func (f *Field[T]) Fill(v T) {
	for k := range f.data {
		f.data[k] = v
	}
}

// Star returns the 4-neighbor stencil at global cell (i, j). Neighbor reads
// may fall into the ghost margin.
func (f *Field[T]) Star(i, j int) Star[T] {
	k := f.idx(i, j)

	return Star[T]{
		C: f.data[k],
		N: f.data[k+f.stride],
		E: f.data[k+1],
		S: f.data[k-f.stride],
		W: f.data[k-1],
	}
}

// CopyFrom copies all cells, ghost margin included, from src.
// Returns ErrFieldMismatch if the fields live on different subdomains.
func (f *Field[T]) CopyFrom(src *Field[T]) error {
	if f.sub != src.sub {
		return ErrFieldMismatch
	}
	copy(f.data, src.data)

	return nil
}

// Compatible reports whether both fields live on the same subdomain and can
// therefore be combined cell by cell.
func Compatible[A, B Value](a *Field[A], b *Field[B]) bool {
	return a != nil && b != nil && a.sub == b.sub
}

// packCols copies a vertical strip (columns [i0, i0+w), owned rows) into a
// fresh row-major slice.
func (f *Field[T]) packCols(i0, w int) []T {
	s := f.sub
	buf := make([]T, 0, w*s.NY)
	for j := s.Y0; j < s.Y0+s.NY; j++ {
		k := f.idx(i0, j)
		buf = append(buf, f.data[k:k+w]...)
	}

	return buf
}

// unpackCols writes a packed vertical strip into columns [i0, i0+w).
func (f *Field[T]) unpackCols(i0, w int, buf []T) {
	s := f.sub
	for j := s.Y0; j < s.Y0+s.NY; j++ {
		k := f.idx(i0, j)
		copy(f.data[k:k+w], buf[(j-s.Y0)*w:])
	}
}

// packRows copies a horizontal strip (rows [j0, j0+h), owned columns) into a
// fresh row-major slice.
func (f *Field[T]) packRows(j0, h int) []T {
	s := f.sub
	buf := make([]T, 0, h*s.NX)
	for j := j0; j < j0+h; j++ {
		k := f.idx(s.X0, j)
		buf = append(buf, f.data[k:k+s.NX]...)
	}

	return buf
}

// unpackRows writes a packed horizontal strip into rows [j0, j0+h).
func (f *Field[T]) unpackRows(j0, h int, buf []T) {
	s := f.sub
	for j := j0; j < j0+h; j++ {
		k := f.idx(s.X0, j)
		copy(f.data[k:k+s.NX], buf[(j-j0)*s.NX:])
	}
}
