package grid

import "github.com/basinlab/floodcc/comm"

// Gather assembles the full global grid on rank 0 and returns it there as a
// row-major slice of length Mx*My; every other rank returns nil. Gather is
// collective: all ranks must call it in the same round.
func Gather[T Value](f *Field[T]) ([]T, error) {
	s := f.sub
	c := s.com
	if c.Rank() != 0 {
		return nil, comm.Send(c, 0, tagGather, f.packRows(s.Y0, s.NY))
	}

	d := s.part.dom
	global := make([]T, d.Mx*d.My)
	copyBlock(global, d.Mx, f.packRows(s.Y0, s.NY), s.X0, s.Y0, s.NX, s.NY)
	for rank := 1; rank < c.Size(); rank++ {
		buf, err := comm.Recv[T](c, rank, tagGather)
		if err != nil {
			return nil, err
		}
		x0, y0, nx, ny := s.part.bounds(rank)
		if len(buf) != nx*ny {
			return nil, ErrFieldMismatch
		}
		copyBlock(global, d.Mx, buf, x0, y0, nx, ny)
	}

	return global, nil
}

// Scatter distributes a row-major global grid (provided on rank 0) into the
// owned cells of every rank's field. Ghost margins are not filled; call
// Exchange afterwards if they are needed. Scatter is collective.
func Scatter[T Value](f *Field[T], global []T) error {
	s := f.sub
	c := s.com
	if c.Rank() == 0 {
		d := s.part.dom
		if len(global) != d.Mx*d.My {
			return ErrFieldMismatch
		}
		for rank := 1; rank < c.Size(); rank++ {
			x0, y0, nx, ny := s.part.bounds(rank)
			if err := comm.Send(c, rank, tagScatter, cutBlock(global, d.Mx, x0, y0, nx, ny)); err != nil {
				return err
			}
		}
		f.unpackRows(s.Y0, s.NY, cutBlock(global, d.Mx, s.X0, s.Y0, s.NX, s.NY))

		return nil
	}

	buf, err := comm.Recv[T](c, 0, tagScatter)
	if err != nil {
		return err
	}
	if len(buf) != s.NX*s.NY {
		return ErrFieldMismatch
	}
	f.unpackRows(s.Y0, s.NY, buf)

	return nil
}

// copyBlock writes a packed nx×ny block into a row-major global slice.
func copyBlock[T Value](global []T, mx int, buf []T, x0, y0, nx, ny int) {
	for j := 0; j < ny; j++ {
		copy(global[(y0+j)*mx+x0:(y0+j)*mx+x0+nx], buf[j*nx:])
	}
}

// cutBlock extracts a packed nx×ny block from a row-major global slice.
func cutBlock[T Value](global []T, mx, x0, y0, nx, ny int) []T {
	buf := make([]T, 0, nx*ny)
	for j := 0; j < ny; j++ {
		buf = append(buf, global[(y0+j)*mx+x0:(y0+j)*mx+x0+nx]...)
	}

	return buf
}
