package grid

import "github.com/basinlab/floodcc/comm"

// Exchange performs one blocking halo swap with the up-to-four neighboring
// subdomains: each side's outermost owned strip (ghost-margin wide) is copied
// into the neighbor's ghost margin. Ghost cells along the outer edge of the
// whole domain are left untouched.
//
// Exchange is collective: every rank of the world must call it in the same
// round, on fields exchanged in the same order.
func (f *Field[T]) Exchange() error {
	s := f.sub
	c := s.com
	g := f.g

	// Post all outgoing strips first; mailboxes are buffered, so the
	// receive phase below cannot deadlock.
	if r, ok := s.West(); ok {
		if err := comm.Send(c, r, tagWest, f.packCols(s.X0, g)); err != nil {
			return err
		}
	}
	if r, ok := s.East(); ok {
		if err := comm.Send(c, r, tagEast, f.packCols(s.X0+s.NX-g, g)); err != nil {
			return err
		}
	}
	if r, ok := s.South(); ok {
		if err := comm.Send(c, r, tagSouth, f.packRows(s.Y0, g)); err != nil {
			return err
		}
	}
	if r, ok := s.North(); ok {
		if err := comm.Send(c, r, tagNorth, f.packRows(s.Y0+s.NY-g, g)); err != nil {
			return err
		}
	}

	// The east neighbor's west-traveling strip fills our east ghost margin,
	// and so on around the compass.
	if r, ok := s.East(); ok {
		buf, err := comm.Recv[T](c, r, tagWest)
		if err != nil {
			return err
		}
		if len(buf) != g*s.NY {
			return ErrFieldMismatch
		}
		f.unpackCols(s.X0+s.NX, g, buf)
	}
	if r, ok := s.West(); ok {
		buf, err := comm.Recv[T](c, r, tagEast)
		if err != nil {
			return err
		}
		if len(buf) != g*s.NY {
			return ErrFieldMismatch
		}
		f.unpackCols(s.X0-g, g, buf)
	}
	if r, ok := s.North(); ok {
		buf, err := comm.Recv[T](c, r, tagSouth)
		if err != nil {
			return err
		}
		if len(buf) != g*s.NX {
			return ErrFieldMismatch
		}
		f.unpackRows(s.Y0+s.NY, g, buf)
	}
	if r, ok := s.South(); ok {
		buf, err := comm.Recv[T](c, r, tagNorth)
		if err != nil {
			return err
		}
		if len(buf) != g*s.NX {
			return ErrFieldMismatch
		}
		f.unpackRows(s.Y0-g, g, buf)
	}

	return nil
}
