package grid

import "github.com/basinlab/floodcc/comm"

// Partition splits a Domain into px × py rectangular blocks. Ranks are laid
// out row-major: rank = ry*px + rx.
type Partition struct {
	dom    Domain
	px, py int
}

// NewPartition validates the block counts against the domain. Every block
// must be at least as wide as the ghost margin on both axes, otherwise halo
// exchange would have to reach past the adjacent neighbor.
// Returns ErrPartitionSize or ErrPartitionTooFine.
func NewPartition(dom Domain, px, py int) (*Partition, error) {
	if px < 1 || py < 1 {
		return nil, ErrPartitionSize
	}
	if dom.Mx/px < dom.Ghost || dom.My/py < dom.Ghost {
		return nil, ErrPartitionTooFine
	}

	return &Partition{dom: dom, px: px, py: py}, nil
}

// Domain returns the partitioned domain.
func (p *Partition) Domain() Domain { return p.dom }

// Ranks reports the number of subdomains (px × py).
func (p *Partition) Ranks() int { return p.px * p.py }

// split divides n cells into parts blocks, spreading the remainder over the
// leading blocks, and returns offset and length of block idx.
func split(n, parts, idx int) (off, length int) {
	base, rem := n/parts, n%parts
	length = base
	if idx < rem {
		length++
	}
	off = base*idx + min(idx, rem)

	return off, length
}

// bounds returns the owned global range of the given rank.
func (p *Partition) bounds(rank int) (x0, y0, nx, ny int) {
	rx, ry := rank%p.px, rank/p.px
	x0, nx = split(p.dom.Mx, p.px, rx)
	y0, ny = split(p.dom.My, p.py, ry)

	return x0, y0, nx, ny
}

// Bind attaches a communicator to the partition and returns the calling
// rank's subdomain view.
// Returns ErrWorldMismatch if the world size differs from Ranks().
func (p *Partition) Bind(c *comm.Comm) (*Sub, error) {
	if c.Size() != p.Ranks() {
		return nil, ErrWorldMismatch
	}
	rank := c.Rank()
	x0, y0, nx, ny := p.bounds(rank)

	return &Sub{
		part: p,
		com:  c,
		rx:   rank % p.px,
		ry:   rank / p.px,
		X0:   x0, Y0: y0, NX: nx, NY: ny,
	}, nil
}

// Sub is one rank's rectangular subdomain: the owned global index range plus
// the neighbor topology needed for halo exchange.
type Sub struct {
	part   *Partition
	com    *comm.Comm
	rx, ry int

	// Owned global range: columns [X0, X0+NX), rows [Y0, Y0+NY).
	X0, Y0, NX, NY int
}

// Comm returns the communicator this subdomain is bound to.
func (s *Sub) Comm() *comm.Comm { return s.com }

// Domain returns the global domain.
func (s *Sub) Domain() Domain { return s.part.dom }

// Partition returns the partition this subdomain belongs to.
func (s *Sub) Partition() *Partition { return s.part }

// West returns the rank of the western neighbor, if any.
func (s *Sub) West() (int, bool) {
	if s.rx == 0 {
		return 0, false
	}

	return s.ry*s.part.px + s.rx - 1, true
}

// East returns the rank of the eastern neighbor, if any.
func (s *Sub) East() (int, bool) {
	if s.rx == s.part.px-1 {
		return 0, false
	}

	return s.ry*s.part.px + s.rx + 1, true
}

// South returns the rank of the southern neighbor (lower j), if any.
func (s *Sub) South() (int, bool) {
	if s.ry == 0 {
		return 0, false
	}

	return (s.ry-1)*s.part.px + s.rx, true
}

// North returns the rank of the northern neighbor (higher j), if any.
func (s *Sub) North() (int, bool) {
	if s.ry == s.part.py-1 {
		return 0, false
	}

	return (s.ry+1)*s.part.px + s.rx, true
}

// AtDomainEdge reports whether the global cell (i, j) lies on the outer edge
// of the whole domain.
func (s *Sub) AtDomainEdge(i, j int) bool {
	d := s.part.dom

	return i == 0 || j == 0 || i == d.Mx-1 || j == d.My-1
}
