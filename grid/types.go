package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrDomainSize indicates a global extent smaller than one cell per axis.
	ErrDomainSize = errors.New("grid: domain must span at least one cell per axis")
	// ErrGhostWidth indicates a ghost margin narrower than one cell.
	ErrGhostWidth = errors.New("grid: ghost margin must be at least one cell wide")
	// ErrPartitionSize indicates non-positive block counts.
	ErrPartitionSize = errors.New("grid: partition needs at least one block per axis")
	// ErrPartitionTooFine indicates a block narrower than the ghost margin.
	ErrPartitionTooFine = errors.New("grid: subdomain smaller than the ghost margin")
	// ErrWorldMismatch indicates a world whose size differs from Ranks().
	ErrWorldMismatch = errors.New("grid: world size does not match partition")
	// ErrFieldMismatch indicates fields that do not share a subdomain layout.
	ErrFieldMismatch = errors.New("grid: fields belong to different subdomains")
)

// Value constrains the cell types a Field can hold: integer masks/labels and
// scalar fields.
type Value interface {
	~int | ~float64
}

// Domain describes the global index range shared by all ranks.
type Domain struct {
	Mx, My int // global extent in cells, columns × rows
	Ghost  int // ghost margin width, >= 1
}

// NewDomain validates and returns a Domain.
// Returns ErrDomainSize or ErrGhostWidth on invalid input.
func NewDomain(mx, my, ghost int) (Domain, error) {
	if mx < 1 || my < 1 {
		return Domain{}, ErrDomainSize
	}
	if ghost < 1 {
		return Domain{}, ErrGhostWidth
	}

	return Domain{Mx: mx, My: my, Ghost: ghost}, nil
}

// Star holds the 4-neighbor stencil of a cell: the cell itself plus its
// north, east, south and west neighbors.
type Star[T Value] struct {
	C, N, E, S, W T
}

// Point-to-point message tags used by halo exchange and gather/scatter.
// The tag names the direction a strip travels in.
const (
	tagWest = iota + 1
	tagEast
	tagSouth
	tagNorth
	tagGather
	tagScatter
)
