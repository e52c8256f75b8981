// Package grid models the distributed 2D domain the flood-fill engine runs
// on: a fixed global index range split into rectangular per-rank subdomains,
// each surrounded by a ghost margin that is kept in sync by halo exchange.
//
// What:
//
//   - Domain: global extent (Mx × My cells) and ghost margin width.
//   - Partition: px × py rectangular blocks; Bind attaches a rank and yields
//     its Sub (owned range, neighbor ranks, domain-edge tests).
//   - Field[T]: ghosted per-rank storage addressed in global (i, j)
//     coordinates, for int masks/labels and float64 scalar fields alike.
//   - Field.Exchange: blocking 4-neighbor halo swap of the ghost margin.
//   - Gather / Scatter: assemble or distribute a whole global grid on rank 0
//     (used by the serial accumulator driver).
//
// Why:
//
//   - The labeling engine never materializes a global copy of the grid; all
//     cross-rank coupling happens through the ghost margin, so connectivity
//     decisions stay independent of how the domain is partitioned.
//
// Conventions:
//
//   - i indexes columns (0..Mx-1), j indexes rows (0..My-1); fields are
//     row-major within a rank.
//   - Field accessors use global coordinates and are valid on the owned range
//     extended by the ghost margin; they perform no bounds checking.
//
// Errors:
//
//   - ErrDomainSize, ErrGhostWidth:     invalid global extent or margin.
//   - ErrPartitionSize:                 non-positive block counts.
//   - ErrPartitionTooFine:              a block narrower than the ghost margin.
//   - ErrWorldMismatch:                 world size differs from Ranks().
//   - ErrFieldMismatch:                 fields built on different subdomains.
package grid
