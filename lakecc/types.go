package lakecc

import (
	"errors"

	"github.com/basinlab/floodcc/grid"
)

// Sentinel errors for driver configuration. All are reported before any
// collective communication starts.
var (
	// ErrLevelRange indicates a candidate level range with min >= max.
	ErrLevelRange = errors.New("lakecc: candidate level range requires min < max")
	// ErrLevelStep indicates a non-positive level increment.
	ErrLevelStep = errors.New("lakecc: candidate level step must be positive")
	// ErrDensityRatio indicates a non-positive ice/water density ratio.
	ErrDensityRatio = errors.New("lakecc: density ratio must be positive")
	// ErrNeighborThreshold indicates a 4-neighbor count outside [0, 4].
	ErrNeighborThreshold = errors.New("lakecc: neighbor threshold must be between 0 and 4")
	// ErrNotInitialized indicates Accumulate before a successful Init.
	ErrNotInitialized = errors.New("lakecc: accumulator is not initialized")
)

// onSub reports whether every field lives on the given subdomain.
type subber interface{ Sub() *grid.Sub }

func onSub(sub *grid.Sub, fields ...subber) error {
	for _, f := range fields {
		if f == nil || f.Sub() != sub {
			return grid.ErrFieldMismatch
		}
	}

	return nil
}
