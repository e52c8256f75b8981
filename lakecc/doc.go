// Package lakecc contains the labeling drivers built on the cc engine: the
// applications that turn generic connected-component labeling into basin and
// ice-sheet hydrology answers.
//
// What:
//
//   - LakeLevel: sweeps candidate water levels and floods closed basins —
//     foreground is "already ice/ocean or submerged at the candidate level",
//     the domain margin and ocean cells seed the sink, and a validity mask
//     can veto spurious basins. Later (higher) levels only add cells, so the
//     result field is the monotone union over the sweep.
//   - Isolation: reports ice-covered spots with no thin-ice path to the
//     domain edge.
//   - FilterLakes: erases labeled lakes in which no cell has enough same-lake
//     4-neighbors (one qualifying witness anywhere keeps the whole lake).
//   - LakeProperties: per-basin minimum and maximum of the current level,
//     written back as per-cell fields.
//   - FilterExpansion: classifies newly flooded regions (target vs current
//     level) as valid/invalid expansions and aggregates min bed elevation and
//     max water level per region; FilterBoth adds the reverse (retreat) pass.
//   - InteriorMask: keeps only mask components not connected to the margin.
//   - Accumulator: serial per-component sum of a scalar field, redistributed
//     to every member cell (conservative redistribution across a lake).
//
// Conventions:
//
//   - Drivers are collective: every rank constructs its driver and calls its
//     methods in the same order.
//   - Configuration is validated before any collective call, so all ranks
//     fail uniformly without deadlocking (ErrLevelRange, ErrLevelStep,
//     ErrDensityRatio, ErrNeighborThreshold, ErrNotInitialized).
//   - "No data" is not an error: cells without a result keep the caller's
//     fill sentinel.
package lakecc
