// Package cc implements distributed connected-component labeling over a
// partitioned 2D grid, using a run-length union-find representation.
//
// What:
//
//   - Forest: parent-pointer union-find over run identifiers, with the
//     sink-wins merge rule (the reserved exterior component always absorbs).
//   - Runs: an append-only table of maximal horizontal foreground runs, the
//     atomic unit of the algorithm; per-cell work is amortized over runs.
//   - Engine: one generic labeling routine parameterized by a foreground
//     predicate, an optional sink rule and any number of attribute
//     decorators. It scans each rank's rows, unions vertically adjacent runs
//     incrementally, then drives boundary relaxation rounds (halo exchange,
//     edge sweep, collective change reduction) until a global fixed point.
//   - Decorators: composable per-component attributes combined on every
//     union — Validity (boolean, OR) and Extremum (scalar min or max with a
//     fill sentinel).
//   - LabelGrid: serial single-array variant for work that runs on one rank
//     over a gathered global grid.
//
// Reserved labels:
//
//   - None (0): background; never unioned.
//   - Sink (1): the canonical "connected to the domain exterior" component.
//     Once a run is unioned with the sink the property is irreversible,
//     because the smaller root always wins a union.
//
// Determinism:
//
//   - The resolved labeling is independent of the rank count and of the order
//     in which subdomain edges are examined: unions are commutative and
//     associative, and root resolution is idempotent.
//
// Errors:
//
//   - ErrNilPredicate, ErrGridExtent: configuration, reported before any
//     collective call.
//   - ErrNoConvergence: the relaxation loop exceeded its defensive round cap;
//     an engine defect, not a user error. It is propagated through the same
//     collective used for termination, so every rank exits together.
//   - A cycle in the union-find forest panics: it cannot occur while unions
//     always point a newer root at an older one.
package cc
