// Package comm provides the synchronous rank runtime used by the flood-fill
// engine: a fixed-size group of cooperating ranks (one goroutine each), with
// blocking collectives and tagged point-to-point messaging.
//
// What:
//
//   - World / Comm: a rank group of fixed size; every rank holds one Comm.
//   - Run: spawn one goroutine per rank and join their errors.
//   - Barrier: generation-counted synchronization point.
//   - ReduceChange: collective logical-OR over a "did anything change" flag,
//     combined with first-error propagation so that a failure observed on one
//     rank is observed by all ranks in the same round.
//   - Send / Recv: tagged, buffered, FIFO point-to-point payload transfer.
//
// Why:
//
//   - Halo exchange and boundary relaxation (package cc) are round-synchronous
//     algorithms: no rank may proceed past a round before all have finished it.
//   - Propagating errors through the same collective used for termination keeps
//     every rank exiting a relaxation loop together instead of deadlocking.
//
// Concurrency:
//
//   - All operations are blocking and collective or pairwise; there is no
//     cancellation point (the engine bounds its own round count defensively).
//   - A World must be driven by exactly Size concurrently running ranks.
//
// Errors:
//
//   - ErrWorldSize:   requested world size is not positive.
//   - ErrRankRange:   rank index outside [0, Size).
//   - ErrTagMismatch: received message carries an unexpected tag.
//   - ErrPayloadType: received payload has an unexpected element type.
package comm
