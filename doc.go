// Package floodcc is a distributed flood-fill and connected-component
// toolkit for rectangular grids — from run-length labeling primitives to
// complete lake-filling drivers over partitioned domains.
//
// 🚀 What is floodcc?
//
//	A pure-Go library that brings together:
//		• Run-length labeling: maximal horizontal runs as atomic units,
//		  unioned incrementally during a single row-major scan
//		• Union-find forest with a deterministic smaller-root-wins rule
//		  and a reserved, absorbing sink component
//		• Boundary relaxation: synchronized halo exchange + margin sweeps
//		  until every rank agrees no label can change
//		• Composable decorators: validity flags and per-component extrema
//		  ride the same merges and relaxation rounds as the labels
//		• Lake drivers: level sweeps, isolation masks, lake filtering,
//		  per-lake properties and conservative accumulation
//
// ✨ Why choose floodcc?
//
//   - Deterministic – identical results for any rank count and partition
//   - Deadlock-free – all halo sends post before any receive
//   - Pure Go – no cgo, no MPI runtime; ranks are goroutines
//   - Extensible – implement cc.Decorator to aggregate your own
//     per-component attributes during labeling
//
// Under the hood, everything is organized under four subpackages:
//
//	comm/   — rank runtime: typed point-to-point messages, barrier,
//	          change/error reduction
//	grid/   — domains, Cartesian partitions, ghosted fields, halo
//	          exchange, gather/scatter
//	cc/     — the labeling engine: run-length scan, union-find forest,
//	          boundary relaxation, decorators
//	lakecc/ — drivers built on cc: lake-level sweep, isolation,
//	          filtering, properties, expansion, accumulation
//
// Quick ASCII example:
//
//	    ~ ~ ~ ~ ~        ~ = flooded at this level
//	    ~ # # # ~        # = dry land
//	    ~ # ~ # ~        the inner ~ is a lake: flooded but not
//	    ~ # # # ~        connected to the exterior sink
//	    ~ ~ ~ ~ ~
//
// Dive into the examples/ directory for complete, runnable scenarios.
//
//	go get github.com/basinlab/floodcc
package floodcc
