// SPDX-License-Identifier: MIT
//
// Package core is the graph substrate for wfcgraph: cells, directed edges,
// and the boundary sentinel. It stores a directed multigraph whose
// neighbour-listing order reflects the reverse of edge-creation order
// within each source cell — this is how direction is derived without
// storing per-edge metadata (see the direction package for the other half
// of that contract).
//
// 🚀 What is core?
//
//	Cells are opaque-payload nodes identified by an index issued at
//	insertion. A single shared sentinel identity stands in for "no
//	neighbour in this direction" so a neighbour list always has constant
//	length for a given direction set, never an omitted entry.
//
// Contract with callers (builder, tile, wfc):
//   - A builder creates outgoing edges from every cell in the same
//     canonical direction order; Neighbours returns them in reverse.
//   - Edges are never removed once created.
//   - Self-loops and duplicate real-to-real edges are rejected; sentinel
//     edges are never deduplicated (a cell may point at the boundary more
//     than once, once per absent direction).
//
// Concurrency: Grid is safe for concurrent AddCell/CreateEdge calls during
// construction (a single sync.RWMutex guards cells, edges, and the
// adjacency index). Once handed to wfc.Manager the graph is immutable and
// callers should not mutate it further — wfc does not re-acquire this lock
// on its hot path.
package core
