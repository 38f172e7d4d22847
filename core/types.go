// SPDX-License-Identifier: MIT
//
// types.go declares the exported identifiers (CellID, EdgeID, Sentinel, Cell)
// and the Grid type itself. Method implementations live in methods.go.
package core

import (
	"math"
	"sync"
)

// CellID identifies a cell within a Grid. IDs are issued by AddCell in
// insertion order starting at 0; they are stable for the cell's lifetime.
type CellID int

// EdgeID identifies a directed edge within a Grid, issued in creation order
// starting at 0.
type EdgeID int

// Sentinel is the shared boundary identity used as the target of edges that
// would otherwise point outside the domain. It carries no payload and is
// never collapsed. IsSentinel reports true only for this value.
const Sentinel CellID = -1

// Cell is a node in the adjacency graph. Payload is application-defined;
// identity is the CellID issued at insertion.
type Cell struct {
	ID      CellID
	Payload interface{}
}

// edge is a directed connection (From, To). To may be Sentinel.
type edge struct {
	id   EdgeID
	from CellID
	to   CellID
}

// Grid is a directed multigraph of cells and the shared boundary sentinel.
// Edges are append-only; neighbour-list order is the reverse of
// edge-creation order within each source cell (see package doc).
//
// Zero value is not usable; construct with NewGrid.
type Grid struct {
	mu sync.RWMutex

	cells []Cell  // cells[i].ID == CellID(i)
	edges []edge  // edges[i].id == EdgeID(i)
	out   [][]EdgeID // out[from] holds edge ids created from 'from', in creation order

	// realEdge deduplicates directed edges between two real cells only;
	// sentinel edges are intentionally absent from this index.
	realEdge map[[2]CellID]EdgeID
}

// NewGrid returns an empty Grid ready for AddCell/CreateEdge calls.
// Complexity: O(1).
func NewGrid() *Grid {
	return &Grid{
		realEdge: make(map[[2]CellID]EdgeID),
	}
}

// maxCellID bounds CellID so that arithmetic on it (and conversion to int
// for slice indexing) never overflows on supported platforms.
const maxCellID = math.MaxInt32
