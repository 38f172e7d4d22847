// SPDX-License-Identifier: MIT
//
// methods.go — Grid operations: AddCell, CreateEdge, Neighbours, FindEdge,
// IsSentinel, CellCount, EdgeCount, Payload, Validate.
//
// Determinism:
//   - Neighbours(c) returns edges created from c in the reverse of their
//     creation order; this is the substrate half of the direction contract
//     (see package direction for the other half).
//   - Cell and edge IDs are issued in strict insertion order.
//
// Concurrency:
//   - All mutation and reads take the single Grid mutex. Builders may add
//     cells/edges from multiple goroutines during construction; callers
//     must not call CreateEdge concurrently with Neighbours on the same
//     cell if they need a specific partial state — the lock only
//     guarantees internal consistency, not external sequencing.
package core

import "fmt"

// AddCell appends a cell carrying payload and returns its CellID. Panics
// only if the cell counter would overflow CellID's range, which requires
// on the order of maxCellID insertions and is not a realistic runtime
// condition for this package's intended grid sizes.
// Complexity: O(1) amortized.
func (g *Grid) AddCell(payload interface{}) CellID {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.cells) >= maxCellID {
		panic(ErrCapacityExhausted)
	}

	id := CellID(len(g.cells))
	g.cells = append(g.cells, Cell{ID: id, Payload: payload})
	g.out = append(g.out, nil)

	return id
}

// CreateEdge appends a directed edge from 'from' to either a real cell or,
// when to == Sentinel, the shared boundary. It returns ErrSelfLoop if
// from == to, and ErrEdgeAlreadyExists if a directed edge already exists
// from 'from' to a real 'to' (sentinel edges are never deduplicated).
// Complexity: O(1) amortized.
func (g *Grid) CreateEdge(from, to CellID) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to {
		return 0, fmt.Errorf("CreateEdge(%d->%d): %w", from, to, ErrSelfLoop)
	}
	if err := g.checkCellLocked(from); err != nil {
		return 0, fmt.Errorf("CreateEdge: from: %w", err)
	}
	if to != Sentinel {
		if err := g.checkCellLocked(to); err != nil {
			return 0, fmt.Errorf("CreateEdge: to: %w", err)
		}
		if _, exists := g.realEdge[[2]CellID{from, to}]; exists {
			return 0, fmt.Errorf("CreateEdge(%d->%d): %w", from, to, ErrEdgeAlreadyExists)
		}
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge{id: id, from: from, to: to})
	g.out[from] = append(g.out[from], id)
	if to != Sentinel {
		g.realEdge[[2]CellID{from, to}] = id
	}

	return id, nil
}

// Neighbours returns the neighbour list of cell, in the reverse of
// edge-creation order. May include Sentinel. Length equals the number of
// edges created from cell.
// Complexity: O(deg(cell)).
func (g *Grid) Neighbours(cell CellID) ([]CellID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkCellLocked(cell); err != nil {
		return nil, fmt.Errorf("Neighbours: %w", err)
	}

	eids := g.out[cell]
	out := make([]CellID, len(eids))
	for i, eid := range eids {
		// reverse: the last-created outgoing edge becomes index 0
		out[len(eids)-1-i] = g.edges[eid].to
	}

	return out, nil
}

// GetNeighbourByDirection returns the neighbour of cell at the given
// zero-based neighbour-list index (see the direction package for turning
// a compass direction into this index).
// Complexity: O(deg(cell)).
func (g *Grid) GetNeighbourByDirection(cell CellID, index int) (CellID, error) {
	ns, err := g.Neighbours(cell)
	if err != nil {
		return Sentinel, err
	}
	if index < 0 || index >= len(ns) {
		return Sentinel, fmt.Errorf("GetNeighbourByDirection(%d, %d): %w", cell, index, ErrIndexOutOfBounds)
	}

	return ns[index], nil
}

// FindEdge returns the id of a directed edge from 'from' to 'to', if any.
// Sentinel targets are never indexed for lookup; FindEdge(from, Sentinel)
// always reports not-found even if such an edge exists — use Neighbours to
// discover sentinel edges.
// Complexity: O(1).
func (g *Grid) FindEdge(from, to CellID) (EdgeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.realEdge[[2]CellID{from, to}]

	return id, ok
}

// IsSentinel reports whether id is the shared boundary identity.
// Complexity: O(1).
func (g *Grid) IsSentinel(id CellID) bool {
	return id == Sentinel
}

// CellCount returns the number of real cells added via AddCell.
// Complexity: O(1).
func (g *Grid) CellCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cells)
}

// EdgeCount returns the total number of directed edges created, including
// sentinel edges.
// Complexity: O(1).
func (g *Grid) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Payload returns the application-defined payload stored for cell.
// Complexity: O(1).
func (g *Grid) Payload(cell CellID) (interface{}, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkCellLocked(cell); err != nil {
		return nil, fmt.Errorf("Payload: %w", err)
	}

	return g.cells[cell].Payload, nil
}

// Validate checks structural invariants: every real cell's neighbour list
// has length exactly dirLen, once a direction.Set of that size is bound to
// this grid. Pass dirLen <= 0 to skip the length check and only verify
// basic bounds consistency.
// Complexity: O(cells + edges).
func (g *Grid) Validate(dirLen int) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if dirLen > 0 {
		for _, c := range g.cells {
			if got := len(g.out[c.ID]); got != dirLen {
				return fmt.Errorf("core: cell %d has %d outgoing edges, want %d: %w", c.ID, got, dirLen, ErrIndexOutOfBounds)
			}
		}
	}
	for _, e := range g.edges {
		if int(e.from) < 0 || int(e.from) >= len(g.cells) {
			return fmt.Errorf("core: edge %d has invalid source %d: %w", e.id, e.from, ErrCellNotFound)
		}
		if e.to != Sentinel && (int(e.to) < 0 || int(e.to) >= len(g.cells)) {
			return fmt.Errorf("core: edge %d has invalid target %d: %w", e.id, e.to, ErrCellNotFound)
		}
	}

	return nil
}

// checkCellLocked validates that id names a real, in-range cell. Callers
// must hold g.mu (read or write) before calling this.
func (g *Grid) checkCellLocked(id CellID) error {
	if id == Sentinel {
		return fmt.Errorf("cell %d is the sentinel: %w", id, ErrCellNotFound)
	}
	if int(id) < 0 || int(id) >= len(g.cells) {
		return fmt.Errorf("cell %d: %w", id, ErrCellNotFound)
	}

	return nil
}
