// SPDX-License-Identifier: MIT
//
// propagate.go — breadth-first constraint propagation, shared by the main
// collapse loop and by repair's tentative per-candidate collapses.
//
// Determinism: BFS order follows core.Grid.Neighbours order (direction
// index order), which is itself derived deterministically from
// edge-creation order — so propagation order is stable for a fixed graph
// and direction set.
package wfc

import (
	"fmt"

	"github.com/katalvlaran/wfcgraph/tile"
)

// propagate runs BFS seeded at seed, shrinking the candidate sets of each
// dequeued cell's Uncollapsed neighbours to restore arc
// consistency. It returns the set of cells that transitioned to Conflict
// during this call (used by repair to detect whether a tentative
// assignment broke anything further down its search sequence).
func (m *Manager) propagate(seed cellID) (map[cellID]bool, error) {
	queue := []cellID{seed}
	inQueue := map[cellID]bool{seed: true}
	newConflicts := map[cellID]bool{}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		delete(inQueue, c)

		neigh, err := m.grid.Neighbours(c)
		if err != nil {
			return nil, fmt.Errorf("wfc.propagate: %w", err)
		}

		for _, n := range neigh {
			if m.grid.IsSentinel(n) {
				continue
			}
			ns := &m.states[n]
			if ns.status != Uncollapsed {
				continue
			}

			nc, err := m.buildNeighbourCandidates(n)
			if err != nil {
				return nil, fmt.Errorf("wfc.propagate: %w", err)
			}

			shrunk, err := m.filterCompatible(ns.candidates, nc)
			if err != nil {
				return nil, fmt.Errorf("wfc.propagate: %w", err)
			}

			if len(shrunk) == len(ns.candidates) {
				continue // no change, nothing to enqueue
			}

			if len(shrunk) == 0 {
				m.markConflict(n)
				newConflicts[n] = true
			} else if err := m.markUncollapsed(n, shrunk); err != nil {
				return nil, fmt.Errorf("wfc.propagate: %w", err)
			}

			if !inQueue[n] {
				queue = append(queue, n)
				inQueue[n] = true
			}
		}
	}

	return newConflicts, nil
}

// filterCompatible returns the subset of candidates for which
// Catalogue.Judge(neighbourCandidates, t) holds, preserving ascending
// order.
func (m *Manager) filterCompatible(candidates []tile.ID, neighbourCandidates [][]tile.ID) ([]tile.ID, error) {
	var out []tile.ID
	for _, t := range candidates {
		ok, err := m.cat.Judge(neighbourCandidates, t)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, t)
		}
	}

	return out, nil
}
