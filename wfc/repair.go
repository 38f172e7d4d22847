// SPDX-License-Identifier: MIT
//
// repair.go — the layered conflict-repair engine: repair is local and
// layered, distinct from the main collapse loop, which never backtracks
// spontaneously.
//
// Modelled as a dedicated engine struct holding the Manager it operates
// on plus its own search state, the way tsp's branch-and-bound keeps a
// bbEngine separate from the graph/matrix it searches over.
package wfc

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wfcgraph/tile"
)

// repairEngine runs one repair() call: grow layers outward from the
// current conflicts, recover each layer's candidates, and attempt a
// bounded depth-first search over the union of all recruited cells.
type repairEngine struct {
	m *Manager
}

// repair is the Manager-facing entry point. It returns (true, nil) if
// repair found a consistent assignment, (false, ErrUnresolvableConflicts)
// if it exhausted its depth/neighbours, or (false, nil) if there was
// nothing to repair (should not normally be reached: callers check
// HasConflicts first).
func (m *Manager) repair() (bool, error) {
	return (&repairEngine{m: m}).run()
}

func (e *repairEngine) run() (bool, error) {
	m := e.m

	l0 := m.conflictCellsSorted()
	if len(l0) == 0 {
		return false, nil
	}

	layers := [][]cellID{l0}
	seen := make(map[cellID]bool, len(l0))
	for _, c := range l0 {
		seen[c] = true
	}

	for depth := 0; depth < m.cfg.MaxRecursionDepth; depth++ {
		// (a) recover every layer, outermost (most recently grown) first.
		for li := len(layers) - 1; li >= 0; li-- {
			for _, c := range layers[li] {
				if err := e.recover(c); err != nil {
					return false, fmt.Errorf("wfc.repair: %w", err)
				}
			}
		}

		// (b) attempt a bounded DFS over the union of all layers.
		seq := flattenLayers(layers)
		snap := m.snapshot()
		ok, err := e.backtrack(seq, 0)
		if err != nil {
			return false, fmt.Errorf("wfc.repair: %w", err)
		}
		if ok {
			return true, nil
		}

		// (c) restore and grow the next layer from the outermost ring.
		m.restore(snap)
		last := layers[len(layers)-1]
		next := e.growLayer(last, seen)
		if len(next) == 0 {
			return false, ErrUnresolvableConflicts
		}
		for _, c := range next {
			seen[c] = true
		}
		layers = append(layers, next)
	}

	return false, ErrUnresolvableConflicts
}

// recover recomputes cell's candidates from scratch as the set of catalogue
// tiles compatible with the current state of cell's real neighbours, and
// re-derives status from the result. Unlike propagation's incremental
// intersection, this is a full recomputation over every tile, since a
// Conflict cell's existing candidate set is empty by definition.
//
// A recovered singleton forces Collapsed (the state-table invariant ties
// "exactly one candidate" to Collapsed); a recovered empty set forces
// Conflict; anything else is Uncollapsed.
func (e *repairEngine) recover(cell cellID) error {
	m := e.m
	nc, err := m.buildNeighbourCandidates(cell)
	if err != nil {
		return err
	}

	var fresh []tile.ID
	for _, id := range m.cat.IDs() {
		ok, err := m.cat.Judge(nc, id)
		if err != nil {
			return err
		}
		if ok {
			fresh = append(fresh, id)
		}
	}

	switch len(fresh) {
	case 0:
		m.markConflict(cell)
	case 1:
		m.markCollapsed(cell, fresh[0])
	default:
		if err := m.markUncollapsed(cell, fresh); err != nil {
			return err
		}
	}

	return nil
}

// backtrack is the bounded DFS over one repair layer sequence: for
// cells[i], try each current candidate compatible with the cell's
// already-Collapsed neighbours, tentatively collapse and propagate, and
// recurse only if propagation introduced no new conflict within
// cells[i+1:].
func (e *repairEngine) backtrack(cells []cellID, i int) (bool, error) {
	m := e.m
	if i == len(cells) {
		return true, nil
	}

	c := cells[i]
	candidates := m.states[c].candidates // stable (ascending) snapshot for this call
	if len(candidates) == 0 {
		return false, nil
	}

	snap := m.snapshot()
	for _, t := range candidates {
		compatible, err := e.compatibleWithCollapsedNeighbours(c, t)
		if err != nil {
			return false, err
		}
		if !compatible {
			continue
		}

		m.markCollapsed(c, t)
		newConflicts, err := m.propagate(c)
		if err != nil {
			return false, err
		}

		introducedConflict := false
		for _, future := range cells[i+1:] {
			if newConflicts[future] {
				introducedConflict = true

				break
			}
		}

		if !introducedConflict {
			ok, err := e.backtrack(cells, i+1)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}

		m.restore(snap)
	}

	return false, nil
}

// compatibleWithCollapsedNeighbours reports whether t is compatible with
// every currently-Collapsed real neighbour of cell, ignoring uncollapsed
// neighbours (propagate checks those once t is tentatively chosen).
func (e *repairEngine) compatibleWithCollapsedNeighbours(cell cellID, t tile.ID) (bool, error) {
	nc, err := e.m.collapsedNeighbourCandidates(cell)
	if err != nil {
		return false, err
	}

	return e.m.cat.Judge(nc, t)
}

// growLayer returns cell's real uncollapsed-or-conflict neighbours not
// already recruited into any layer, sorted by ascending cell ID so growth
// is deterministic for a fixed graph and state table.
func (e *repairEngine) growLayer(prev []cellID, seen map[cellID]bool) []cellID {
	m := e.m
	next := map[cellID]bool{}
	for _, c := range prev {
		neigh, err := m.grid.Neighbours(c)
		if err != nil {
			continue
		}
		for _, n := range neigh {
			if m.grid.IsSentinel(n) || seen[n] || next[n] {
				continue
			}
			switch m.states[n].status {
			case Uncollapsed, Conflict:
				next[n] = true
			}
		}
	}

	out := make([]cellID, 0, len(next))
	for c := range next {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// conflictCellsSorted returns every cell currently in Conflict, sorted
// ascending by cell ID.
func (m *Manager) conflictCellsSorted() []cellID {
	var out []cellID
	for i, st := range m.states {
		if st.status == Conflict {
			out = append(out, cellID(i))
		}
	}

	return out
}

// flattenLayers concatenates layers in layer-creation order, preserving
// each layer's own (ascending) cell order.
func flattenLayers(layers [][]cellID) []cellID {
	var out []cellID
	for _, layer := range layers {
		out = append(out, layer...)
	}

	return out
}
