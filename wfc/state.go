// SPDX-License-Identifier: MIT
//
// state.go — the per-cell WFC state table (the "Cell WFC record") and the
// centralized status-transition helpers that keep completed/conflict
// counters consistent with it.
//
// Invariants enforced here:
//   - candidates is non-empty iff status != Conflict.
//   - candidates is a singleton when status == Collapsed. An Uncollapsed
//     cell may also hold a single candidate: propagation shrinks sets
//     without collapsing them, and such a cell is collapsed when it is next
//     selected.
//   - candidates is always sorted ascending by tile.ID (stable ordering
//     for weighted sampling and DFS candidate order).
package wfc

import (
	"fmt"

	"github.com/katalvlaran/wfcgraph/tile"
)

// Status is a cell's collapse state.
type Status int

const (
	// Uncollapsed cells still hold one or more candidate tiles.
	Uncollapsed Status = iota
	// Collapsed cells hold exactly one candidate tile.
	Collapsed
	// Conflict cells hold zero candidate tiles.
	Conflict
)

func (s Status) String() string {
	switch s {
	case Uncollapsed:
		return "Uncollapsed"
	case Collapsed:
		return "Collapsed"
	case Conflict:
		return "Conflict"
	default:
		return "Unknown"
	}
}

// cellState is the per-cell WFC record.
type cellState struct {
	status     Status
	candidates []tile.ID // sorted ascending; see invariants above
	entropy    float64
	tiebreak   uint64
}

// CellState is a read-only snapshot view returned to callers by
// Manager.GetCellState; it copies Candidates so callers cannot corrupt
// internal state through the returned slice.
type CellState struct {
	Status     Status
	Candidates []tile.ID
	Entropy    float64
	Tiebreak   uint64
}

func (cs cellState) view() CellState {
	cp := make([]tile.ID, len(cs.candidates))
	copy(cp, cs.candidates)

	return CellState{Status: cs.status, Candidates: cp, Entropy: cs.entropy, Tiebreak: cs.tiebreak}
}

// markUncollapsed sets cell's candidates, recomputing entropy and pushing
// a fresh frontier entry. It is used for every non-empty set that is not
// being collapsed: propagation passes shrunk sets here, including sets of
// size 1 (repair forces size-1 recoveries to Collapsed instead; see
// repair.go).
func (m *Manager) markUncollapsed(cell cellID, candidates []tile.ID) error {
	h, err := m.entropyOf(candidates)
	if err != nil {
		return fmt.Errorf("wfc.markUncollapsed(%d): %w", cell, err)
	}
	st := &m.states[cell]
	wasConflict := st.status == Conflict
	st.status = Uncollapsed
	st.candidates = candidates
	st.entropy = h
	if wasConflict {
		m.conflictCount--
	}
	m.pushFrontier(cell, st.entropy, st.tiebreak)

	return nil
}

// markCollapsed sets cell to Collapsed with exactly tileID as its
// candidate, updating the completed/conflict counters.
func (m *Manager) markCollapsed(cell cellID, t tile.ID) {
	st := &m.states[cell]
	wasConflict := st.status == Conflict
	wasCollapsed := st.status == Collapsed
	st.status = Collapsed
	st.candidates = []tile.ID{t}
	st.entropy = 0
	if wasConflict {
		m.conflictCount--
	}
	if !wasCollapsed {
		m.completed++
	}
}

// markConflict empties cell's candidates and marks it Conflict.
func (m *Manager) markConflict(cell cellID) {
	st := &m.states[cell]
	wasCollapsed := st.status == Collapsed
	wasConflict := st.status == Conflict
	st.status = Conflict
	st.candidates = nil
	st.entropy = 0
	if wasCollapsed {
		m.completed--
	}
	if !wasConflict {
		m.conflictCount++
	}
}
