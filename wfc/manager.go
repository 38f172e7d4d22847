// SPDX-License-Identifier: MIT
//
// manager.go — Manager construction, initialization, accessors, and the
// small internal helpers (entropy, weighted sampling, neighbour-candidate
// assembly, snapshot/restore) shared by engine.go and repair.go.
package wfc

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	mrand "math/rand"
	"sort"

	"github.com/katalvlaran/wfcgraph/core"
	"github.com/katalvlaran/wfcgraph/direction"
	"github.com/katalvlaran/wfcgraph/tile"
)

// cellID is a local alias kept short for readability across this package's
// many cell-indexed helpers.
type cellID = core.CellID

// Manager drives one WFC solve. It owns the state table, the RNG, and
// exclusive mutation rights over the grid/catalogue for the duration of
// the solve. Not safe for concurrent use; see package doc.
type Manager struct {
	grid *core.Grid
	cat  *tile.Catalogue
	dirs direction.Set
	cfg  Config

	states        []cellState
	completed     int
	conflictCount int
	frontier      frontierHeap

	rng      *mrand.Rand
	seedUsed int64
}

// New constructs a Manager bound to grid and cat. grid must already carry
// one outgoing edge per cell per direction in dirs (see the builder
// package); cat must share the same direction count. It validates both
// before returning.
func New(grid *core.Grid, cat *tile.Catalogue, dirs direction.Set, cfg Config) (*Manager, error) {
	if err := grid.Validate(dirs.Len()); err != nil {
		return nil, fmt.Errorf("wfc.New: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("wfc.New: %w", err)
	}

	return &Manager{
		grid: grid,
		cat:  cat,
		dirs: dirs,
		cfg:  cfg.resolved(),
	}, nil
}

// Seed returns the RNG seed used for this run (useful for logging when
// Config.RandomSeed was nil and the engine drew its own).
func (m *Manager) Seed() int64 { return m.seedUsed }

// Initialize seeds the state table: every cell starts Uncollapsed with
// every tile as a candidate, a tiebreak drawn from the engine RNG, and
// entropy computed from the initial candidate set. It then invokes init
// (if non-nil), which may call PreCollapse any number of times.
func (m *Manager) Initialize(init Initializer) error {
	seed, err := resolveSeed(m.cfg.RandomSeed)
	if err != nil {
		return fmt.Errorf("wfc.Initialize: %w", err)
	}
	m.seedUsed = seed
	m.rng = mrand.New(mrand.NewSource(seed))

	n := m.grid.CellCount()
	m.states = make([]cellState, n)
	m.frontier = nil
	m.completed = 0
	m.conflictCount = 0

	allIDs := m.cat.IDs()
	for c := 0; c < n; c++ {
		cands := make([]tile.ID, len(allIDs))
		copy(cands, allIDs)
		tb := m.rng.Uint64()
		h, err := m.entropyOf(cands)
		if err != nil {
			return fmt.Errorf("wfc.Initialize: %w", err)
		}
		m.states[c] = cellState{
			status:     Uncollapsed,
			candidates: cands,
			entropy:    h,
			tiebreak:   tb,
		}
		m.pushFrontier(cellID(c), m.states[c].entropy, tb)
	}

	if init != nil {
		if err := init.Seed(m); err != nil {
			return fmt.Errorf("wfc.Initialize: %w: %w", err, ErrInitialization)
		}
	}

	return nil
}

// resolveSeed returns seed if non-nil, else draws 8 bytes from
// crypto/rand and interprets them as an int64.
func resolveSeed(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("drawing random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// PreCollapse forces cell to tileID, provided tileID is currently a
// candidate of cell, then propagates. It is the only way an Initializer
// may constrain the outcome before Run/Step begins.
func (m *Manager) PreCollapse(cell cellID, t tile.ID) error {
	st, err := m.cellRef(cell)
	if err != nil {
		return fmt.Errorf("wfc.PreCollapse: %w", err)
	}
	if st.status == Collapsed {
		return fmt.Errorf("wfc.PreCollapse(%d): %w", cell, ErrCellAlreadyCollapsed)
	}
	if !containsID(st.candidates, t) {
		return fmt.Errorf("wfc.PreCollapse(%d, %d): %w", cell, t, ErrInvalidTileChoice)
	}

	m.markCollapsed(cell, t)
	if _, err := m.propagate(cell); err != nil {
		return fmt.Errorf("wfc.PreCollapse(%d): %w", cell, err)
	}

	return nil
}

// IsComplete reports whether every real cell is Collapsed.
func (m *Manager) IsComplete() bool { return m.completed == len(m.states) }

// HasConflicts reports whether any cell currently has status Conflict.
func (m *Manager) HasConflicts() bool { return m.conflictCount > 0 }

// GetCellState returns a copy of cell's current WFC record.
func (m *Manager) GetCellState(cell cellID) (CellState, error) {
	st, err := m.cellRef(cell)
	if err != nil {
		return CellState{}, fmt.Errorf("wfc.GetCellState: %w", err)
	}

	return st.view(), nil
}

// GetCollapsedTile returns the tile cell is collapsed to, if any.
func (m *Manager) GetCollapsedTile(cell cellID) (tile.ID, bool) {
	st, err := m.cellRef(cell)
	if err != nil || st.status != Collapsed {
		return 0, false
	}

	return st.candidates[0], true
}

// Solution returns the (cell -> tile) mapping for every Collapsed cell. It
// does not require the run to be complete; callers should check IsComplete
// first if they need a total assignment.
func (m *Manager) Solution() map[cellID]tile.ID {
	out := make(map[cellID]tile.ID, m.completed)
	for i, st := range m.states {
		if st.status == Collapsed {
			out[cellID(i)] = st.candidates[0]
		}
	}

	return out
}

// cellRef returns a pointer to cell's live state, validating bounds.
func (m *Manager) cellRef(cell cellID) (*cellState, error) {
	if int(cell) < 0 || int(cell) >= len(m.states) {
		return nil, fmt.Errorf("cell %d: %w", cell, ErrCellNotFound)
	}

	return &m.states[cell], nil
}

// entropyOf computes Shannon entropy over candidates' weights. A candidate
// ID absent from the catalogue indicates a caller passed a state-table
// candidate set built from some other catalogue; that is a programmer
// error, not a recoverable run condition, so it is surfaced rather than
// silently treated as weightless.
func (m *Manager) entropyOf(candidates []tile.ID) (float64, error) {
	if len(candidates) <= 1 {
		return 0, nil
	}
	weights := make([]float64, len(candidates))
	var sum float64
	for i, id := range candidates {
		t, err := m.cat.Get(id)
		if err != nil {
			return 0, fmt.Errorf("wfc.entropyOf(%d): %w: %w", id, err, ErrTileNotFound)
		}
		weights[i] = t.Weight
		sum += t.Weight
	}
	if sum == 0 {
		return math.Log2(float64(len(candidates))), nil
	}
	var h float64
	for _, w := range weights {
		if w == 0 {
			continue
		}
		p := w / sum
		h -= p * math.Log2(p)
	}

	return h, nil
}

// sampleWeighted draws one tile from ids (assumed sorted ascending, the
// stable candidate order) by inverse-CDF over weight.
func (m *Manager) sampleWeighted(ids []tile.ID) (tile.ID, error) {
	if len(ids) == 0 {
		return 0, ErrNoUncollapsedCells
	}
	weights := make([]float64, len(ids))
	var total float64
	for i, id := range ids {
		t, err := m.cat.Get(id)
		if err != nil {
			return 0, err
		}
		weights[i] = t.Weight
		total += t.Weight
	}
	r := m.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return ids[i], nil
		}
	}

	return ids[len(ids)-1], nil
}

// buildNeighbourCandidates assembles, for cell, one candidate slice per
// direction index: a sentinel neighbour contributes nil (empty), a real
// neighbour contributes its current live candidates slice directly — which
// already is the singleton for a Collapsed neighbour and empty for a
// Conflict one, by the state-table invariants.
func (m *Manager) buildNeighbourCandidates(cell cellID) ([][]tile.ID, error) {
	neigh, err := m.grid.Neighbours(cell)
	if err != nil {
		return nil, err
	}
	nc := make([][]tile.ID, len(neigh))
	for i, n := range neigh {
		if m.grid.IsSentinel(n) {
			continue
		}
		nc[i] = m.states[n].candidates
	}

	return nc, nil
}

// collapsedNeighbourCandidates is like buildNeighbourCandidates but only
// Collapsed neighbours contribute (used by repair's pre-check against
// already-fixed neighbours, before propagation handles uncollapsed ones).
func (m *Manager) collapsedNeighbourCandidates(cell cellID) ([][]tile.ID, error) {
	neigh, err := m.grid.Neighbours(cell)
	if err != nil {
		return nil, err
	}
	nc := make([][]tile.ID, len(neigh))
	for i, n := range neigh {
		if m.grid.IsSentinel(n) {
			continue
		}
		if m.states[n].status == Collapsed {
			nc[i] = m.states[n].candidates
		}
	}

	return nc, nil
}

// containsID reports whether id appears in a sorted-ascending slice.
func containsID(ids []tile.ID, id tile.ID) bool {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })

	return i < len(ids) && ids[i] == id
}

// mgrSnapshot captures the full state table and completed/conflict
// counters. The graph, catalogue, and RNG are not captured — they are
// immutable (graph/catalogue) or advance monotonically (RNG) across the
// run.
type mgrSnapshot struct {
	states        []cellState
	completed     int
	conflictCount int
}

// snapshot deep-copies the state table.
func (m *Manager) snapshot() mgrSnapshot {
	return mgrSnapshot{
		states:        cloneStates(m.states),
		completed:     m.completed,
		conflictCount: m.conflictCount,
	}
}

// restore deep-copies s back into the live state table. It never aliases
// s's backing arrays, so the same snapshot may be restored more than once
// (as repair's bounded DFS does across sibling candidate attempts).
func (m *Manager) restore(s mgrSnapshot) {
	m.states = cloneStates(s.states)
	m.completed = s.completed
	m.conflictCount = s.conflictCount
}

func cloneStates(in []cellState) []cellState {
	out := make([]cellState, len(in))
	for i, cs := range in {
		cands := make([]tile.ID, len(cs.candidates))
		copy(cands, cs.candidates)
		out[i] = cellState{status: cs.status, candidates: cands, entropy: cs.entropy, tiebreak: cs.tiebreak}
	}

	return out
}
