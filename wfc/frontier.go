// SPDX-License-Identifier: MIT
//
// frontier.go — the entropy-ordered frontier: a container/heap min-heap
// keyed on (entropy, tiebreak, cellID), with lazy invalidation.
//
// Rationale: entropy only decreases as candidates shrink, and a cell
// leaves the frontier for good once it stops being Uncollapsed. Rather
// than reordering or removing heap entries in place (O(log n) with extra
// bookkeeping), every shrink pushes a fresh entry carrying the new
// entropy. A pop is valid only if the popped entry's cached entropy still
// equals the cell's live entropy and the cell is still Uncollapsed;
// otherwise it is a stale duplicate and is discarded. This keeps push O(log
// n) and selection amortized O(log n) per valid pop, at the cost of extra
// heap entries that are no more expensive to discard than to avoid.
package wfc

import "container/heap"

// frontierItem is one entry in the frontier heap.
type frontierItem struct {
	cell     cellID
	entropy  float64
	tiebreak uint64
}

// frontierHeap implements container/heap.Interface, ordering items
// lexicographically by (entropy, tiebreak, cell).
type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.entropy != b.entropy {
		return a.entropy < b.entropy
	}
	if a.tiebreak != b.tiebreak {
		return a.tiebreak < b.tiebreak
	}

	return a.cell < b.cell
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierItem)) }

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// pushFrontier records a fresh (entropy, tiebreak) reading for cell.
func (m *Manager) pushFrontier(cell cellID, entropy float64, tiebreak uint64) {
	heap.Push(&m.frontier, frontierItem{cell: cell, entropy: entropy, tiebreak: tiebreak})
}

// selectMinEntropyCell pops entries until it finds one whose cached
// reading still matches the cell's live state, returning that cell. It
// returns false once the heap is exhausted of valid entries.
func (m *Manager) selectMinEntropyCell() (cellID, bool) {
	for m.frontier.Len() > 0 {
		item := heap.Pop(&m.frontier).(frontierItem)
		st := &m.states[item.cell]
		if st.status != Uncollapsed {
			continue // resolved (collapsed or conflicted) since this entry was pushed
		}
		if st.entropy != item.entropy {
			continue // superseded by a fresher entry
		}

		return item.cell, true
	}

	return 0, false
}
