// SPDX-License-Identifier: MIT
//
// engine.go — the collapse/propagation step algorithm and the Run/Step
// public surface.
package wfc

import (
	"context"
	"errors"
	"fmt"
)

// StepResult is the outcome of one Manager.Step call.
type StepResult int

const (
	// StepCollapsed reports that one cell was selected, sampled, and
	// propagated.
	StepCollapsed StepResult = iota
	// StepConflictsResolved reports that the conflict-repair engine found
	// a consistent assignment for every current conflict.
	StepConflictsResolved
	// StepConflictResolutionFailed reports that repair exhausted its
	// recursion depth, or ran out of neighbours to recruit, without
	// resolving every conflict. The accompanying
	// error is ErrUnresolvableConflicts.
	StepConflictResolutionFailed
	// StepComplete reports that every cell is Collapsed and no conflicts
	// remain.
	StepComplete
)

func (r StepResult) String() string {
	switch r {
	case StepCollapsed:
		return "Collapsed"
	case StepConflictsResolved:
		return "ConflictsResolved"
	case StepConflictResolutionFailed:
		return "ConflictResolutionFailed"
	case StepComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Step advances the solve by exactly one collapse-plus-propagation, or (if
// the frontier is empty) one repair attempt, or reports Complete. It never
// spins beyond that bounded amount of work.
func (m *Manager) Step() (StepResult, error) {
	if cell, ok := m.selectMinEntropyCell(); ok {
		if err := m.collapseAndPropagate(cell); err != nil {
			return StepCollapsed, fmt.Errorf("wfc.Step: %w", err)
		}

		return StepCollapsed, nil
	}

	if m.HasConflicts() {
		resolved, err := m.repair()
		if err != nil {
			if errors.Is(err, ErrUnresolvableConflicts) {
				return StepConflictResolutionFailed, err
			}

			return StepConflictResolutionFailed, fmt.Errorf("wfc.Step: %w", err)
		}
		if resolved {
			return StepConflictsResolved, nil
		}

		return StepConflictResolutionFailed, ErrUnresolvableConflicts
	}

	return StepComplete, nil
}

// Run loops Step until a terminal result (Complete) or a terminal error
// (ErrUnresolvableConflicts), or until ctx is done. Callers wanting to
// interleave with their own event loop should call Step directly instead.
func (m *Manager) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res, err := m.Step()
		if err != nil {
			return err
		}
		if res == StepComplete {
			return nil
		}
	}
}

// collapseAndPropagate samples a tile by weight for cell, collapses it,
// and propagates the resulting constraint outward.
func (m *Manager) collapseAndPropagate(cell cellID) error {
	st, err := m.cellRef(cell)
	if err != nil {
		return err
	}

	chosen, err := m.sampleWeighted(st.candidates)
	if err != nil {
		return err
	}

	m.markCollapsed(cell, chosen)
	if _, err := m.propagate(cell); err != nil {
		return err
	}

	return nil
}
