// SPDX-License-Identifier: MIT
package wfc

import "errors"

// ErrNoUncollapsedCells is returned when weighted sampling is asked to
// choose from an empty candidate set. An empty frontier is not an error:
// Step/Run simply move on to conflict-check / Complete.
var ErrNoUncollapsedCells = errors.New("wfc: no uncollapsed cells")

// ErrCellNotFound indicates an operation referenced an unknown cell.
var ErrCellNotFound = errors.New("wfc: cell not found")

// ErrTileNotFound indicates an operation referenced an unknown tile.
var ErrTileNotFound = errors.New("wfc: tile not found")

// ErrCellAlreadyCollapsed indicates PreCollapse was called on a cell that
// is already Collapsed.
var ErrCellAlreadyCollapsed = errors.New("wfc: cell already collapsed")

// ErrInvalidTileChoice indicates PreCollapse named a tile that is not
// currently a candidate of the target cell.
var ErrInvalidTileChoice = errors.New("wfc: tile is not a current candidate")

// ErrUnresolvableConflicts is the only terminal error Step/Run emit under a
// well-formed input: repair exhausted its recursion depth or ran out of
// neighbours to recruit before finding a consistent assignment.
var ErrUnresolvableConflicts = errors.New("wfc: conflicts could not be resolved")

// ErrInconsistentState indicates a violation of the state-table invariants
// documented in state.go. It must never be observed by a well-formed
// caller; it is fatal and indicates a bug in this package or in a caller's
// custom tile.MatchFunc.
var ErrInconsistentState = errors.New("wfc: inconsistent internal state")

// ErrInitialization wraps application-supplied Initializer failures;
// callers should check errors.Is(err, ErrInitialization) and inspect the
// wrapped message for detail.
var ErrInitialization = errors.New("wfc: initialization failed")
