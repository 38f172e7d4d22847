// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the core package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("...: %w", ...).
package core

import "errors"

// ErrSelfLoop indicates CreateEdge was asked to connect a cell to itself.
var ErrSelfLoop = errors.New("core: self-loop is not allowed")

// ErrEdgeAlreadyExists indicates a directed edge already exists between the
// same (from, to) pair of real cells. Sentinel edges are exempt: a cell may
// point at the boundary more than once.
var ErrEdgeAlreadyExists = errors.New("core: edge already exists")

// ErrCellNotFound indicates an operation referenced a cell ID outside the
// range issued by AddCell (or, where relevant, the sentinel).
var ErrCellNotFound = errors.New("core: cell not found")

// ErrIndexOutOfBounds indicates a neighbour-list index fell outside
// [0, len(neighbours)).
var ErrIndexOutOfBounds = errors.New("core: index out of bounds")

// ErrCapacityExhausted indicates the cell or edge counter would overflow
// the id type on the next insertion.
var ErrCapacityExhausted = errors.New("core: id capacity exhausted")
