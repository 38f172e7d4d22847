// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package. Callers branch with
// errors.Is; messages are never matched as strings.
package builder

import "errors"

// ErrTooFewCells indicates a requested dimension (rows, cols, n) is smaller
// than the topology's minimum.
var ErrTooFewCells = errors.New("builder: too few cells")

// ErrNilConstructor indicates BuildGrid received a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")
