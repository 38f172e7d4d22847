// SPDX-License-Identifier: MIT
package tile

import "errors"

// ErrBadEdgeCount indicates a tile's edge-label list length does not match
// the bound direction.Set's length.
var ErrBadEdgeCount = errors.New("tile: edge-label count does not match direction set")

// ErrNonPositiveWeight indicates a tile was added with weight <= 0.
var ErrNonPositiveWeight = errors.New("tile: weight must be positive")

// ErrTileNotFound indicates Get was called with an unknown tile ID.
var ErrTileNotFound = errors.New("tile: tile not found")

// ErrBadNeighbourShape indicates Judge was called with a neighbourCandidates
// slice whose length does not match the catalogue's direction count.
var ErrBadNeighbourShape = errors.New("tile: neighbour-candidates shape mismatch")
