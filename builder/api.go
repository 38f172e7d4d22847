// SPDX-License-Identifier: MIT
//
// api.go — the public entry point: Constructor, BuildGrid, and the
// topology factories implemented in impl_*.go.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wfcgraph/core"
)

// Constructor populates an already-empty core.Grid deterministically given
// a resolved builderConfig. Constructors validate parameters early and
// return sentinel errors; they never panic.
type Constructor func(g *core.Grid, cfg builderConfig) error

// BuildGrid creates a new core.Grid, resolves opts into a builderConfig,
// and runs con against it. All topologies in this package are bound to
// direction.Orthogonal; callers construct a matching tile.Catalogue with
// direction.Orthogonal directly.
func BuildGrid(con Constructor, opts ...BuilderOption) (*core.Grid, error) {
	if con == nil {
		return nil, fmt.Errorf("BuildGrid: %w", ErrNilConstructor)
	}

	g := core.NewGrid()
	cfg := newBuilderConfig(opts...)
	if err := con(g, cfg); err != nil {
		return nil, fmt.Errorf("BuildGrid: %w", err)
	}

	return g, nil
}

// Grid2D builds a bounded rows x cols orthogonal grid (rows, cols >= 1):
// every cell gets an East/South/West/North edge to its in-bounds neighbour
// or to core.Sentinel at the boundary.
// Complexity: O(rows*cols).
//func Grid2D(rows, cols int) Constructor

// Path builds an n-cell 1-dimensional chain (n >= 1): East/West edges
// connect consecutive cells (sentinel at both ends), North/South edges
// always point at core.Sentinel.
// Complexity: O(n).
//func Path(n int) Constructor

// Torus builds a rows x cols grid (rows, cols >= 3) wrapping on both axes:
// no cell's neighbour is ever core.Sentinel.
// Complexity: O(rows*cols).
//func Torus(rows, cols int) Constructor
