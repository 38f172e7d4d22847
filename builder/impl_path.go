// SPDX-License-Identifier: MIT
//
// impl_path.go — Path(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewCells).
//   - Cells are added in ascending index order, row 0.
//   - Each cell emits 4 edges in order East, South, West, North; South and
//     North always target core.Sentinel (Path has no second dimension),
//     East/West target the adjacent index or core.Sentinel at either end.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wfcgraph/core"
)

const minPathCells = 1

// Path returns a Constructor building an n-cell 1-dimensional chain.
func Path(n int) Constructor {
	return func(g *core.Grid, cfg builderConfig) error {
		if n < minPathCells {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathCells, ErrTooFewCells)
		}

		ids := addCellsRowMajor(g, 1, n, cfg)

		for c := 0; c < n; c++ {
			from := ids.at(0, c)

			east := core.Sentinel
			if c+1 < n {
				east = ids.at(0, c+1)
			}
			west := core.Sentinel
			if c-1 >= 0 {
				west = ids.at(0, c-1)
			}

			for _, to := range []core.CellID{east, core.Sentinel, west, core.Sentinel} {
				if _, err := g.CreateEdge(from, to); err != nil {
					return fmt.Errorf("Path: CreateEdge(%d->%d): %w", from, to, err)
				}
			}
		}

		return nil
	}
}
