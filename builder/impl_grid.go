// SPDX-License-Identifier: MIT
//
// impl_grid.go — Grid2D(rows, cols) constructor.
//
// Contract:
//   - rows >= 1 and cols >= 1 (else ErrTooFewCells).
//   - Cells are added in row-major order (r asc, then c asc).
//   - Each cell emits exactly 4 edges in the fixed order East, South, West,
//     North, pointing at the in-bounds neighbour or core.Sentinel.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wfcgraph/core"
)

const minGridDim = 1

// Grid2D returns a Constructor building a bounded rows x cols orthogonal
// grid.
func Grid2D(rows, cols int) Constructor {
	return func(g *core.Grid, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid2D: rows=%d, cols=%d (each must be >= %d): %w", rows, cols, minGridDim, ErrTooFewCells)
		}

		ids := addCellsRowMajor(g, rows, cols, cfg)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				from := ids.at(r, c)

				east := core.Sentinel
				if c+1 < cols {
					east = ids.at(r, c+1)
				}
				south := core.Sentinel
				if r+1 < rows {
					south = ids.at(r+1, c)
				}
				west := core.Sentinel
				if c-1 >= 0 {
					west = ids.at(r, c-1)
				}
				north := core.Sentinel
				if r-1 >= 0 {
					north = ids.at(r-1, c)
				}

				for _, to := range []core.CellID{east, south, west, north} {
					if _, err := g.CreateEdge(from, to); err != nil {
						return fmt.Errorf("Grid2D: CreateEdge(%d->%d): %w", from, to, err)
					}
				}
			}
		}

		return nil
	}
}
