// SPDX-License-Identifier: MIT
//
// impl_torus.go — Torus(rows, cols) constructor.
//
// Contract:
//   - rows >= 3 and cols >= 3 (else ErrTooFewCells): a dimension of 1 would
//     wrap a cell onto itself on that axis, which core.Grid rejects as a
//     self-loop, and a dimension of 2 would make both neighbours on that
//     axis the same cell, which core.Grid rejects as a duplicate edge.
//   - Cells are added in row-major order.
//   - Each cell emits 4 edges in order East, South, West, North, wrapping
//     modularly on both axes. No edge ever targets core.Sentinel.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wfcgraph/core"
)

const minTorusDim = 3

// Torus returns a Constructor building a rows x cols grid that wraps on
// both axes.
func Torus(rows, cols int) Constructor {
	return func(g *core.Grid, cfg builderConfig) error {
		if rows < minTorusDim || cols < minTorusDim {
			return fmt.Errorf("Torus: rows=%d, cols=%d (each must be >= %d): %w", rows, cols, minTorusDim, ErrTooFewCells)
		}

		ids := addCellsRowMajor(g, rows, cols, cfg)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				from := ids.at(r, c)

				east := ids.at(r, (c+1)%cols)
				south := ids.at((r+1)%rows, c)
				west := ids.at(r, (c-1+cols)%cols)
				north := ids.at((r-1+rows)%rows, c)

				for _, to := range []core.CellID{east, south, west, north} {
					if _, err := g.CreateEdge(from, to); err != nil {
						return fmt.Errorf("Torus: CreateEdge(%d->%d): %w", from, to, err)
					}
				}
			}
		}

		return nil
	}
}
