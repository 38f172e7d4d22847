// SPDX-License-Identifier: MIT
//
// helpers.go — shared row-major cell addressing used by every topology.
package builder

import "github.com/katalvlaran/wfcgraph/core"

// rowMajor returns a lookup from (row, col) to the CellID assigned to that
// coordinate by addCellsRowMajor.
type rowMajor struct {
	cols int
	ids  []core.CellID
}

func (m rowMajor) at(r, c int) core.CellID { return m.ids[r*m.cols+c] }

// addCellsRowMajor appends rows*cols cells to g in row-major order (r
// ascending outer, c ascending inner), invoking cfg.payloadFn per cell, and
// returns the resulting lookup table.
func addCellsRowMajor(g *core.Grid, rows, cols int, cfg builderConfig) rowMajor {
	ids := make([]core.CellID, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ids = append(ids, g.AddCell(cfg.payloadFn(r, c)))
		}
	}

	return rowMajor{cols: cols, ids: ids}
}
