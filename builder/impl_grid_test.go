package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfcgraph/builder"
	"github.com/katalvlaran/wfcgraph/core"
	"github.com/katalvlaran/wfcgraph/direction"
)

func TestGrid2D_RejectsTooSmall(t *testing.T) {
	_, err := builder.BuildGrid(builder.Grid2D(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewCells)
}

func TestGrid2D_CellAndEdgeCounts(t *testing.T) {
	g, err := builder.BuildGrid(builder.Grid2D(3, 4))
	assert.NoError(t, err)
	assert.Equal(t, 12, g.CellCount())
	assert.Equal(t, 12*direction.Orthogonal.Len(), g.EdgeCount())
	assert.NoError(t, g.Validate(direction.Orthogonal.Len()))
}

func TestGrid2D_CornerHasTwoSentinelNeighbours(t *testing.T) {
	g, err := builder.BuildGrid(builder.Grid2D(2, 2))
	assert.NoError(t, err)

	// cell (0,0) has id 0: west and north are out of bounds.
	neigh, err := g.Neighbours(core.CellID(0))
	assert.NoError(t, err)
	assert.Len(t, neigh, 4)

	sentinelCount := 0
	for _, n := range neigh {
		if g.IsSentinel(n) {
			sentinelCount++
		}
	}
	assert.Equal(t, 2, sentinelCount)
}

func TestGrid2D_InteriorCellHasNoSentinelNeighbours(t *testing.T) {
	g, err := builder.BuildGrid(builder.Grid2D(3, 3))
	assert.NoError(t, err)

	// cell (1,1) is id 4 in a 3x3 row-major grid and has all 4 neighbours.
	neigh, err := g.Neighbours(core.CellID(4))
	assert.NoError(t, err)
	for _, n := range neigh {
		assert.False(t, g.IsSentinel(n))
	}
}

func TestGrid2D_PayloadFnInvokedPerCell(t *testing.T) {
	type coord struct{ r, c int }
	g, err := builder.BuildGrid(builder.Grid2D(2, 2), builder.WithPayloadFn(func(r, c int) interface{} {
		return coord{r, c}
	}))
	assert.NoError(t, err)

	p, err := g.Payload(core.CellID(0))
	assert.NoError(t, err)
	assert.Equal(t, coord{0, 0}, p)

	p, err = g.Payload(core.CellID(3))
	assert.NoError(t, err)
	assert.Equal(t, coord{1, 1}, p)
}
