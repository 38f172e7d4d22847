package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfcgraph/builder"
	"github.com/katalvlaran/wfcgraph/core"
)

func TestTorus_RejectsTooSmall(t *testing.T) {
	_, err := builder.BuildGrid(builder.Torus(1, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewCells)
}

func TestTorus_NoSentinelNeighboursAnywhere(t *testing.T) {
	g, err := builder.BuildGrid(builder.Torus(3, 3))
	assert.NoError(t, err)

	for i := 0; i < g.CellCount(); i++ {
		neigh, err := g.Neighbours(core.CellID(i))
		assert.NoError(t, err)
		for _, n := range neigh {
			assert.False(t, g.IsSentinel(n))
		}
	}
}

func TestTorus_WrapsAroundEdges(t *testing.T) {
	g, err := builder.BuildGrid(builder.Torus(3, 3))
	assert.NoError(t, err)

	// cell (0,0) is id 0; its West neighbour wraps to (0,2)=id2, North wraps
	// to (2,0)=id6.
	neigh, err := g.Neighbours(core.CellID(0))
	assert.NoError(t, err)
	assert.Equal(t, core.CellID(2), neigh[1]) // West
	assert.Equal(t, core.CellID(6), neigh[0]) // North
}
