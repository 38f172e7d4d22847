package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfcgraph/builder"
	"github.com/katalvlaran/wfcgraph/core"
)

func TestPath_RejectsTooSmall(t *testing.T) {
	_, err := builder.BuildGrid(builder.Path(0))
	assert.ErrorIs(t, err, builder.ErrTooFewCells)
}

func TestPath_EndsHaveSentinelEastWest(t *testing.T) {
	g, err := builder.BuildGrid(builder.Path(3))
	assert.NoError(t, err)
	assert.Equal(t, 3, g.CellCount())

	first, err := g.Neighbours(core.CellID(0))
	assert.NoError(t, err)
	// Neighbours order is North, West, South, East (reverse of East,South,West,North).
	assert.True(t, g.IsSentinel(first[1])) // West
	assert.False(t, g.IsSentinel(first[3])) // East

	last, err := g.Neighbours(core.CellID(2))
	assert.NoError(t, err)
	assert.False(t, g.IsSentinel(last[1])) // West
	assert.True(t, g.IsSentinel(last[3]))  // East
}

func TestPath_NorthSouthAlwaysSentinel(t *testing.T) {
	g, err := builder.BuildGrid(builder.Path(3))
	assert.NoError(t, err)

	for i := 0; i < 3; i++ {
		neigh, err := g.Neighbours(core.CellID(i))
		assert.NoError(t, err)
		assert.True(t, g.IsSentinel(neigh[0])) // North
		assert.True(t, g.IsSentinel(neigh[2])) // South
	}
}
