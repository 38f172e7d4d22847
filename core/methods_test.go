package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfcgraph/core"
)

func TestAddCell_IssuesSequentialIDs(t *testing.T) {
	g := core.NewGrid()
	a := g.AddCell("A")
	b := g.AddCell("B")
	assert.Equal(t, core.CellID(0), a)
	assert.Equal(t, core.CellID(1), b)
	assert.Equal(t, 2, g.CellCount())
}

func TestCreateEdge_SelfLoopRejected(t *testing.T) {
	g := core.NewGrid()
	a := g.AddCell(nil)
	_, err := g.CreateEdge(a, a)
	assert.True(t, errors.Is(err, core.ErrSelfLoop))
}

func TestCreateEdge_DuplicateRealEdgeRejected(t *testing.T) {
	g := core.NewGrid()
	a := g.AddCell(nil)
	b := g.AddCell(nil)
	_, err := g.CreateEdge(a, b)
	assert.NoError(t, err)
	_, err = g.CreateEdge(a, b)
	assert.True(t, errors.Is(err, core.ErrEdgeAlreadyExists))
}

func TestCreateEdge_SentinelEdgesNeverDeduped(t *testing.T) {
	g := core.NewGrid()
	a := g.AddCell(nil)
	_, err := g.CreateEdge(a, core.Sentinel)
	assert.NoError(t, err)
	_, err = g.CreateEdge(a, core.Sentinel)
	assert.NoError(t, err, "sentinel edges must never be deduplicated")
	assert.Equal(t, 2, g.EdgeCount())
}

// TestNeighbours_ReverseOfCreationOrder: creation order E,S,W,N must yield
// Neighbours order N,W,S,E.
func TestNeighbours_ReverseOfCreationOrder(t *testing.T) {
	g := core.NewGrid()
	center := g.AddCell(nil)
	e := g.AddCell("E")
	s := g.AddCell("S")
	w := g.AddCell("W")
	n := g.AddCell("N")

	_, err := g.CreateEdge(center, e)
	assert.NoError(t, err)
	_, err = g.CreateEdge(center, s)
	assert.NoError(t, err)
	_, err = g.CreateEdge(center, w)
	assert.NoError(t, err)
	_, err = g.CreateEdge(center, n)
	assert.NoError(t, err)

	got, err := g.Neighbours(center)
	assert.NoError(t, err)
	assert.Equal(t, []core.CellID{n, w, s, e}, got)
}

func TestNeighbours_IncludesSentinel(t *testing.T) {
	g := core.NewGrid()
	a := g.AddCell(nil)
	_, err := g.CreateEdge(a, core.Sentinel)
	assert.NoError(t, err)

	got, err := g.Neighbours(a)
	assert.NoError(t, err)
	assert.Equal(t, []core.CellID{core.Sentinel}, got)
	assert.True(t, g.IsSentinel(got[0]))
}

func TestFindEdge_SentinelNeverIndexed(t *testing.T) {
	g := core.NewGrid()
	a := g.AddCell(nil)
	_, err := g.CreateEdge(a, core.Sentinel)
	assert.NoError(t, err)

	_, ok := g.FindEdge(a, core.Sentinel)
	assert.False(t, ok)
}

func TestNeighbours_UnknownCell(t *testing.T) {
	g := core.NewGrid()
	_, err := g.Neighbours(core.CellID(42))
	assert.True(t, errors.Is(err, core.ErrCellNotFound))
}

func TestGetNeighbourByDirection_OutOfBounds(t *testing.T) {
	g := core.NewGrid()
	a := g.AddCell(nil)
	_, err := g.GetNeighbourByDirection(a, 0)
	assert.True(t, errors.Is(err, core.ErrIndexOutOfBounds))
}

// TestNeighbourIndexDeterminism covers P7: neighbours(c)[i] is constant
// across the cell's lifetime (no edges are ever removed).
func TestNeighbourIndexDeterminism(t *testing.T) {
	g := core.NewGrid()
	a := g.AddCell(nil)
	b := g.AddCell(nil)
	_, err := g.CreateEdge(a, b)
	assert.NoError(t, err)

	first, err := g.Neighbours(a)
	assert.NoError(t, err)
	// Unrelated mutation elsewhere in the grid must not perturb a's list.
	c := g.AddCell(nil)
	_, err = g.CreateEdge(c, a)
	assert.NoError(t, err)

	second, err := g.Neighbours(a)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidate_DetectsMismatchedDegree(t *testing.T) {
	g := core.NewGrid()
	a := g.AddCell(nil)
	b := g.AddCell(nil)
	_, err := g.CreateEdge(a, b)
	assert.NoError(t, err)
	_, err = g.CreateEdge(b, a)
	assert.NoError(t, err)

	assert.NoError(t, g.Validate(1))
	assert.Error(t, g.Validate(4))
}
