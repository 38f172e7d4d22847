package tile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfcgraph/direction"
	"github.com/katalvlaran/wfcgraph/tile"
)

func edges(vals ...tile.EdgeLabel) []tile.EdgeLabel { return vals }

func TestAdd_RejectsBadShapeAndWeight(t *testing.T) {
	cat := tile.New(direction.Orthogonal, tile.Equality)
	_, err := cat.Add(edges("x", "x"), 1)
	assert.True(t, errors.Is(err, tile.ErrBadEdgeCount))

	_, err = cat.Add(edges("x", "x", "x", "x"), 0)
	assert.True(t, errors.Is(err, tile.ErrNonPositiveWeight))
}

func TestAdd_IssuesSequentialIDs(t *testing.T) {
	cat := tile.New(direction.Orthogonal, tile.Equality)
	id0, err := cat.Add(edges("a", "a", "a", "a"), 1)
	assert.NoError(t, err)
	id1, err := cat.Add(edges("b", "b", "b", "b"), 1)
	assert.NoError(t, err)
	assert.Equal(t, tile.ID(0), id0)
	assert.Equal(t, tile.ID(1), id1)
	assert.Equal(t, []tile.ID{0, 1}, cat.IDs())
}

// TestJudge_SelfCompatible: a tile whose opposite edges carry equal labels
// must be judged compatible with a neighbour-candidate set containing only
// itself on every side.
func TestJudge_SelfCompatible(t *testing.T) {
	cat := tile.New(direction.Orthogonal, tile.Equality)
	// order is direction.Index(): North, West, South, East
	id, err := cat.Add(edges("0", "1", "0", "1"), 10)
	assert.NoError(t, err)

	neighbourCandidates := make([][]tile.ID, direction.Orthogonal.Len())
	for i := range neighbourCandidates {
		neighbourCandidates[i] = []tile.ID{id}
	}
	ok, err := cat.Judge(neighbourCandidates, id)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestJudge_EmptyNeighbourSetsSkipped(t *testing.T) {
	cat := tile.New(direction.Orthogonal, tile.Equality)
	id, err := cat.Add(edges("a", "a", "a", "a"), 1)
	assert.NoError(t, err)

	neighbourCandidates := make([][]tile.ID, direction.Orthogonal.Len())
	ok, err := cat.Judge(neighbourCandidates, id)
	assert.NoError(t, err)
	assert.True(t, ok, "all-empty neighbour sets (sentinel-only) must judge true")
}

func TestJudge_Incompatible(t *testing.T) {
	cat := tile.New(direction.Orthogonal, tile.Equality)
	a, err := cat.Add(edges("a", "a", "a", "a"), 1)
	assert.NoError(t, err)
	b, err := cat.Add(edges("b", "b", "b", "b"), 1)
	assert.NoError(t, err)

	neighbourCandidates := make([][]tile.ID, direction.Orthogonal.Len())
	for i := range neighbourCandidates {
		neighbourCandidates[i] = []tile.ID{b}
	}
	ok, err := cat.Judge(neighbourCandidates, a)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestJudge_BadShape(t *testing.T) {
	cat := tile.New(direction.Orthogonal, tile.Equality)
	id, err := cat.Add(edges("a", "a", "a", "a"), 1)
	assert.NoError(t, err)
	_, err = cat.Judge(make([][]tile.ID, 2), id)
	assert.True(t, errors.Is(err, tile.ErrBadNeighbourShape))
}
