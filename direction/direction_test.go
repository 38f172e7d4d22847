package direction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfcgraph/direction"
)

func TestOrthogonal_IndexMatchesSpecExample(t *testing.T) {
	assert.Equal(t, 3, direction.East.Index())
	assert.Equal(t, 2, direction.South.Index())
	assert.Equal(t, 1, direction.West.Index())
	assert.Equal(t, 0, direction.North.Index())
}

func TestOrthogonal_Opposites(t *testing.T) {
	opp, ok := direction.East.Opposite()
	assert.True(t, ok)
	assert.Equal(t, direction.West, opp)

	opp, ok = direction.North.Opposite()
	assert.True(t, ok)
	assert.Equal(t, direction.South, opp)
}

func TestOrthogonal_AllIsCanonicalCreationOrder(t *testing.T) {
	all := direction.Orthogonal.All()
	assert.Equal(t, 4, direction.Orthogonal.Len())
	assert.Equal(t, []direction.Direction{direction.East, direction.South, direction.West, direction.North}, all)
}
