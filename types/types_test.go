package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{
		tokens := []string{"Periodic", "WALL", " reflective ", "Extrapolated", "outflow"}
		flags := []BoundaryType{BC_Periodic, BC_Reflective, BC_Reflective, BC_Extrapolated, BC_Extrapolated}
		for i, token := range tokens {
			bt, err := ParseBoundaryType(token)
			assert.NoError(t, err)
			assert.Equal(t, flags[i], bt)
			assert.True(t, bt.IsValid())
		}
	}
	{ // Never defaults to a known type
		bt, err := ParseBoundaryType("farfield")
		assert.Error(t, err)
		assert.Equal(t, BC_None, bt)
		assert.False(t, bt.IsValid())
		assert.False(t, BoundaryType(17).IsValid())
		assert.Equal(t, "BoundaryType(17)", BoundaryType(17).String())
	}
	{
		for _, e := range Edges {
			assert.Equal(t, e, e.Opposite().Opposite())
			assert.Equal(t, e.IsX(), e.Opposite().IsX())
			pe, err := ParseEdge(e.String())
			assert.NoError(t, err)
			assert.Equal(t, e, pe)
		}
		assert.Equal(t, East, West.Opposite())
		assert.Equal(t, North, South.Opposite())
		_, err := ParseEdge("up")
		assert.Error(t, err)
	}
}
