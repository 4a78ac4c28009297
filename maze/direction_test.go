package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	t.Run("Opposite", func(t *testing.T) {
		assert.Equal(t, South, North.Opposite())
		assert.Equal(t, North, South.Opposite())
		assert.Equal(t, West, East.Opposite())
		assert.Equal(t, East, West.Opposite())
		for _, d := range Directions {
			assert.Equal(t, d, d.Opposite().Opposite())
		}
	})

	t.Run("Delta", func(t *testing.T) {
		assert.Equal(t, Position{Row: -1}, North.Delta())
		assert.Equal(t, Position{Row: 1}, South.Delta())
		assert.Equal(t, Position{Col: 1}, East.Delta())
		assert.Equal(t, Position{Col: -1}, West.Delta())
	})

	t.Run("DirectionBetween adjacent positions", func(t *testing.T) {
		from := Position{Row: 3, Col: 3}
		for _, d := range Directions {
			got, ok := DirectionBetween(from, from.Step(d))
			assert.True(t, ok)
			assert.Equal(t, d, got)

			back, ok := DirectionBetween(from.Step(d), from)
			assert.True(t, ok)
			assert.Equal(t, d.Opposite(), back)
		}
	})

	t.Run("DirectionBetween non adjacent positions", func(t *testing.T) {
		from := Position{Row: 3, Col: 3}
		for _, to := range []Position{{3, 3}, {4, 4}, {1, 3}, {3, 5}} {
			_, ok := DirectionBetween(from, to)
			assert.False(t, ok, "to %s", to)
		}
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "North", North.String())
		assert.Equal(t, "West", West.String())
		assert.Equal(t, "Unknown", Direction(9).String())
	})
}
