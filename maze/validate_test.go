package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("accepts a perfect maze", func(t *testing.T) {
		assert.NoError(t, Validate(handMaze(t)))
	})

	t.Run("detects one sided walls", func(t *testing.T) {
		g := handMaze(t)
		g.cellAt(Position{0, 1}).knockDown(South)

		assert.ErrorIs(t, Validate(g), ErrAsymmetricWall)
	})

	t.Run("detects cycles", func(t *testing.T) {
		g := handMaze(t)
		g.openWall(Move{From: Position{0, 1}, To: Position{1, 1}, Direction: South})

		assert.ErrorIs(t, Validate(g), ErrCycle)
	})

	t.Run("detects isolated cells", func(t *testing.T) {
		g, err := New(2, 2)
		require.NoError(t, err)
		g.openWall(Move{From: Position{0, 0}, To: Position{0, 1}, Direction: East})
		g.openWall(Move{From: Position{0, 0}, To: Position{1, 0}, Direction: South})

		assert.ErrorIs(t, Validate(g), ErrDisconnected)
	})

	t.Run("requires two openings", func(t *testing.T) {
		g := handMaze(t)
		g.reset()
		g.openWall(Move{From: Position{0, 0}, To: Position{0, 1}, Direction: East})
		g.openWall(Move{From: Position{0, 0}, To: Position{1, 0}, Direction: South})
		g.openWall(Move{From: Position{1, 0}, To: Position{1, 1}, Direction: East})

		assert.ErrorIs(t, Validate(g), ErrOpenings)

		g.openBorder(Position{0, 0}, North)
		g.openBorder(Position{1, 1}, South)
		g.openBorder(Position{1, 1}, East)
		assert.ErrorIs(t, Validate(g), ErrOpenings)
	})

	t.Run("requires opposite edges", func(t *testing.T) {
		g := handMaze(t)
		g.cellAt(Position{1, 0}).walls[South] = true
		g.openBorder(Position{1, 1}, East)

		assert.ErrorIs(t, Validate(g), ErrOpenings)
	})

	t.Run("rejects nil grid", func(t *testing.T) {
		assert.ErrorIs(t, Validate(nil), ErrNilGrid)
	})
}
