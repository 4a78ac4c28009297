package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handMaze builds a 2x2 maze whose only closed interior wall sits between
// (0,1) and (1,1), entered from the north of (0,1) and left from the south
// of (1,0).
func handMaze(t *testing.T) *Grid {
	t.Helper()

	g, err := New(2, 2)
	require.NoError(t, err)

	g.openWall(Move{From: Position{0, 0}, To: Position{0, 1}, Direction: East})
	g.openWall(Move{From: Position{0, 0}, To: Position{1, 0}, Direction: South})
	g.openWall(Move{From: Position{1, 0}, To: Position{1, 1}, Direction: East})
	g.start = g.openBorder(Position{0, 1}, North)
	g.end = g.openBorder(Position{1, 0}, South)
	return g
}

func TestRender(t *testing.T) {
	t.Run("fully walled grid", func(t *testing.T) {
		g, err := New(2, 3)
		require.NoError(t, err)

		want := " _ _ _ \n" +
			"'_'_'_ '\n" +
			"'_'_'_ '\n"
		assert.Equal(t, want, Render(g))
	})

	t.Run("openings render differently from walls", func(t *testing.T) {
		g := handMaze(t)

		want := " _   \n" +
			"'  _ '\n" +
			"'  _ '\n"
		assert.Equal(t, want, Render(g))
		assert.Equal(t, want, g.String())
	})

	t.Run("open east border drops the closing glyph", func(t *testing.T) {
		g, err := New(1, 2)
		require.NoError(t, err)
		g.end = g.openBorder(Position{0, 1}, East)

		lines := strings.Split(strings.TrimSuffix(Render(g), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "'_'_", lines[1])
	})

	t.Run("one line per row plus header", func(t *testing.T) {
		g, err := New(5, 4)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(Render(g), "\n"), "\n")
		assert.Len(t, lines, 6)
	})
}
