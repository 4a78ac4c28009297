package maze

import "fmt"

// Position represents the position of a cell in the maze grid.
type Position struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Step returns the position one step away in direction d.
func (p Position) Step(d Direction) Position {
	delta := d.Delta()
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell represents a single cell in a maze grid.
// Walls are indexed by Direction; true means the side cannot be passed.
type Cell struct {
	pos     Position
	walls   [4]bool
	visited bool
}

// NewCell creates a cell at the given coordinates with all four walls present.
func NewCell(row, col int) (*Cell, error) {
	if row < 0 || col < 0 {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, row, col)
	}
	c := &Cell{pos: Position{Row: row, Col: col}}
	c.reset()
	return c, nil
}

// Position returns the coordinates of the cell.
func (c *Cell) Position() Position {
	return c.pos
}

// Row returns the row index of the cell.
func (c *Cell) Row() int {
	return c.pos.Row
}

// Col returns the column index of the cell.
func (c *Cell) Col() int {
	return c.pos.Col
}

// IsWallPresent reports whether the side of the cell facing d is walled.
func (c *Cell) IsWallPresent(d Direction) bool {
	return c.walls[d]
}

func (c *Cell) knockDown(d Direction) {
	c.walls[d] = false
}

func (c *Cell) reset() {
	c.walls = [4]bool{true, true, true, true}
	c.visited = false
}
