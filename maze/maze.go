/*
Package maze generates and stores perfect mazes.

A Grid is a rectangular array of Cells, each carrying four wall flags. A
Generator carves passages with a randomized depth-first traversal so that
exactly one path joins any two cells, then opens an entrance and an exit on
opposite edges of the grid. Render produces a fixed-width text diagram and
Validate proves the perfect-maze property of a generated grid.
*/
package maze

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidDimension  = errors.New("maze dimensions must be strictly positive")
	ErrInvalidCoordinate = errors.New("invalid cell coordinate")
	ErrOutOfBounds       = errors.New("cell position out of bounds")
)

// Move is a step between two adjacent cells.
type Move struct {
	From      Position
	To        Position
	Direction Direction
}

// Opening is a border wall cleared to serve as an entrance or exit.
type Opening struct {
	Position Position
	Side     Direction
}

func (o Opening) String() string {
	return fmt.Sprintf("%s side of %s", o.Side, o.Position)
}

// Grid represents a rectangular maze of length rows by width columns.
type Grid struct {
	id     uuid.UUID
	length int
	width  int
	cells  [][]*Cell
	start  *Opening
	end    *Opening
}

// New creates a grid of the given dimensions with every wall present.
func New(length, width int) (*Grid, error) {
	if length <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, length, width)
	}

	cells := make([][]*Cell, length)
	for row := range cells {
		cells[row] = make([]*Cell, width)
		for col := range cells[row] {
			cell, err := NewCell(row, col)
			if err != nil {
				return nil, err
			}
			cells[row][col] = cell
		}
	}

	return &Grid{
		id:     uuid.New(),
		length: length,
		width:  width,
		cells:  cells,
	}, nil
}

// ID returns the identifier of the grid.
func (g *Grid) ID() uuid.UUID {
	return g.id
}

// Length returns the number of rows.
func (g *Grid) Length() int {
	return g.length
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// InBound reports whether the coordinates lie inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.length && col >= 0 && col < g.width
}

// CellAt returns the cell at the given coordinates.
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	if !g.InBound(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.length, g.width)
	}
	return g.cells[row][col], nil
}

func (g *Grid) cellAt(pos Position) *Cell {
	return g.cells[pos.Row][pos.Col]
}

// IsBorder reports whether the side d of the cell at pos lies on the outer
// boundary of the grid.
func (g *Grid) IsBorder(pos Position, d Direction) bool {
	switch d {
	case North:
		return pos.Row == 0
	case South:
		return pos.Row == g.length-1
	case West:
		return pos.Col == 0
	case East:
		return pos.Col == g.width-1
	default:
		return false
	}
}

// IsOpen reports whether a passage joins two adjacent cells.
func (g *Grid) IsOpen(from, to Position) bool {
	if !g.InBound(from.Row, from.Col) || !g.InBound(to.Row, to.Col) {
		return false
	}
	d, ok := DirectionBetween(from, to)
	if !ok {
		return false
	}
	return !g.cellAt(from).IsWallPresent(d) && !g.cellAt(to).IsWallPresent(d.Opposite())
}

// Start returns the entrance of a generated maze.
func (g *Grid) Start() (Opening, bool) {
	if g.start == nil {
		return Opening{}, false
	}
	return *g.start, true
}

// End returns the exit of a generated maze.
func (g *Grid) End() (Opening, bool) {
	if g.end == nil {
		return Opening{}, false
	}
	return *g.end, true
}

// openWall removes the wall between two adjacent cells on both sides.
func (g *Grid) openWall(move Move) {
	g.cellAt(move.From).knockDown(move.Direction)
	g.cellAt(move.To).knockDown(move.Direction.Opposite())
}

// openBorder clears a boundary wall and returns the resulting opening.
func (g *Grid) openBorder(pos Position, side Direction) *Opening {
	g.cellAt(pos).knockDown(side)
	return &Opening{Position: pos, Side: side}
}

// reset restores every wall and forgets previous openings.
func (g *Grid) reset() {
	for _, row := range g.cells {
		for _, cell := range row {
			cell.reset()
		}
	}
	g.start, g.end = nil, nil
}

func (g *Grid) String() string {
	return Render(g)
}
