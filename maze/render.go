package maze

import "strings"

const (
	closedTop   = "_ "
	openTop     = "  "
	closedSide  = "'"
	closedFloor = "_"
	open        = " "
)

// Render draws g as a fixed-width text diagram. The first line is the top
// boundary; every following line shows one row with its west walls and south
// walls, plus the east wall of the last column when present.
func Render(g *Grid) string {
	var output strings.Builder

	// Top boundary
	output.WriteString(open)
	for col := 0; col < g.Width(); col++ {
		if mustCell(g, 0, col).IsWallPresent(North) {
			output.WriteString(closedTop)
		} else {
			output.WriteString(openTop)
		}
	}
	output.WriteString("\n")

	for row := 0; row < g.Length(); row++ {
		for col := 0; col < g.Width(); col++ {
			cell := mustCell(g, row, col)
			output.WriteString(glyph(cell.IsWallPresent(West), closedSide))
			output.WriteString(glyph(cell.IsWallPresent(South), closedFloor))
		}
		if mustCell(g, row, g.Width()-1).IsWallPresent(East) {
			output.WriteString(open + closedSide)
		}
		output.WriteString("\n")
	}

	return output.String()
}

func glyph(wall bool, closed string) string {
	if wall {
		return closed
	}
	return open
}

// mustCell is only called with coordinates already checked against the grid
// dimensions.
func mustCell(g *Grid, row, col int) *Cell {
	cell, err := g.CellAt(row, col)
	if err != nil {
		panic(err)
	}
	return cell
}
