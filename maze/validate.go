package maze

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrAsymmetricWall = errors.New("wall flags of adjacent cells disagree")
	ErrCycle          = errors.New("maze contains a cycle")
	ErrDisconnected   = errors.New("maze is not fully connected")
	ErrOpenings       = errors.New("maze must have one opening on each of two opposite edges")
)

// Validate checks that g is a generated perfect maze: wall flags agree
// between neighbours, the passages form a spanning tree and exactly two
// boundary walls are open on opposite edges.
func Validate(g *Grid) error {
	if g == nil {
		return ErrNilGrid
	}

	sets := make([][]*disjoint.Element, g.length)
	for row := range sets {
		sets[row] = make([]*disjoint.Element, g.width)
		for col := range sets[row] {
			sets[row][col] = disjoint.NewElement()
		}
	}

	passages := 0
	for row := 0; row < g.length; row++ {
		for col := 0; col < g.width; col++ {
			from := Position{Row: row, Col: col}
			// East and South cover every interior pair exactly once.
			for _, d := range [...]Direction{East, South} {
				to := from.Step(d)
				if !g.InBound(to.Row, to.Col) {
					continue
				}

				wall := g.cellAt(from).IsWallPresent(d)
				if wall != g.cellAt(to).IsWallPresent(d.Opposite()) {
					return fmt.Errorf("%w: between %s and %s", ErrAsymmetricWall, from, to)
				}
				if wall {
					continue
				}

				a, b := sets[from.Row][from.Col], sets[to.Row][to.Col]
				if a.Find() == b.Find() {
					return fmt.Errorf("%w: passage %s-%s closes a loop", ErrCycle, from, to)
				}
				disjoint.Union(a, b)
				passages++
			}
		}
	}

	if want := g.length*g.width - 1; passages != want {
		return fmt.Errorf("%w: %d passages, want %d", ErrDisconnected, passages, want)
	}

	return validateOpenings(g)
}

func validateOpenings(g *Grid) error {
	sides := mapset.New[Direction]()
	count := 0
	for row := 0; row < g.length; row++ {
		for col := 0; col < g.width; col++ {
			pos := Position{Row: row, Col: col}
			for _, d := range Directions {
				if g.IsBorder(pos, d) && !g.cellAt(pos).IsWallPresent(d) {
					sides.Put(d)
					count++
				}
			}
		}
	}

	if count != 2 || sides.Size() != 2 {
		return fmt.Errorf("%w: found %d openings on %d sides", ErrOpenings, count, sides.Size())
	}
	if !(sides.Has(North) && sides.Has(South)) && !(sides.Has(West) && sides.Has(East)) {
		return fmt.Errorf("%w: openings are not on opposite edges", ErrOpenings)
	}
	return nil
}
