package maze

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/stack"
)

var (
	ErrNilRand = errors.New("random source is required")
	ErrNilGrid = errors.New("grid is required")
)

// Rand is the source of randomness used during generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniformly distributed integer in [0, n).
	Intn(n int) int
}

// Generator carves perfect mazes using a randomized depth-first traversal.
type Generator struct {
	rng    Rand
	logger logrus.FieldLogger
}

// NewGenerator creates a generator drawing from rng. A nil logger discards
// all output.
func NewGenerator(rng Rand, logger logrus.FieldLogger) (*Generator, error) {
	if rng == nil {
		return nil, ErrNilRand
	}

	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return &Generator{
		rng:    rng,
		logger: logger,
	}, nil
}

// Generate turns g into a freshly generated perfect maze with rng as the
// only source of randomness.
func Generate(g *Grid, rng Rand) error {
	gen, err := NewGenerator(rng, nil)
	if err != nil {
		return err
	}
	return gen.Generate(g)
}

// Generate rebuilds every wall of g, carves a spanning tree of passages and
// opens an entrance and an exit on opposite edges.
func (gen *Generator) Generate(g *Grid) error {
	if g == nil {
		return ErrNilGrid
	}

	log := gen.logger.WithFields(logrus.Fields{
		"maze_id": g.ID(),
		"length":  g.Length(),
		"width":   g.Width(),
	})

	g.reset()
	carves, backtracks := gen.carve(g)
	gen.pickStartEnd(g)

	log.WithFields(logrus.Fields{
		"carves":     carves,
		"backtracks": backtracks,
		"start":      g.start.String(),
		"end":        g.end.String(),
	}).Debug("maze generated")

	return nil
}

// carve runs the depth-first traversal and returns how many walls were
// removed and how many times the traversal backtracked.
func (gen *Generator) carve(g *Grid) (carves, backtracks int) {
	current := g.cellAt(Position{Row: gen.rng.Intn(g.length), Col: gen.rng.Intn(g.width)})
	current.visited = true
	unvisited := g.length*g.width - 1

	// Every visited cell except the first is pushed once before the
	// traversal leaves it, so the stack is never empty while unvisited > 0.
	trail := stack.New[*Cell]()

	for unvisited > 0 {
		candidates := g.availableNeighbors(current.pos)
		if len(candidates) == 0 {
			current = trail.Pop()
			backtracks++
			continue
		}

		next := candidates[gen.rng.Intn(len(candidates))]
		d, _ := DirectionBetween(current.pos, next.pos)
		g.openWall(Move{From: current.pos, To: next.pos, Direction: d})

		trail.Push(current)
		next.visited = true
		unvisited--
		current = next
		carves++
	}

	return carves, backtracks
}

// availableNeighbors returns the in-bound, unvisited neighbours of pos in
// South, North, East, West order.
func (g *Grid) availableNeighbors(pos Position) []*Cell {
	result := make([]*Cell, 0, len(neighborOrder))
	for _, d := range neighborOrder {
		next := pos.Step(d)
		if !g.InBound(next.Row, next.Col) {
			continue
		}
		if cell := g.cellAt(next); !cell.visited {
			result = append(result, cell)
		}
	}
	return result
}

// pickStartEnd opens one boundary wall on each of two opposite edges. It
// relies on the grid being fully connected.
func (gen *Generator) pickStartEnd(g *Grid) {
	if gen.rng.Intn(2) == 1 {
		g.start = g.openBorder(Position{Row: 0, Col: gen.rng.Intn(g.width)}, North)
		g.end = g.openBorder(Position{Row: g.length - 1, Col: gen.rng.Intn(g.width)}, South)
		return
	}

	g.start = g.openBorder(Position{Row: gen.rng.Intn(g.length), Col: 0}, West)
	g.end = g.openBorder(Position{Row: gen.rng.Intn(g.length), Col: g.width - 1}, East)
}
