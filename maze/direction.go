package maze

// Direction is one of the four compass directions a wall can face.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{North, South, East, West}

var (
	directionNames = [...]string{North: "North", South: "South", East: "East", West: "West"}
	opposites      = [...]Direction{North: South, South: North, East: West, West: East}
	deltas         = [...]Position{
		North: {Row: -1, Col: 0},
		South: {Row: 1, Col: 0},
		East:  {Row: 0, Col: 1},
		West:  {Row: 0, Col: -1},
	}
)

// neighborOrder is the fixed order in which carving inspects candidates.
var neighborOrder = [...]Direction{South, North, East, West}

// Opposite returns the direction facing back toward d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Delta returns the coordinate offset of one step in direction d.
func (d Direction) Delta() Position {
	return deltas[d]
}

func (d Direction) String() string {
	if d < North || d > West {
		return "Unknown"
	}
	return directionNames[d]
}

// DirectionBetween returns the direction of the step from one position to an
// orthogonally adjacent one. The boolean is false when the positions are not
// adjacent.
func DirectionBetween(from, to Position) (Direction, bool) {
	delta := Position{Row: to.Row - from.Row, Col: to.Col - from.Col}
	for _, d := range Directions {
		if deltas[d] == delta {
			return d, true
		}
	}
	return 0, false
}
