package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration.
// The order is fixed; searches that walk neighbours rely on it for reproducibility.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the coordinate offset for one step in this direction
func (d Direction) Delta() Vector2Int {
	switch d {
	case North:
		return Vector2Int{X: 0, Y: -1}
	case East:
		return Vector2Int{X: 1, Y: 0}
	case South:
		return Vector2Int{X: 0, Y: 1}
	case West:
		return Vector2Int{X: -1, Y: 0}
	default:
		return Vector2Int{}
	}
}

// Neighbor returns the coordinate one step from v in direction d
func (v Vector2Int) Neighbor(d Direction) Vector2Int {
	return v.Add(d.Delta())
}
