package world

import (
	"fmt"
	"math"
)

// Vector2Int is an integer grid coordinate. X grows to the east, Y to the south.
type Vector2Int struct {
	X int
	Y int
}

// Vec returns the vector (x, y)
func Vec(x, y int) Vector2Int {
	return Vector2Int{X: x, Y: y}
}

// Add returns v + o
func (v Vector2Int) Add(o Vector2Int) Vector2Int {
	return Vector2Int{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2Int) Sub(o Vector2Int) Vector2Int {
	return Vector2Int{X: v.X - o.X, Y: v.Y - o.Y}
}

// Distance returns the Euclidean distance between two coordinates
func Distance(a, b Vector2Int) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// IsAdjacent reports whether a and b differ by exactly one step along one axis
func IsAdjacent(a, b Vector2Int) bool {
	d := a.Sub(b)
	return abs(d.X)+abs(d.Y) == 1
}

func (v Vector2Int) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
