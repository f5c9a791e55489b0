// Package geom holds the planar geometry used to connect rooms: points, vertices
// carrying an opaque payload, unordered edges and Delaunay triangulation.
package geom

import "math"

// Vector2 is a point in the plane
type Vector2 struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vector2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// less orders points lexicographically by X then Y
func less(a, b Vector2) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
