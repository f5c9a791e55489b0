package generator

import (
	"fmt"

	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/world"
)

// Room is an accepted rectangular room. Rooms are never moved or resized.
type Room struct {
	Bounds world.RectInt
}

// NewRoom creates a room at location with the given size
func NewRoom(location, size world.Vector2Int) *Room {
	return &Room{Bounds: world.NewRect(location, size)}
}

// Buffer returns the room's rectangle grown by one cell on each side.
// It is only used for the placement acceptance test.
func (r *Room) Buffer() world.RectInt {
	return r.Bounds.Expand(1)
}

// Intersects reports whether the two rooms overlap
func (r *Room) Intersects(o *Room) bool {
	return r.Bounds.Intersects(o.Bounds)
}

// Center returns the exact center of the room, used as its triangulation vertex
func (r *Room) Center() geom.Vector2 {
	x, y := r.Bounds.Center()
	return geom.Vector2{X: x, Y: y}
}

// CenterCell returns the grid cell hallways start and end at
func (r *Room) CenterCell() world.Vector2Int {
	return r.Bounds.CenterCell()
}

func (r *Room) String() string {
	return fmt.Sprintf("room@%v size %dx%d", r.Bounds.Position, r.Bounds.Size.X, r.Bounds.Size.Y)
}
