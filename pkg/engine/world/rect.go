package world

// RectInt is an axis-aligned rectangle covering the half-open cell range
// [Position, Position+Size) on each axis.
type RectInt struct {
	Position Vector2Int
	Size     Vector2Int
}

// NewRect creates a rectangle from its corner and size
func NewRect(position, size Vector2Int) RectInt {
	return RectInt{Position: position, Size: size}
}

// Min returns the inclusive lower corner
func (r RectInt) Min() Vector2Int {
	return r.Position
}

// Max returns the exclusive upper corner
func (r RectInt) Max() Vector2Int {
	return r.Position.Add(r.Size)
}

// Intersects reports whether two rectangles overlap. Rectangles that only share
// a boundary line do not intersect.
func (r RectInt) Intersects(o RectInt) bool {
	rMax, oMax := r.Max(), o.Max()
	return !(r.Position.X >= oMax.X || rMax.X <= o.Position.X ||
		r.Position.Y >= oMax.Y || rMax.Y <= o.Position.Y)
}

// Contains reports whether pos is one of the rectangle's cells
func (r RectInt) Contains(pos Vector2Int) bool {
	rMax := r.Max()
	return pos.X >= r.Position.X && pos.X < rMax.X && pos.Y >= r.Position.Y && pos.Y < rMax.Y
}

// Expand returns the rectangle grown by n cells on every side
func (r RectInt) Expand(n int) RectInt {
	return RectInt{
		Position: Vector2Int{X: r.Position.X - n, Y: r.Position.Y - n},
		Size:     Vector2Int{X: r.Size.X + 2*n, Y: r.Size.Y + 2*n},
	}
}

// Within reports whether the rectangle lies entirely inside [0,size.X)×[0,size.Y)
func (r RectInt) Within(size Vector2Int) bool {
	rMax := r.Max()
	return r.Position.X >= 0 && r.Position.Y >= 0 && rMax.X <= size.X && rMax.Y <= size.Y
}

// Center returns the exact center of the rectangle
func (r RectInt) Center() (x, y float64) {
	return float64(r.Position.X) + float64(r.Size.X)/2, float64(r.Position.Y) + float64(r.Size.Y)/2
}

// CenterCell returns the center truncated toward zero to a grid coordinate
func (r RectInt) CenterCell() Vector2Int {
	x, y := r.Center()
	return Vector2Int{X: int(x), Y: int(y)}
}

// Area returns the number of cells covered
func (r RectInt) Area() int {
	return r.Size.X * r.Size.Y
}

// ForEachPosition calls fn for every cell of the rectangle in row-major order
func (r RectInt) ForEachPosition(fn func(pos Vector2Int)) {
	rMax := r.Max()
	for y := r.Position.Y; y < rMax.Y; y++ {
		for x := r.Position.X; x < rMax.X; x++ {
			fn(Vector2Int{X: x, Y: y})
		}
	}
}
