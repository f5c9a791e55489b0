package world

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a coordinate lies outside a grid
var ErrOutOfRange = errors.New("position out of range")

// Reader is read-only access to a grid. Searches take a Reader so they cannot
// mutate the cells they are costing.
type Reader[T any] interface {
	Size() Vector2Int
	InBounds(pos Vector2Int) bool
	Get(pos Vector2Int) (T, error)
}

// Grid is a fixed-size 2D array of T addressed by Vector2Int.
// Every coordinate in [0,width)×[0,height) holds exactly one value.
type Grid[T any] struct {
	data []T
	size Vector2Int
}

// NewGrid creates a grid of the given size with every cell set to fill
func NewGrid[T any](size Vector2Int, fill T) *Grid[T] {
	if size.X <= 0 || size.Y <= 0 {
		panic("Grid dimensions must be positive")
	}

	g := &Grid[T]{
		data: make([]T, size.X*size.Y),
		size: size,
	}
	for i := range g.data {
		g.data[i] = fill
	}
	return g
}

// Size returns the grid dimensions
func (g *Grid[T]) Size() Vector2Int {
	return g.size
}

// Width returns the number of columns in the grid
func (g *Grid[T]) Width() int {
	return g.size.X
}

// Height returns the number of rows in the grid
func (g *Grid[T]) Height() int {
	return g.size.Y
}

// InBounds checks if a position is within grid bounds
func (g *Grid[T]) InBounds(pos Vector2Int) bool {
	return pos.X >= 0 && pos.X < g.size.X && pos.Y >= 0 && pos.Y < g.size.Y
}

func (g *Grid[T]) index(pos Vector2Int) int {
	return pos.Y*g.size.X + pos.X
}

// Get returns the value at pos, or ErrOutOfRange
func (g *Grid[T]) Get(pos Vector2Int) (T, error) {
	if !g.InBounds(pos) {
		var zero T
		return zero, fmt.Errorf("get %v on %dx%d grid: %w", pos, g.size.X, g.size.Y, ErrOutOfRange)
	}
	return g.data[g.index(pos)], nil
}

// Set stores value at pos, or returns ErrOutOfRange and leaves the grid untouched
func (g *Grid[T]) Set(pos Vector2Int, value T) error {
	if !g.InBounds(pos) {
		return fmt.Errorf("set %v on %dx%d grid: %w", pos, g.size.X, g.size.Y, ErrOutOfRange)
	}
	g.data[g.index(pos)] = value
	return nil
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid[T]) ForEachCell(fn func(pos Vector2Int, value T)) {
	for y := 0; y < g.size.Y; y++ {
		for x := 0; x < g.size.X; x++ {
			fn(Vector2Int{X: x, Y: y}, g.data[y*g.size.X+x])
		}
	}
}

// Clone returns an independent copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{
		data: make([]T, len(g.data)),
		size: g.size,
	}
	copy(c.data, g.data)
	return c
}

// CountCells returns how many cells of a CellType grid hold the given type
func CountCells(g Reader[CellType], want CellType) int {
	n := 0
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if c, err := g.Get(Vector2Int{X: x, Y: y}); err == nil && c == want {
				n++
			}
		}
	}
	return n
}
