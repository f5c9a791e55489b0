// Package world provides the 2D grid primitives the dungeon generator works on:
// integer coordinates, axis-aligned rectangles, cell types and a bounds-checked grid.
package world

// CellType classifies a single grid cell.
type CellType int

// Cell type constants. Empty is the zero value so a fresh grid is all Empty.
const (
	Empty CellType = iota
	Room
	Hallway
)

// AllCellTypes returns every cell type in declaration order
func AllCellTypes() []CellType {
	return []CellType{Empty, Room, Hallway}
}

// String returns the string representation of a cell type
func (c CellType) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Room:
		return "Room"
	case Hallway:
		return "Hallway"
	default:
		return "Unknown"
	}
}

// IsValid returns true if c is one of the declared cell types
func (c CellType) IsValid() bool {
	return c >= Empty && c <= Hallway
}

// IsWalkable returns true for cells that are part of the carved dungeon
func (c CellType) IsWalkable() bool {
	return c == Room || c == Hallway
}
