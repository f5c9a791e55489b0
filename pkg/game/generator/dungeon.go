package generator

import (
	"fmt"

	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/world"
)

// Vertex is a triangulation vertex carrying the room it stands for
type Vertex = geom.Vertex[*Room]

// Edge connects the centers of two rooms
type Edge = geom.Edge[*Room]

// Stats counts what happened during one generation run
type Stats struct {
	Attempts        int
	Accepted        int
	RejectedOverlap int
	RejectedBounds  int

	TriangulationEdges int
	TreeEdges          int
	ExtraEdges         int

	HallwaysCarved  int
	HallwaysSkipped int
	HallwayCells    int
}

// Dungeon is the output of one generation run. It is fully built before it is
// returned and is not touched by the generator afterwards.
type Dungeon struct {
	Config Config

	// Grid holds the final cell type of every coordinate.
	Grid *world.Grid[world.CellType]
	// Rooms lists accepted rooms in placement order.
	Rooms []*Room
	// Triangulation is every Delaunay edge between room centers.
	Triangulation []Edge
	// Edges is the selected set: spanning tree edges first, then extra edges.
	Edges []Edge
	// Hallways holds the path found for each carved edge.
	Hallways [][]world.Vector2Int

	Stats Stats
}

// Validate checks that the dungeon is internally consistent: rooms inside the
// grid with disjoint buffers, every room cell marked Room, and every hallway
// path cell marked Room or Hallway.
func (d *Dungeon) Validate() error {
	if d.Grid == nil {
		return fmt.Errorf("dungeon has no grid")
	}
	size := d.Grid.Size()

	var cellErr error
	d.Grid.ForEachCell(func(pos world.Vector2Int, c world.CellType) {
		if cellErr == nil && !c.IsValid() {
			cellErr = fmt.Errorf("cell %v has unknown type %d", pos, c)
		}
	})
	if cellErr != nil {
		return cellErr
	}

	for i, r := range d.Rooms {
		if !r.Bounds.Within(size) {
			return fmt.Errorf("%v lies outside the %dx%d grid", r, size.X, size.Y)
		}
		for j, o := range d.Rooms {
			if i != j && r.Buffer().Intersects(o.Bounds) {
				return fmt.Errorf("%v is too close to %v", r, o)
			}
		}

		var err error
		r.Bounds.ForEachPosition(func(pos world.Vector2Int) {
			if err != nil {
				return
			}
			if c, _ := d.Grid.Get(pos); c != world.Room {
				err = fmt.Errorf("cell %v of %v is %v, want Room", pos, r, c)
			}
		})
		if err != nil {
			return err
		}
	}

	for _, path := range d.Hallways {
		for _, pos := range path {
			c, err := d.Grid.Get(pos)
			if err != nil {
				return fmt.Errorf("hallway cell: %w", err)
			}
			if !c.IsWalkable() {
				return fmt.Errorf("hallway cell %v is %v", pos, c)
			}
		}
	}
	return nil
}

// RoomAt returns the room covering pos, or nil
func (d *Dungeon) RoomAt(pos world.Vector2Int) *Room {
	for _, r := range d.Rooms {
		if r.Bounds.Contains(pos) {
			return r
		}
	}
	return nil
}

// HallwayCells returns every Hallway coordinate in row-major order
func (d *Dungeon) HallwayCells() []world.Vector2Int {
	var cells []world.Vector2Int
	d.Grid.ForEachCell(func(pos world.Vector2Int, c world.CellType) {
		if c == world.Hallway {
			cells = append(cells, pos)
		}
	})
	return cells
}
