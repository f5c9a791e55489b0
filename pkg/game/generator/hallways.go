package generator

import (
	"fmt"

	"dungeongen/pkg/engine/pathfind"
	"dungeongen/pkg/engine/world"
)

// Step penalties by the type of the cell being entered. Existing hallways are
// cheapest so later hallways tend to merge into earlier ones.
const (
	RoomPenalty    = 10.0
	EmptyPenalty   = 5.0
	HallwayPenalty = 1.0
)

// HallwayCost prices steps for hallway carving: the penalty of the entered cell's
// current type as step cost, and the Euclidean distance to end as heuristic.
// Every in-bounds cell is traversable.
func HallwayCost(grid world.Reader[world.CellType], end world.Vector2Int) pathfind.CostFunc {
	return func(from, to world.Vector2Int) pathfind.PathCost {
		cell, err := grid.Get(to)
		if err != nil {
			return pathfind.PathCost{}
		}

		cost := pathfind.PathCost{
			Traversable: true,
			Heuristic:   world.Distance(to, end),
		}
		switch cell {
		case world.Room:
			cost.Cost = RoomPenalty
		case world.Hallway:
			cost.Cost = HallwayPenalty
		default:
			cost.Cost = EmptyPenalty
		}
		return cost
	}
}

// CarveHallway promotes every Empty cell on the path to Hallway. Room and Hallway
// cells are left alone, so carving the same path twice changes nothing.
// Returns the number of cells changed.
func CarveHallway(grid *world.Grid[world.CellType], cells []world.Vector2Int) (int, error) {
	changed := 0
	for _, pos := range cells {
		cell, err := grid.Get(pos)
		if err != nil {
			return changed, fmt.Errorf("carve hallway: %w", err)
		}
		if cell != world.Empty {
			continue
		}
		if err := grid.Set(pos, world.Hallway); err != nil {
			return changed, fmt.Errorf("carve hallway: %w", err)
		}
		changed++
	}
	return changed, nil
}
