package generator

import (
	"testing"

	"dungeongen/pkg/engine/pathfind"
	"dungeongen/pkg/engine/world"
)

// twoRoomGrid returns a clear 20×20 grid with rooms centered on (2,2) and (10,10).
func twoRoomGrid(t *testing.T) (*world.Grid[world.CellType], *Room, *Room) {
	t.Helper()
	grid := world.NewGrid(world.Vec(20, 20), world.Empty)
	a := NewRoom(world.Vec(1, 1), world.Vec(3, 3))
	b := NewRoom(world.Vec(9, 9), world.Vec(3, 3))
	for _, r := range []*Room{a, b} {
		if err := markRoom(grid, r); err != nil {
			t.Fatal(err)
		}
	}
	if a.CenterCell() != world.Vec(2, 2) || b.CenterCell() != world.Vec(10, 10) {
		t.Fatalf("centers = %v, %v", a.CenterCell(), b.CenterCell())
	}
	return grid, a, b
}

func TestHallwayCost_Penalties(t *testing.T) {
	grid := world.NewGrid(world.Vec(3, 1), world.Empty)
	_ = grid.Set(world.Vec(1, 0), world.Room)
	_ = grid.Set(world.Vec(2, 0), world.Hallway)
	cost := HallwayCost(grid, world.Vec(2, 0))

	tests := []struct {
		to   world.Vector2Int
		want float64
	}{
		{world.Vec(0, 0), EmptyPenalty},
		{world.Vec(1, 0), RoomPenalty},
		{world.Vec(2, 0), HallwayPenalty},
	}
	for _, tt := range tests {
		got := cost(world.Vec(0, 0), tt.to)
		if !got.Traversable {
			t.Errorf("step to %v not traversable", tt.to)
		}
		if got.Cost != tt.want {
			t.Errorf("step to %v cost = %v, want %v", tt.to, got.Cost, tt.want)
		}
		if want := world.Distance(tt.to, world.Vec(2, 0)); got.Heuristic != want {
			t.Errorf("step to %v heuristic = %v, want %v", tt.to, got.Heuristic, want)
		}
	}
	if cost(world.Vec(0, 0), world.Vec(-1, 0)).Traversable {
		t.Error("out-of-bounds step reported traversable")
	}
}

func TestHallway_ExistingHallwayLowersCost(t *testing.T) {
	grid, a, b := twoRoomGrid(t)
	start, end := a.CenterCell(), b.CenterCell()
	pf := pathfind.New(grid.Size())

	direct, err := pf.FindPath(start, end, HallwayCost(grid, end))
	if err != nil || direct == nil {
		t.Fatalf("FindPath = %v, %v", direct, err)
	}
	// One room cell to leave a, two to reach the center of b, 13 empty cells.
	if direct.Cost != 95 {
		t.Errorf("all-empty cost = %v, want 95", direct.Cost)
	}

	shortcut := world.Vec(5, 5)
	_ = grid.Set(shortcut, world.Hallway)

	reused, err := pf.FindPath(start, end, HallwayCost(grid, end))
	if err != nil || reused == nil {
		t.Fatalf("FindPath = %v, %v", reused, err)
	}
	if reused.Cost >= direct.Cost {
		t.Errorf("cost with hallway = %v, want less than %v", reused.Cost, direct.Cost)
	}
	if reused.Cost != 91 {
		t.Errorf("cost with hallway = %v, want 91", reused.Cost)
	}
	found := false
	for _, c := range reused.Cells {
		if c == shortcut {
			found = true
		}
	}
	if !found {
		t.Errorf("path %v does not use the existing hallway at %v", reused.Cells, shortcut)
	}
	if got := pathfind.Cost(reused.Cells, HallwayCost(grid, end)); got != reused.Cost {
		t.Errorf("re-priced path cost = %v, want %v", got, reused.Cost)
	}
	if err := pathfind.Validate(reused.Cells, start, end, grid.Size()); err != nil {
		t.Error(err)
	}
}

func TestCarveHallway_Idempotent(t *testing.T) {
	grid, a, b := twoRoomGrid(t)
	start, end := a.CenterCell(), b.CenterCell()
	path, err := pathfind.New(grid.Size()).FindPath(start, end, HallwayCost(grid, end))
	if err != nil || path == nil {
		t.Fatalf("FindPath = %v, %v", path, err)
	}

	changed, err := CarveHallway(grid, path.Cells)
	if err != nil {
		t.Fatal(err)
	}
	if changed == 0 {
		t.Fatal("first carve changed nothing")
	}
	for _, pos := range path.Cells {
		c, _ := grid.Get(pos)
		if a.Bounds.Contains(pos) || b.Bounds.Contains(pos) {
			if c != world.Room {
				t.Errorf("room cell %v became %v", pos, c)
			}
		} else if c != world.Hallway {
			t.Errorf("path cell %v is %v, want Hallway", pos, c)
		}
	}

	before := grid.Clone()
	changed, err = CarveHallway(grid, path.Cells)
	if err != nil {
		t.Fatal(err)
	}
	if changed != 0 {
		t.Errorf("second carve changed %d cells, want 0", changed)
	}
	grid.ForEachCell(func(pos world.Vector2Int, c world.CellType) {
		if was, _ := before.Get(pos); was != c {
			t.Errorf("cell %v changed from %v to %v", pos, was, c)
		}
	})
}

func TestCarveHallway_OutOfRange(t *testing.T) {
	grid := world.NewGrid(world.Vec(3, 3), world.Empty)
	_, err := CarveHallway(grid, []world.Vector2Int{world.Vec(0, 0), world.Vec(0, 3)})
	if err == nil {
		t.Error("carving outside the grid did not fail")
	}
}
