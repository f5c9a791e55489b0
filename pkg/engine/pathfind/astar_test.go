package pathfind

import (
	"errors"
	"testing"

	"dungeongen/pkg/engine/world"
)

// uniformCost charges 1 per step with a Euclidean heuristic toward end.
func uniformCost(end world.Vector2Int) CostFunc {
	return func(from, to world.Vector2Int) PathCost {
		return PathCost{Traversable: true, Cost: 1, Heuristic: world.Distance(to, end)}
	}
}

func TestFindPath_StartEqualsEnd(t *testing.T) {
	pf := New(world.Vec(10, 10))
	p, err := pf.FindPath(world.Vec(3, 4), world.Vec(3, 4), uniformCost(world.Vec(3, 4)))
	if err != nil {
		t.Fatalf("FindPath = %v", err)
	}
	if p.Len() != 1 || p.Cells[0] != world.Vec(3, 4) {
		t.Errorf("path = %v, want [(3,4)]", p.Cells)
	}
	if p.Cost != 0 {
		t.Errorf("cost = %v, want 0", p.Cost)
	}
}

func TestFindPath_OpenGridIsShortest(t *testing.T) {
	pf := New(world.Vec(20, 20))
	start, end := world.Vec(2, 2), world.Vec(10, 10)
	p, err := pf.FindPath(start, end, uniformCost(end))
	if err != nil || p == nil {
		t.Fatalf("FindPath = %v, %v", p, err)
	}
	if err := Validate(p.Cells, start, end, pf.Size()); err != nil {
		t.Fatalf("invalid path: %v", err)
	}
	if p.Len() != 17 {
		t.Errorf("path length = %d, want 17 (Manhattan 16 + 1)", p.Len())
	}
	if p.Cost != 16 {
		t.Errorf("cost = %v, want 16", p.Cost)
	}
}

func TestFindPath_OutOfRange(t *testing.T) {
	pf := New(world.Vec(5, 5))
	tests := []struct {
		name       string
		start, end world.Vector2Int
	}{
		{"start negative", world.Vec(-1, 0), world.Vec(2, 2)},
		{"start past edge", world.Vec(5, 0), world.Vec(2, 2)},
		{"end past edge", world.Vec(0, 0), world.Vec(2, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pf.FindPath(tt.start, tt.end, uniformCost(tt.end))
			if !errors.Is(err, world.ErrOutOfRange) {
				t.Errorf("err = %v, want ErrOutOfRange", err)
			}
			if p != nil {
				t.Errorf("path = %v, want nil", p.Cells)
			}
		})
	}
}

func TestFindPath_NoPathAcrossWall(t *testing.T) {
	pf := New(world.Vec(10, 10))
	start, end := world.Vec(1, 5), world.Vec(8, 5)
	wall := func(from, to world.Vector2Int) PathCost {
		if to.X == 5 {
			return PathCost{Traversable: false}
		}
		return PathCost{Traversable: true, Cost: 1, Heuristic: world.Distance(to, end)}
	}
	p, err := pf.FindPath(start, end, wall)
	if err != nil {
		t.Fatalf("err = %v, want nil (no path is not an error)", err)
	}
	if p != nil {
		t.Errorf("path = %v, want nil", p.Cells)
	}
}

func TestFindPath_RoutesAroundObstacle(t *testing.T) {
	pf := New(world.Vec(10, 10))
	start, end := world.Vec(1, 5), world.Vec(8, 5)
	// Wall at x=5 with a single gap at y=0.
	gap := func(from, to world.Vector2Int) PathCost {
		if to.X == 5 && to.Y != 0 {
			return PathCost{Traversable: false}
		}
		return PathCost{Traversable: true, Cost: 1, Heuristic: world.Distance(to, end)}
	}
	p, err := pf.FindPath(start, end, gap)
	if err != nil || p == nil {
		t.Fatalf("FindPath = %v, %v", p, err)
	}
	if err := Validate(p.Cells, start, end, pf.Size()); err != nil {
		t.Fatalf("invalid path: %v", err)
	}
	through := false
	for _, c := range p.Cells {
		if c.X == 5 {
			if c.Y != 0 {
				t.Errorf("path crosses wall at %v", c)
			}
			through = true
		}
	}
	if !through {
		t.Error("path never crossed x=5")
	}
	// 7 across, 5 up, 5 down.
	if p.Len() != 18 {
		t.Errorf("path length = %d, want 18", p.Len())
	}
}

func TestFindPath_PrefersCheapCells(t *testing.T) {
	pf := New(world.Vec(7, 3))
	start, end := world.Vec(0, 1), world.Vec(6, 1)
	// Middle row is expensive; the outer rows are cheap.
	cost := func(from, to world.Vector2Int) PathCost {
		c := 1.0
		if to.Y == 1 && to != end {
			c = 10
		}
		return PathCost{Traversable: true, Cost: c}
	}
	p, err := pf.FindPath(start, end, cost)
	if err != nil || p == nil {
		t.Fatalf("FindPath = %v, %v", p, err)
	}
	// Up, six along the top row, down onto the goal.
	if p.Cost != 8 {
		t.Errorf("cost = %v, want 8 (detour around the expensive middle row)", p.Cost)
	}
	if got := Cost(p.Cells, cost); got != p.Cost {
		t.Errorf("Cost(path) = %v, want reported %v", got, p.Cost)
	}
}

func TestFindPath_ReusedBuffersAreReset(t *testing.T) {
	pf := New(world.Vec(8, 8))
	end := world.Vec(7, 7)
	first, _ := pf.FindPath(world.Vec(0, 0), end, uniformCost(end))
	second, _ := pf.FindPath(world.Vec(0, 0), end, uniformCost(end))
	if first.Len() != second.Len() || first.Cost != second.Cost {
		t.Fatalf("repeated search differs: %d/%v vs %d/%v", first.Len(), first.Cost, second.Len(), second.Cost)
	}
	for i := range first.Cells {
		if first.Cells[i] != second.Cells[i] {
			t.Fatalf("cell %d differs: %v vs %v", i, first.Cells[i], second.Cells[i])
		}
	}
}

func TestValidate(t *testing.T) {
	size := world.Vec(5, 5)
	ok := []world.Vector2Int{world.Vec(0, 0), world.Vec(1, 0), world.Vec(1, 1)}
	if err := Validate(ok, world.Vec(0, 0), world.Vec(1, 1), size); err != nil {
		t.Errorf("Validate(valid) = %v", err)
	}
	jump := []world.Vector2Int{world.Vec(0, 0), world.Vec(1, 1)}
	if err := Validate(jump, world.Vec(0, 0), world.Vec(1, 1), size); err == nil {
		t.Error("Validate accepted a diagonal jump")
	}
	if err := Validate(nil, world.Vec(0, 0), world.Vec(0, 0), size); err == nil {
		t.Error("Validate accepted an empty path")
	}
}
