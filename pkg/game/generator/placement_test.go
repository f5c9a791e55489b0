package generator

import (
	"math/rand"
	"testing"

	"dungeongen/pkg/engine/world"
)

// checkRoomInvariants verifies bounds, buffer separation and grid marking.
func checkRoomInvariants(t *testing.T, grid *world.Grid[world.CellType], rooms []*Room) {
	t.Helper()
	roomCells := 0
	for i, r := range rooms {
		if !r.Bounds.Within(grid.Size()) {
			t.Errorf("%v outside grid", r)
		}
		if r.Bounds.Size.X < 1 || r.Bounds.Size.Y < 1 {
			t.Errorf("%v has an empty side", r)
		}
		for j, o := range rooms {
			if i != j && r.Buffer().Intersects(o.Bounds) {
				t.Errorf("buffer of %v intersects %v", r, o)
			}
		}
		r.Bounds.ForEachPosition(func(pos world.Vector2Int) {
			if c, _ := grid.Get(pos); c != world.Room {
				t.Errorf("cell %v of %v is %v", pos, r, c)
			}
		})
		roomCells += r.Bounds.Area()
	}
	if got := world.CountCells(grid, world.Room); got != roomCells {
		t.Errorf("grid has %d Room cells, rooms cover %d", got, roomCells)
	}
}

func TestRandomPlacement_Invariants(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cfg := DefaultConfig()
		cfg.Seed = seed
		cfg.RoomCount = 60
		grid := world.NewGrid(cfg.Size, world.Empty)
		var stats Stats
		rooms, err := RandomPlacement{}.PlaceRooms(rand.New(rand.NewSource(seed)), grid, cfg, &stats)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		checkRoomInvariants(t, grid, rooms)

		if stats.Attempts != cfg.RoomCount {
			t.Errorf("seed %d: %d attempts, want %d", seed, stats.Attempts, cfg.RoomCount)
		}
		if stats.Accepted+stats.RejectedOverlap+stats.RejectedBounds != stats.Attempts {
			t.Errorf("seed %d: outcome counts %+v do not add up", seed, stats)
		}
		if stats.Accepted != len(rooms) {
			t.Errorf("seed %d: accepted %d, rooms %d", seed, stats.Accepted, len(rooms))
		}
	}
}

func TestRandomPlacement_DrawOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoomCount = 1
	cfg.Size = world.Vec(50, 40)
	cfg.RoomMaxSize = world.Vec(4, 3)

	ref := rand.New(rand.NewSource(99))
	want := NewRoom(
		world.Vec(ref.Intn(50), ref.Intn(40)),
		world.Vec(ref.Intn(4)+1, ref.Intn(3)+1),
	)

	grid := world.NewGrid(cfg.Size, world.Empty)
	var stats Stats
	rooms, _ := RandomPlacement{}.PlaceRooms(rand.New(rand.NewSource(99)), grid, cfg, &stats)
	if stats.RejectedBounds == 1 {
		t.Skip("reference draw falls outside the grid")
	}
	if len(rooms) != 1 || rooms[0].Bounds != want.Bounds {
		t.Errorf("rooms = %v, want [%v]", rooms, want)
	}
}

// TestRandomPlacement_RejectionConsumesDraws checks that a rejected attempt still
// consumes its four draws, so later attempts are unaffected by earlier outcomes.
func TestRandomPlacement_RejectionConsumesDraws(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoomCount = 40
	seed := int64(5)

	var stats Stats
	grid := world.NewGrid(cfg.Size, world.Empty)
	rng := rand.New(rand.NewSource(seed))
	if _, err := (RandomPlacement{}).PlaceRooms(rng, grid, cfg, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.RejectedOverlap+stats.RejectedBounds == 0 {
		t.Fatal("expected some rejections with 40 attempts on a 30x30 grid")
	}

	ref := rand.New(rand.NewSource(seed))
	for i := 0; i < cfg.RoomCount; i++ {
		ref.Intn(cfg.Size.X)
		ref.Intn(cfg.Size.Y)
		ref.Intn(cfg.RoomMaxSize.X)
		ref.Intn(cfg.RoomMaxSize.Y)
	}
	if got, want := rng.Int63(), ref.Int63(); got != want {
		t.Errorf("random source after placement = %d, want %d (4 draws per attempt)", got, want)
	}
}

func TestAcceptCandidate_TouchingBufferRejected(t *testing.T) {
	grid := world.NewGrid(world.Vec(20, 20), world.Empty)
	var stats Stats
	rooms, _ := acceptCandidate(grid, nil, NewRoom(world.Vec(2, 2), world.Vec(3, 3)), &stats)

	// Leaves one empty column (x=5) between the rooms.
	rooms, _ = acceptCandidate(grid, rooms, NewRoom(world.Vec(6, 2), world.Vec(2, 2)), &stats)
	if len(rooms) != 2 {
		t.Fatalf("room one cell away was rejected: %+v", stats)
	}

	// Directly adjacent to the first room: its buffer overlaps.
	rooms, _ = acceptCandidate(grid, rooms, NewRoom(world.Vec(2, 5), world.Vec(2, 2)), &stats)
	if len(rooms) != 2 || stats.RejectedOverlap != 1 {
		t.Errorf("adjacent room accepted: %+v", stats)
	}

	rooms, _ = acceptCandidate(grid, rooms, NewRoom(world.Vec(18, 18), world.Vec(3, 1)), &stats)
	if len(rooms) != 2 || stats.RejectedBounds != 1 {
		t.Errorf("out-of-bounds room accepted: %+v", stats)
	}
}

func TestBSPPlacement_Invariants(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cfg := DefaultConfig()
		cfg.Size = world.Vec(48, 36)
		cfg.RoomCount = 100
		grid := world.NewGrid(cfg.Size, world.Empty)
		var stats Stats
		rooms, err := BSPPlacement{}.PlaceRooms(rand.New(rand.NewSource(seed)), grid, cfg, &stats)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(rooms) < 2 {
			t.Errorf("seed %d: only %d rooms", seed, len(rooms))
		}
		if stats.RejectedOverlap != 0 || stats.RejectedBounds != 0 {
			t.Errorf("seed %d: BSP candidates were rejected: %+v", seed, stats)
		}
		for _, r := range rooms {
			if r.Bounds.Size.X > cfg.RoomMaxSize.X || r.Bounds.Size.Y > cfg.RoomMaxSize.Y {
				t.Errorf("seed %d: %v exceeds max size", seed, r)
			}
		}
		checkRoomInvariants(t, grid, rooms)
	}
}

func TestBSPPlacement_RoomCountCapsCandidates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = world.Vec(60, 60)
	cfg.RoomCount = 3
	grid := world.NewGrid(cfg.Size, world.Empty)
	var stats Stats
	rooms, _ := BSPPlacement{}.PlaceRooms(rand.New(rand.NewSource(1)), grid, cfg, &stats)
	if len(rooms) > 3 || stats.Attempts > 3 {
		t.Errorf("got %d rooms from %d attempts, want at most 3", len(rooms), stats.Attempts)
	}
}
