package generator

import (
	"fmt"
	"math/rand"

	"dungeongen/pkg/engine/world"
)

// Placement decides where rooms go. Implementations draw every random number
// from rng, in a fixed order, so a seed reproduces the same rooms.
type Placement interface {
	Name() string
	PlaceRooms(rng *rand.Rand, grid *world.Grid[world.CellType], cfg Config, stats *Stats) ([]*Room, error)
}

// rejection is why a candidate room was turned down
type rejection int

const (
	accepted rejection = iota
	rejectedBounds
	rejectedOverlap
)

// checkCandidate applies the acceptance test: the room must lie inside the grid
// and its buffer must not touch any accepted room.
func checkCandidate(rooms []*Room, candidate *Room, size world.Vector2Int) rejection {
	if !candidate.Bounds.Within(size) {
		return rejectedBounds
	}
	buffer := candidate.Buffer()
	for _, r := range rooms {
		if r.Bounds.Intersects(buffer) {
			return rejectedOverlap
		}
	}
	return accepted
}

// acceptCandidate runs the acceptance test, records the outcome and on success
// marks the room's cells and returns the extended room list.
func acceptCandidate(grid *world.Grid[world.CellType], rooms []*Room, candidate *Room, stats *Stats) ([]*Room, error) {
	stats.Attempts++
	switch checkCandidate(rooms, candidate, grid.Size()) {
	case rejectedBounds:
		stats.RejectedBounds++
		return rooms, nil
	case rejectedOverlap:
		stats.RejectedOverlap++
		return rooms, nil
	}

	if err := markRoom(grid, candidate); err != nil {
		return rooms, err
	}
	stats.Accepted++
	return append(rooms, candidate), nil
}

// markRoom sets every cell of the room to Room
func markRoom(grid *world.Grid[world.CellType], room *Room) error {
	var err error
	room.Bounds.ForEachPosition(func(pos world.Vector2Int) {
		if err == nil {
			err = grid.Set(pos, world.Room)
		}
	})
	if err != nil {
		return fmt.Errorf("mark %v: %w", room, err)
	}
	return nil
}

// RandomPlacement is rejection sampling: each of cfg.RoomCount attempts draws a
// location and a size and keeps the room only if it passes the acceptance test.
// Rejected attempts are not retried, so fewer than RoomCount rooms is normal.
type RandomPlacement struct{}

// Name returns the name of this placement strategy
func (RandomPlacement) Name() string {
	return "random"
}

// PlaceRooms draws location x, location y, size x, size y for every attempt,
// whether or not the attempt is accepted.
func (RandomPlacement) PlaceRooms(rng *rand.Rand, grid *world.Grid[world.CellType], cfg Config, stats *Stats) ([]*Room, error) {
	var rooms []*Room
	for i := 0; i < cfg.RoomCount; i++ {
		location := world.Vec(rng.Intn(cfg.Size.X), rng.Intn(cfg.Size.Y))
		size := world.Vec(rng.Intn(cfg.RoomMaxSize.X)+1, rng.Intn(cfg.RoomMaxSize.Y)+1)

		var err error
		rooms, err = acceptCandidate(grid, rooms, NewRoom(location, size), stats)
		if err != nil {
			return nil, err
		}
	}
	return rooms, nil
}
