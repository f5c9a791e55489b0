package generator

import (
	"errors"
	"fmt"

	"dungeongen/pkg/engine/world"
)

// ErrInvalidConfig is returned when generation parameters are malformed
var ErrInvalidConfig = errors.New("invalid generator config")

// Defaults used by DefaultConfig
const (
	DefaultWidth           = 30
	DefaultHeight          = 30
	DefaultRoomCount       = 25
	DefaultRoomMaxSize     = 5
	DefaultExtraEdgeChance = 0.125
)

// Config holds the parameters fixed at the start of one generation run.
type Config struct {
	// Size is the grid width (X) and height (Y).
	Size world.Vector2Int
	// RoomCount is a placement attempt budget, not a guaranteed number of rooms:
	// rejected candidates are skipped and not retried.
	RoomCount int
	// RoomMaxSize bounds each room's width (X) and height (Y); sizes are drawn from [1, max].
	RoomMaxSize world.Vector2Int
	// Seed drives every random decision of the run.
	Seed int64
	// ExtraEdgeChance is the probability that a triangulation edge outside the
	// spanning tree is also carved as a hallway.
	ExtraEdgeChance float64
}

// DefaultConfig returns a config for a 30×30 dungeon
func DefaultConfig() Config {
	return Config{
		Size:            world.Vec(DefaultWidth, DefaultHeight),
		RoomCount:       DefaultRoomCount,
		RoomMaxSize:     world.Vec(DefaultRoomMaxSize, DefaultRoomMaxSize),
		ExtraEdgeChance: DefaultExtraEdgeChance,
	}
}

// Validate checks the preconditions that abort generation
func (c Config) Validate() error {
	switch {
	case c.Size.X <= 0 || c.Size.Y <= 0:
		return fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidConfig, c.Size.X, c.Size.Y)
	case c.RoomCount < 0:
		return fmt.Errorf("%w: room count %d must not be negative", ErrInvalidConfig, c.RoomCount)
	case c.RoomMaxSize.X < 1 || c.RoomMaxSize.Y < 1:
		return fmt.Errorf("%w: room max size %dx%d must be at least 1x1", ErrInvalidConfig, c.RoomMaxSize.X, c.RoomMaxSize.Y)
	case c.ExtraEdgeChance < 0 || c.ExtraEdgeChance > 1:
		return fmt.Errorf("%w: extra edge chance %v must be within [0,1]", ErrInvalidConfig, c.ExtraEdgeChance)
	}
	return nil
}
